package engine

import (
	"github.com/lixenwraith/plug-n-chug/component"
)

// ComponentStore provides cached pointers to typed component stores
type ComponentStore struct {
	// Hierarchy
	Transform *Store[component.TransformComponent]
	Parent    *Store[component.ParentComponent]

	// Bar
	Tap          *Store[component.TapComponent]
	OpenForOrder *Store[component.OpenForOrderComponent]
	Drop         *Store[component.DropComponent]
	BarTable     *Store[component.BarTableComponent]

	// Orders
	PendingOrder *Store[component.PendingOrderComponent]
	ActiveOrder  *Store[component.ActiveOrderComponent]

	// Cup tree
	Cup         *Store[component.CupComponent]
	Handle      *Store[component.HandleComponent]
	Divider     *Store[component.DividerComponent]
	FillSensor  *Store[component.FillSensorComponent]
	FillSegment *Store[component.FillSegmentComponent]
	StatusBar   *Store[component.StatusBarComponent]
	Label       *Store[component.LabelComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Parent:    NewStore[component.ParentComponent](),

		Tap:          NewStore[component.TapComponent](),
		OpenForOrder: NewStore[component.OpenForOrderComponent](),
		Drop:         NewStore[component.DropComponent](),
		BarTable:     NewStore[component.BarTableComponent](),

		PendingOrder: NewStore[component.PendingOrderComponent](),
		ActiveOrder:  NewStore[component.ActiveOrderComponent](),

		Cup:         NewStore[component.CupComponent](),
		Handle:      NewStore[component.HandleComponent](),
		Divider:     NewStore[component.DividerComponent](),
		FillSensor:  NewStore[component.FillSensorComponent](),
		FillSegment: NewStore[component.FillSegmentComponent](),
		StatusBar:   NewStore[component.StatusBarComponent](),
		Label:       NewStore[component.LabelComponent](),
	}
}

// all returns every store for lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Transform, cs.Parent,
		cs.Tap, cs.OpenForOrder, cs.Drop, cs.BarTable,
		cs.PendingOrder, cs.ActiveOrder,
		cs.Cup, cs.Handle, cs.Divider, cs.FillSensor, cs.FillSegment, cs.StatusBar, cs.Label,
	}
}
