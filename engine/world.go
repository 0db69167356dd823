package engine

import (
	"sync"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/event"
)

// World contains all entities and their components using typed stores
// Entity ids are monotonic and never reused within a process
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resource

	systems []System
	stores  []AnyStore
}

// NewWorld creates a new ECS world bound to res
func NewWorld(res *Resource) *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    res,
	}
	w.stores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components of e, children are left orphaned
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
}

// DestroyRecursive removes e and every descendant
func (w *World) DestroyRecursive(e core.Entity) {
	for _, child := range w.Children(e) {
		w.DestroyRecursive(child)
	}
	w.DestroyEntity(e)
}

// Alive reports whether any store holds a component for e
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.stores {
		if s.HasEntity(e) {
			return true
		}
	}
	return false
}

// SetParent attaches child to parent
func (w *World) SetParent(child, parent core.Entity) {
	w.Components.Parent.SetComponent(child, component.ParentComponent{Parent: parent})
}

// Parent returns the owner of e
func (w *World) Parent(e core.Entity) (core.Entity, bool) {
	p, ok := w.Components.Parent.GetComponent(e)
	if !ok {
		return core.NoEntity, false
	}
	return p.Parent, true
}

// Children returns the direct children of e in creation order
func (w *World) Children(e core.Entity) []core.Entity {
	var children []core.Entity
	for _, child := range w.Components.Parent.GetAllEntities() {
		if p, ok := w.Components.Parent.GetComponent(child); ok && p.Parent == e {
			children = append(children, child)
		}
	}
	return children
}

// WorldPosition accumulates transforms up the parent chain
func (w *World) WorldPosition(e core.Entity) (x, y float64) {
	for e != core.NoEntity {
		if t, ok := w.Components.Transform.GetComponent(e); ok {
			x += t.X
			y += t.Y
		}
		parent, ok := w.Parent(e)
		if !ok {
			break
		}
		e = parent
	}
	return x, y
}

// Clear removes all entities and components, ids keep increasing
func (w *World) Clear() {
	for _, s := range w.stores {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion keeps registration order among equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in priority order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	res := w.Resources
	if res == nil || res.Event == nil {
		return
	}
	res.Event.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   res.Time.FrameNumber,
	})
}
