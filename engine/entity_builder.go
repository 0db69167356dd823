package engine

import (
	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
)

// EntityBuilder provides a fluent interface for constructing entities with components
//
//	cup := With(
//		w.NewEntity().At(0, y).ChildOf(tapEntity),
//		w.Components.Cup, component.CupComponent{...},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity reserves an entity ID and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, c)
	return eb
}

// At sets the transform relative to the parent
func (eb *EntityBuilder) At(x, y float64) *EntityBuilder {
	return With(eb, eb.world.Components.Transform, component.TransformComponent{X: x, Y: y})
}

// ChildOf attaches the entity to parent
func (eb *EntityBuilder) ChildOf(parent core.Entity) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.world.SetParent(eb.entity, parent)
	return eb
}

// Build finalizes construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
