package ecs

import (
	"github.com/phanxgames/worldui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SyntheticEventType carries every event a worldui.Scene queues, addressed
// by the scene's own EntityID.
var SyntheticEventType = events.NewEventType[worldui.SyntheticEvent]()

// EntityEvent is a synthetic UI event re-addressed to the donburi entity
// linked to its scene surface.
type EntityEvent struct {
	Entity donburi.Entity
	Event  worldui.UIEvent
}

// EntityEventType carries events for surfaces linked with SceneBridge.Link.
var EntityEventType = events.NewEventType[EntityEvent]()

// SceneBridge is a worldui.EntityStore that republishes a scene's synthetic
// events into a donburi world. Install it with Scene.SetEntityStore.
type SceneBridge struct {
	world donburi.World
	links map[worldui.EntityID]donburi.Entity
}

// NewSceneBridge creates a bridge publishing into world.
func NewSceneBridge(world donburi.World) *SceneBridge {
	return &SceneBridge{world: world, links: make(map[worldui.EntityID]donburi.Entity)}
}

// NewDonburiStore is NewSceneBridge typed as a worldui.EntityStore.
func NewDonburiStore(world donburi.World) worldui.EntityStore {
	return NewSceneBridge(world)
}

// Link makes events for scene surface id also arrive as EntityEventType
// on entity e.
func (b *SceneBridge) Link(id worldui.EntityID, e donburi.Entity) {
	b.links[id] = e
}

// Unlink stops re-addressing events for id.
func (b *SceneBridge) Unlink(id worldui.EntityID) {
	delete(b.links, id)
}

// EmitEvent implements worldui.EntityStore. A link whose entity has been
// removed from the world is dropped.
func (b *SceneBridge) EmitEvent(ev worldui.SyntheticEvent) {
	SyntheticEventType.Publish(b.world, ev)

	e, ok := b.links[ev.Target]
	if !ok {
		return
	}
	if !b.world.Valid(e) {
		delete(b.links, ev.Target)
		return
	}
	EntityEventType.Publish(b.world, EntityEvent{Entity: e, Event: ev.Event})
}
