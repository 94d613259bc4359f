// Package ecs provides Donburi adapters for worldui.
//
// Surfaces can live as Donburi entities: [NewSurfaceEntity] creates an entity
// carrying the [Surface], [Transform], [Texture] and [Input] components.
// A picking backend publishes [PointerMoveEvent] and [PointerClickEvent];
// a [System] translates them onto each entity's input queue once per frame.
//
//	sys := ecs.NewSystem(world, textures)
//	// each frame:
//	sys.Update(world)
//
// For a [worldui.Scene], a [SceneBridge] republishes the scene's synthetic
// UI events into a Donburi world as [SyntheticEventType]. Surfaces linked to
// an entity also produce [EntityEventType]:
//
//	bridge := ecs.NewSceneBridge(world)
//	scene.SetEntityStore(bridge)
//	bridge.Link(panel.ID, entity)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
