package ecs

import (
	"github.com/phanxgames/worldui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Raw pointer interactions addressed to surface entities. A picking backend
// publishes these; a System consumes them.
var (
	PointerMoveEvent  = events.NewEventType[worldui.PointerMove[donburi.Entity]]()
	PointerClickEvent = events.NewEventType[worldui.PointerClick[donburi.Entity]]()
)

// System translates pointer events on surface entities into synthetic UI
// events on each entity's Input component.
type System struct {
	world      donburi.World
	translator *worldui.Translator[donburi.Entity]
}

// NewSystem creates a System for world, resolving texture handles through
// textures, and subscribes it to the pointer event types.
func NewSystem(world donburi.World, textures worldui.TextureResolver) *System {
	return NewSystemWithConfig(world, textures, worldui.TranslatorConfig[donburi.Entity]{})
}

// NewSystemWithConfig is NewSystem with translator options.
func NewSystemWithConfig(world donburi.World, textures worldui.TextureResolver, cfg worldui.TranslatorConfig[donburi.Entity]) *System {
	s := &System{world: world}
	resolver := worldui.SurfaceResolverFunc[donburi.Entity](func(e donburi.Entity) (worldui.SurfaceRef, bool) {
		return resolveSurface(s.world, e)
	})
	s.translator = worldui.NewTranslator[donburi.Entity](resolver, textures, cfg)

	PointerMoveEvent.Subscribe(world, func(_ donburi.World, ev worldui.PointerMove[donburi.Entity]) {
		s.translator.PushMove(ev)
	})
	PointerClickEvent.Subscribe(world, func(_ donburi.World, ev worldui.PointerClick[donburi.Entity]) {
		s.translator.PushClick(ev)
	})
	return s
}

// Update collects this frame's pointer events and translates them: all
// moves first, then all clicks.
func (s *System) Update(world donburi.World) {
	PointerMoveEvent.ProcessEvents(world)
	PointerClickEvent.ProcessEvents(world)
	s.translator.Update()
}

// PublishPick converts a generic pick payload and publishes it as the
// matching pointer event.
func PublishPick(world donburi.World, p worldui.PickEvent[donburi.Entity]) {
	worldui.Route(p,
		func(ev worldui.PointerMove[donburi.Entity]) { PointerMoveEvent.Publish(world, ev) },
		func(ev worldui.PointerClick[donburi.Entity]) { PointerClickEvent.Publish(world, ev) },
	)
}
