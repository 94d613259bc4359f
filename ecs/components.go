package ecs

import (
	"github.com/phanxgames/worldui"

	"github.com/yohamta/donburi"
)

// Components of a world-space UI surface entity.
var (
	Surface   = donburi.NewComponentType[worldui.Surface]()
	Transform = donburi.NewComponentType[worldui.Transform]()
	Texture   = donburi.NewComponentType[worldui.TextureHandle]()
	Input     = donburi.NewComponentType[worldui.InputQueue]()
)

// NewSurfaceEntity creates an entity with all surface components. It panics
// if the surface size is not positive.
func NewSurfaceEntity(world donburi.World, surface worldui.Surface, tf worldui.Transform, tex worldui.TextureHandle) donburi.Entity {
	if !surface.Valid() {
		panic("worldui/ecs: surface width and height must be positive")
	}
	e := world.Create(Surface, Transform, Texture, Input)
	entry := world.Entry(e)
	Surface.SetValue(entry, surface)
	Transform.SetValue(entry, tf)
	Texture.SetValue(entry, tex)
	return e
}

// resolveSurface looks up the surface components of e. It returns false if
// e is gone or lacks any of them.
func resolveSurface(world donburi.World, e donburi.Entity) (worldui.SurfaceRef, bool) {
	if !world.Valid(e) {
		return worldui.SurfaceRef{}, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(Surface) || !entry.HasComponent(Transform) ||
		!entry.HasComponent(Texture) || !entry.HasComponent(Input) {
		return worldui.SurfaceRef{}, false
	}
	return worldui.SurfaceRef{
		Surface:   *Surface.Get(entry),
		Transform: *Transform.Get(entry),
		Texture:   *Texture.Get(entry),
		Input:     Input.Get(entry),
	}, true
}
