// Package worldui lets flat 2D user interfaces live on quads in a 3D world.
//
// A UI renders into an offscreen pixel buffer (a texture) that is drawn onto
// a rectangle placed somewhere in the scene. When the user points at that
// rectangle, the hit point is known only in world space; worldui maps it
// back into the UI's own pixel coordinates and queues synthetic pointer
// events the UI consumes as if they came from a mouse over a normal window.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window, enables
// mouse picking and drives the scene for you:
//
//	scene := worldui.NewScene()
//	rt := worldui.NewRenderTexture(320, 160)
//	panel := scene.SpawnSurface(worldui.SurfaceConfig{
//		Width: 2, Height: 1,
//		Transform: worldui.NewTransform(pos, rot),
//		Texture:   scene.Textures().Add(rt),
//	})
//	worldui.Run(scene, worldui.RunConfig{Title: "Panel", Width: 800, Height: 600})
//
// Each frame, drain panel.Input and paint rt from what it contains.
//
// # Surfaces
//
// A [Surface] is a Width×Height rectangle on the local XZ plane, centered on
// the origin, facing local +Y. A [Transform] places it in the world. UV
// coordinates run from (0,0) at the (-W/2, -H/2) corner to (1,1) at the
// opposite corner and are not clamped:
//
//	u = x/W + 0.5
//	v = z/H + 0.5
//
// # Translation
//
// [Translator] is the core: it accepts raw [PointerMove] and [PointerClick]
// events (or generic [PickEvent] payloads) addressed to any comparable key,
// resolves each target's surface, transform, texture and [InputQueue], and
// on [Translator.Update] converts them into [UIEvent] values. Moves are
// handled before clicks; each click becomes a press followed by a release at
// the same pixel. Events whose target is gone, has no queue, or carries no
// position are dropped silently. A target whose texture has no pixel buffer
// is a programming error and panics with [ErrMissingPixelBuffer].
//
// [Scene] wires a Translator to a registry of [SurfaceEntity] values keyed
// by [EntityID]. The ecs subpackage does the same for donburi worlds.
//
// # Picking
//
// With a [Camera] set via [Scene.SetCamera], screen coordinates become rays
// that are intersected against every surface. [Scene.EnableMouseInput]
// reads Ebitengine's cursor each Update; [Scene.InjectMove],
// [Scene.InjectClick] and [Scene.InjectPath] feed synthetic screen samples
// through the same path for automated tests.
//
// # Replays
//
// [LoadReplay] parses a JSON script of world-space and screen-space steps;
// attach it with [Scene.SetReplay]. See [Replay] for the step format.
//
// # Logging
//
// worldui is silent by default. [SetLogger] installs a [log/slog] logger;
// the translator emits per-event traces at debug level.
package worldui
