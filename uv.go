package worldui

import "github.com/go-gl/mathgl/mgl32"

// SurfaceUV maps a world-space hit point onto the surface's normalized UV
// space. The hit is brought into the transform's local frame, projected onto
// the local X and Z axes, divided by the surface size and recentered by
// 0.5, so the panel spans [0,1]×[0,1]. The result is not clamped: a hit just
// past an edge yields a coordinate slightly outside that range.
//
// ok is false only when the transform is degenerate (zero scale).
func SurfaceUV(s Surface, t Transform, world mgl32.Vec3) (uv mgl32.Vec2, ok bool) {
	local, ok := t.WorldToLocal(world)
	if !ok {
		return mgl32.Vec2{}, false
	}
	return LocalToUV(s, local.X(), local.Z()), true
}

// LocalToUV maps a point on the surface plane (local X, local Z) to UV.
func LocalToUV(s Surface, x, z float32) mgl32.Vec2 {
	return mgl32.Vec2{x/s.Width + 0.5, z/s.Height + 0.5}
}

// UVToLocal is the inverse of LocalToUV.
func UVToLocal(s Surface, uv mgl32.Vec2) (x, z float32) {
	return (uv.X() - 0.5) * s.Width, (uv.Y() - 0.5) * s.Height
}

// UVToPixel scales a UV coordinate to a pixel position on a buffer of the
// given dimensions.
func UVToPixel(uv mgl32.Vec2, pixelWidth, pixelHeight int) Pos2 {
	return Pos2{
		X: uv.X() * float32(pixelWidth),
		Y: uv.Y() * float32(pixelHeight),
	}
}
