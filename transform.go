package worldui

import "github.com/go-gl/mathgl/mgl32"

// Transform is the world transform of a surface entity: scale, then rotate,
// then translate.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// IdentityTransform returns a transform at the origin with no rotation and
// unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// NewTransform returns a unit-scale transform with the given translation and
// rotation.
func NewTransform(translation mgl32.Vec3, rotation mgl32.Quat) Transform {
	return Transform{
		Translation: translation,
		Rotation:    rotation,
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// normalizedRotation returns the rotation as a unit quaternion. A zero
// quaternion (the zero value of Transform) is treated as identity.
func (t Transform) normalizedRotation() mgl32.Quat {
	if t.Rotation.W == 0 && t.Rotation.V == (mgl32.Vec3{}) {
		return mgl32.QuatIdent()
	}
	return t.Rotation.Normalize()
}

// scale returns the transform's scale, treating the zero vector (the zero
// value of Transform) as unit scale.
func (t Transform) scale() mgl32.Vec3 {
	if t.Scale == (mgl32.Vec3{}) {
		return mgl32.Vec3{1, 1, 1}
	}
	return t.Scale
}

// WorldToLocal converts a world-space point into the transform's local
// frame as R⁻¹(p − t) / s: remove translation, undo rotation, then undo
// scale. ok is false if any scale component is zero.
//
// This is the exact inverse of LocalToWorld. It intentionally differs from
// the R⁻¹p − t formulation, which only agrees when the rotation is
// identity or the translation is zero; with it a rotated panel away from
// the origin would report its center at the wrong UV.
func (t Transform) WorldToLocal(p mgl32.Vec3) (local mgl32.Vec3, ok bool) {
	s := t.scale()
	if s.X() == 0 || s.Y() == 0 || s.Z() == 0 {
		return mgl32.Vec3{}, false
	}
	r := t.normalizedRotation().Inverse().Rotate(p.Sub(t.Translation))
	return mgl32.Vec3{r.X() / s.X(), r.Y() / s.Y(), r.Z() / s.Z()}, true
}

// LocalToWorld converts a local-space point to world space.
func (t Transform) LocalToWorld(p mgl32.Vec3) mgl32.Vec3 {
	s := t.scale()
	scaled := mgl32.Vec3{p.X() * s.X(), p.Y() * s.Y(), p.Z() * s.Z()}
	return t.normalizedRotation().Rotate(scaled).Add(t.Translation)
}

// Normal returns the world-space normal of the transform's XZ plane
// (local +Y).
func (t Transform) Normal() mgl32.Vec3 {
	return t.normalizedRotation().Rotate(mgl32.Vec3{0, 1, 0})
}

// Matrix returns the 4x4 model matrix T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	s := t.scale()
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.normalizedRotation().Mat4()).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}
