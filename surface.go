package worldui

// Surface describes one world-space UI panel. The panel lies in the XZ plane
// of its entity's transform, centered on the origin, so local coordinates
// range over [-Width/2, Width/2] × [-Height/2, Height/2].
//
// Width and Height are in world units. A Surface is plain data: the
// translator only reads it.
type Surface struct {
	Width  float32 // extent along local X
	Height float32 // extent along local Z
}

// NewSurface returns a Surface of the given size. It panics if either
// dimension is not positive.
func NewSurface(width, height float32) Surface {
	if !(width > 0) {
		panic("worldui: surface width must be positive")
	}
	if !(height > 0) {
		panic("worldui: surface height must be positive")
	}
	return Surface{Width: width, Height: height}
}

// Valid reports whether both dimensions are positive.
func (s Surface) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Extent returns the local-space bounds of the panel.
func (s Surface) Extent() (minX, minZ, maxX, maxZ float32) {
	hw, hh := s.Width/2, s.Height/2
	return -hw, -hh, hw, hh
}

// ContainsLocal reports whether the local point (x, z) lies inside the panel,
// widened by tol on every side. Points on the edge are inside.
func (s Surface) ContainsLocal(x, z, tol float32) bool {
	minX, minZ, maxX, maxZ := s.Extent()
	return x >= minX-tol && x <= maxX+tol &&
		z >= minZ-tol && z <= maxZ+tol
}
