package worldui

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPickTolerance widens every surface by this many local units when
// testing a ray hit, so hits grazing an edge still register.
const DefaultPickTolerance = 0.01

// parallelEpsilon is the smallest |normal·dir| treated as a hit; rays closer
// to parallel than this miss the plane.
const parallelEpsilon = 1e-6

// Ray is a half-line in world space. Dir need not be normalized, but
// distances are reported in units of Dir's length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at parameter d along the ray.
func (r Ray) At(d float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(d))
}

// IntersectSurface intersects r with the plane of a surface. It returns the
// world-space hit point, the surface normal, the ray parameter of the hit,
// and whether the hit lies in front of the origin and inside the surface
// extent widened by tol.
func IntersectSurface(r Ray, s Surface, t Transform, tol float32) (point, normal mgl32.Vec3, dist float32, ok bool) {
	normal = t.Normal()
	denom := normal.Dot(r.Dir)
	if float32(math.Abs(float64(denom))) < parallelEpsilon {
		return point, normal, 0, false
	}
	dist = normal.Dot(t.Translation.Sub(r.Origin)) / denom
	if dist < 0 {
		return point, normal, 0, false
	}
	point = r.At(dist)
	local, lok := t.WorldToLocal(point)
	if !lok || !s.ContainsLocal(local.X(), local.Z(), tol) {
		return point, normal, dist, false
	}
	return point, normal, dist, true
}

// Pickable is a picking candidate.
type Pickable[K comparable] struct {
	Target    K
	Surface   Surface
	Transform Transform
}

// PickNearest returns a hit on the candidate closest to the ray origin.
// Ties keep the earlier candidate.
func PickNearest[K comparable](r Ray, candidates []Pickable[K], tol float32) (target K, hit PickHit, ok bool) {
	best := float32(math.MaxFloat32)
	for _, c := range candidates {
		p, n, d, hitOK := IntersectSurface(r, c.Surface, c.Transform, tol)
		if !hitOK || d >= best {
			continue
		}
		best = d
		target = c.Target
		hit = NewPickHit(p, n, d)
		ok = true
	}
	return target, hit, ok
}

// Picker is a reference picking backend for a single pointer. It tracks
// which surface is hovered so that moving off a surface produces a move
// with no position, the same way a full picking backend reports a
// pointer-leave.
type Picker[K comparable] struct {
	// Tolerance widens surfaces in local units.
	Tolerance float32

	hovered  K
	hovering bool
}

// Hovered returns the currently hovered target.
func (p *Picker[K]) Hovered() (K, bool) {
	return p.hovered, p.hovering
}

// Move casts r against candidates and returns the resulting move picks: a
// leave for the previously hovered target if it changed, then a move on the
// new hit, if any.
func (p *Picker[K]) Move(r Ray, candidates []Pickable[K]) []PickEvent[K] {
	target, hit, ok := PickNearest(r, candidates, p.Tolerance)

	var out []PickEvent[K]
	if p.hovering && (!ok || target != p.hovered) {
		out = append(out, PickEvent[K]{Kind: PickMove, Target: p.hovered})
	}
	if ok {
		out = append(out, PickEvent[K]{Kind: PickMove, Target: target, Hit: hit})
		p.hovered = target
		p.hovering = true
	} else {
		var zero K
		p.hovered = zero
		p.hovering = false
	}
	return out
}

// Click casts r against candidates and returns a click pick on the nearest
// hit.
func (p *Picker[K]) Click(r Ray, candidates []Pickable[K]) (PickEvent[K], bool) {
	target, hit, ok := PickNearest(r, candidates, p.Tolerance)
	if !ok {
		return PickEvent[K]{}, false
	}
	return PickEvent[K]{Kind: PickClick, Target: target, Hit: hit}, true
}

// Reset forgets the hovered target without emitting a leave.
func (p *Picker[K]) Reset() {
	var zero K
	p.hovered = zero
	p.hovering = false
}
