package geom

import "math"

// Epsilon is the default tolerance used by the inexact predicates below.
const Epsilon = 1e-9

// orient2 returns the signed area*2 of (a,b,c): >0 if c is left of a->b,
// <0 if right, 0 if collinear. This is the classic 2-D orientation
// predicate that SegmentsIntersect and the polygon-exit counter build on.
func orient2(a, b, c Point2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func sign(v float64) int {
	switch {
	case v > Epsilon:
		return 1
	case v < -Epsilon:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether point q, known to be collinear with segment
// (p,r), lies within the segment's bounding box.
func onSegment(p, q, r Point2) bool {
	return math.Min(p.X, r.X)-Epsilon <= q.X && q.X <= math.Max(p.X, r.X)+Epsilon &&
		math.Min(p.Y, r.Y)-Epsilon <= q.Y && q.Y <= math.Max(p.Y, r.Y)+Epsilon
}

// SegmentsIntersect reports whether closed segments (a1,a2) and (b1,b2)
// intersect, including touching endpoints and collinear overlap. This is
// the 2-D segment–segment intersection predicate required by C1
// and is the building block for the polygon-exit
// constraint in package linker.
func SegmentsIntersect(a1, a2, b1, b2 Point2) bool {
	d1 := sign(orient2(b1, b2, a1))
	d2 := sign(orient2(b1, b2, a2))
	d3 := sign(orient2(a1, a2, b1))
	d4 := sign(orient2(a1, a2, b2))

	if d1 != d2 && d3 != d4 {
		return true
	}
	if d1 == 0 && onSegment(b1, a1, b2) {
		return true
	}
	if d2 == 0 && onSegment(b1, a2, b2) {
		return true
	}
	if d3 == 0 && onSegment(a1, b1, a2) {
		return true
	}
	if d4 == 0 && onSegment(a1, b2, a2) {
		return true
	}
	return false
}

// SegmentIntersection returns the intersection point of lines (a1,a2) and
// (b1,b2) together with ok=false when the lines are parallel (or
// near-parallel within Epsilon). Used by bridge.BorderDistance to shoot a
// perpendicular segment to a path's border.
func SegmentIntersection(a1, a2, b1, b2 Point2) (Point2, bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	rxs := r.X*s.Y - r.Y*s.X
	if math.Abs(rxs) < Epsilon {
		return Point2{}, false
	}
	qp := b1.Sub(a1)
	t := (qp.X*s.Y - qp.Y*s.X) / rxs
	return a1.Add(r.Scale(t)), true
}

// Orientation3 is the 3-D orientation predicate: the sign of the signed
// volume of the tetrahedron (a,b,c,d). Positive means d lies on the
// positive side of the oriented triangle (a,b,c) (i.e. in the direction
// of (b-a)x(c-a)).
func Orientation3(a, b, c, d Point3) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	n := ab.Cross(ac)
	return n.Dot(ad)
}

// TriangleNormal returns the (non-unit) normal of triangle (a,b,c),
// following the right-hand rule on (b-a)x(c-a).
func TriangleNormal(a, b, c Point3) (nx, ny, nz float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := ab.Cross(ac)
	return n.X, n.Y, n.Z
}

// NormalAngleCoefficient computes a per-face weight reflecting how steeply
// a face departs from horizontal: 1/cos(θ) clamped to a maximum, where θ
// is the angle between the face normal and the vertical axis. Consumed by
// the surface-attachment residual's κ coefficient.
func NormalAngleCoefficient(a, b, c Point3, maxCoef float64) float64 {
	nx, ny, nz := TriangleNormal(a, b, c)
	norm := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if norm < Epsilon {
		return maxCoef
	}
	cosTheta := math.Abs(nz) / norm
	if cosTheta < 1/maxCoef {
		return maxCoef
	}
	return 1 / cosTheta
}

// Barycentric computes the barycentric coordinates (u,v,w) of p with
// respect to triangle (a,b,c) projected onto the ground plane. Returns
// ok=false for a degenerate (zero-area) triangle.
func Barycentric(p, a, b, c Point2) (u, v, w float64, ok bool) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if math.Abs(denom) < Epsilon {
		return 0, 0, 0, false
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w, true
}
