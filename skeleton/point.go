package skeleton

import "github.com/terraloom/meshbridge/geom"

// Point is a SkeletonPoint: a location on a skeleton, given
// either as a vertex handle (Halfedge < 0) or as a halfedge handle plus a
// 2-D point constrained to lie on it. PathID names the originating path.
type Point struct {
	PathID   int
	Vertex   int // valid iff Halfedge < 0
	Halfedge int // valid iff >= 0
	At       geom.Point2
}

// VertexPoint builds a SkeletonPoint pinned to a skeleton vertex.
func VertexPoint(pathID, vertex int, at geom.Point2) Point {
	return Point{PathID: pathID, Vertex: vertex, Halfedge: -1, At: at}
}

// HalfedgePoint builds a SkeletonPoint constrained to lie on halfedge h.
func HalfedgePoint(pathID, halfedge int, at geom.Point2) Point {
	return Point{PathID: pathID, Vertex: -1, Halfedge: halfedge, At: at}
}

// IsVertex reports whether p is pinned to a vertex rather than a halfedge.
func (p Point) IsVertex() bool { return p.Halfedge < 0 }

// Validate checks that p's handle(s) are in range for g and, for a
// halfedge point, that At actually lies on that halfedge within
// geom.Epsilon. Meant for a Point built from untrusted input (test
// fixtures, deserialized data); the package's own internally-derived
// points are correct by construction and skip this check.
func Validate(g *Graph, p Point) error {
	if p.IsVertex() {
		if p.Vertex < 0 || p.Vertex >= len(g.Vertices) {
			return ErrVertexNotFound
		}
		return nil
	}
	if p.Halfedge < 0 || p.Halfedge >= len(g.Halfedges) {
		return ErrHalfedgeNotFound
	}
	he := g.Halfedges[p.Halfedge]
	a, b := g.Vertices[he.From].Point, g.Vertices[he.To].Point
	d := b.Sub(a)
	total := d.Length()
	if total < geom.Epsilon {
		if p.At.Dist(a) > geom.Epsilon {
			return ErrNotOnHalfedge
		}
		return nil
	}
	t := p.At.Sub(a).Dot(d) / (total * total)
	if t < -geom.Epsilon || t > 1+geom.Epsilon {
		return ErrNotOnHalfedge
	}
	proj := a.Add(d.Scale(t))
	if p.At.Dist(proj) > geom.Epsilon {
		return ErrNotOnHalfedge
	}
	return nil
}

// Time returns the SkeletonPoint's shrink time: τ(v) for a vertex point,
// or the linear interpolation of the two endpoint times for a halfedge
// point (used as a fallback width estimate in package roadwidth).
func Time(g *Graph, p Point) float64 {
	if p.IsVertex() {
		return g.Vertices[p.Vertex].Time
	}
	he := g.Halfedges[p.Halfedge]
	a, b := g.Vertices[he.From], g.Vertices[he.To]
	total := a.Point.Dist(b.Point)
	if total < geom.Epsilon {
		return a.Time
	}
	t := p.At.Sub(a.Point).Length() / total
	return a.Time + t*(b.Time-a.Time)
}

// EndpointTimes returns τ(source), τ(target) for a halfedge point, or
// (τ(v), τ(v)) for a vertex point — used by roadwidth's fallback
// "τ(source)+τ(target)" rule.
func EndpointTimes(g *Graph, p Point) (srcTime, dstTime float64) {
	if p.IsVertex() {
		t := g.Vertices[p.Vertex].Time
		return t, t
	}
	he := g.Halfedges[p.Halfedge]
	return g.Vertices[he.From].Time, g.Vertices[he.To].Time
}
