package linker

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/skeleton"
)

// point2 returns the ground-plane location a SkeletonPoint represents.
func point2(g *skeleton.Graph, p skeleton.Point) geom.Point2 {
	if p.IsVertex() {
		return g.Vertices[p.Vertex].Point
	}
	return p.At
}

// distVV returns d_vv: the squared distance between two skeleton
// vertices.
func distVV(a, b geom.Point2) float64 {
	return a.SquaredDist(b)
}

// footOnSegment projects p onto the line through a-b and reports whether
// the foot lies within the closed segment.
func footOnSegment(p, a, b geom.Point2) (foot geom.Point2, ok bool) {
	ab := b.Sub(a)
	length2 := ab.Dot(ab)
	if length2 < geom.Epsilon {
		return geom.Point2{}, false
	}
	t := p.Sub(a).Dot(ab) / length2
	if t < 0 || t > 1 {
		return geom.Point2{}, false
	}
	return a.Add(ab.Scale(t)), true
}

// distPointToHalfedge returns d_vh (or, by symmetry, d_hv): the squared
// distance from point p to the supporting line of halfedge h, kept only
// when the perpendicular foot lies on h itself.
func distPointToHalfedge(p geom.Point2, g *skeleton.Graph, h int) (distSq float64, ok bool) {
	he := g.Halfedges[h]
	a, b := g.Vertices[he.From].Point, g.Vertices[he.To].Point
	foot, onSeg := footOnSegment(p, a, b)
	if !onSeg {
		return 0, false
	}
	return p.SquaredDist(foot), true
}
