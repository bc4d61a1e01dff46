package linker

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/skeleton"
)

// skeletonOf resolves a path id to its skeleton graph.
type skeletonOf func(pathID int) *skeleton.Graph

// neighborVertices returns the vertices a single local move away from e:
// the adjacent skeleton vertices of a vertex endpoint, or the two
// endpoints of a halfedge endpoint (the nearest vertices reachable by
// moving the point to either end of the segment it is pinned to).
func neighborVertices(e Endpoint, g *skeleton.Graph) []int {
	if e.Point.IsVertex() {
		var out []int
		for _, h := range g.HalfedgesFrom(e.Point.Vertex) {
			to := g.Halfedges[h].To
			if g.Vertices[to].IsSkeletonVertex() {
				out = append(out, to)
			}
		}
		return out
	}
	he := g.Halfedges[e.Point.Halfedge]
	return []int{he.From, he.To}
}

// edgeBetween returns the halfedge handle from a to b, or -1 if no such
// halfedge exists.
func edgeBetween(g *skeleton.Graph, a, b int) int {
	for _, h := range g.HalfedgesFrom(a) {
		if g.Halfedges[h].To == b {
			return h
		}
	}
	return -1
}

// dominant reports whether candidate c is locally minimal: no one-hop
// move from either endpoint along its own skeleton shortens the
// connection to the other endpoint.
// Candidates that are not locally minimal represent a non-minimal
// shortcut and are discarded.
func dominant(c candidate, skelA, skelB skeletonOf) bool {
	gA, gB := skelA(c.A.Path), skelB(c.B.Path)
	return locallyMinimalAround(c.A, gA, c.B, gB, c.DistSq) &&
		locallyMinimalAround(c.B, gB, c.A, gA, c.DistSq)
}

func locallyMinimalAround(this Endpoint, gThis *skeleton.Graph, other Endpoint, gOther *skeleton.Graph, d float64) bool {
	const slack = geom.Epsilon
	otherP := point2(gOther, other.Point)

	baseVerts := pivotVertices(this)
	for _, nv := range neighborVertices(this, gThis) {
		if dsq := distVV(gThis.Vertices[nv].Point, otherP); dsq < d-slack {
			return false
		}
		if !other.Point.IsVertex() {
			continue
		}
		for _, base := range baseVerts {
			h := edgeBetween(gThis, base, nv)
			if h < 0 {
				continue
			}
			if dsq, ok := distPointToHalfedge(otherP, gThis, h); ok && dsq < d-slack {
				return false
			}
		}
	}
	return true
}

// pivotVertices returns the vertex (or pair of vertices) a neighbor move
// is anchored at, for building the edge(v1, v1') a dominance check needs.
func pivotVertices(e Endpoint) []int {
	if e.Point.IsVertex() {
		return []int{e.Point.Vertex}
	}
	return nil // halfedge-pinned moves are evaluated purely as vertex-vertex hops
}
