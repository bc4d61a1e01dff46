package skeleton

import (
	"errors"

	"github.com/terraloom/meshbridge/geom"
)

// Sentinel errors for skeleton operations, one var block per package,
// following the convention used throughout this module.
var (
	// ErrVertexNotFound indicates a vertex handle outside [0, len(Vertices)).
	ErrVertexNotFound = errors.New("skeleton: vertex not found")

	// ErrHalfedgeNotFound indicates a halfedge handle outside [0, len(Halfedges)).
	ErrHalfedgeNotFound = errors.New("skeleton: halfedge not found")

	// ErrNotOnHalfedge indicates a SkeletonPoint halfedge-parameter pair
	// whose point does not lie on the named halfedge within Epsilon.
	ErrNotOnHalfedge = errors.New("skeleton: point does not lie on halfedge")
)

// Vertex is one node of the skeleton graph: a 2-D point with its shrink
// time τ(v). OnBoundary marks vertices
// that lie on the source polygon (τ=0, not part of the medial axis).
type Vertex struct {
	Point      geom.Point2
	Time       float64
	OnBoundary bool
}

// IsSkeletonVertex reports whether v lies on the medial axis (τ(v) > 0),
// matching the original's Vertex_handle::is_skeleton().
func (v Vertex) IsSkeletonVertex() bool { return !v.OnBoundary && v.Time > geom.Epsilon }

// Halfedge is one directed arc of the skeleton graph. The two halfedges
// of a geometric edge are stored back to back, so the paired halfedge of
// handle h is h^1 (see Graph.Opposite), following the usual half-edge
// convention. InnerBisector is true when both endpoints are interior
// skeleton vertices.
type Halfedge struct {
	From, To      int
	InnerBisector bool
}

// Graph is the arena-indexed straight-skeleton plane graph for a single
// path's polygon π_i. Vertices and Halfedges are dense
// integer handle spaces; every per-vertex/per-halfedge attribute the
// package needs is folded directly into the Vertex/Halfedge struct
// (unlike meshmodel.Mesh, the skeleton has no external attribute maps to
// keep parallel, so separate slices would add indirection for no
// benefit).
type Graph struct {
	Vertices  []Vertex
	Halfedges []Halfedge
}

// NewGraph returns an empty skeleton graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddVertex appends a vertex and returns its handle.
func (g *Graph) AddVertex(v Vertex) int {
	g.Vertices = append(g.Vertices, v)
	return len(g.Vertices) - 1
}

// AddEdge appends both halfedges of an undirected geometric edge between
// a and b, returning the handle of the a->b halfedge (its opposite is
// always handle+1). InnerBisector is computed from both endpoints'
// IsSkeletonVertex(), per the glossary definition.
func (g *Graph) AddEdge(a, b int) (forward int) {
	inner := g.Vertices[a].IsSkeletonVertex() && g.Vertices[b].IsSkeletonVertex()
	forward = len(g.Halfedges)
	g.Halfedges = append(g.Halfedges,
		Halfedge{From: a, To: b, InnerBisector: inner},
		Halfedge{From: b, To: a, InnerBisector: inner},
	)
	return forward
}

// VertexAt returns the vertex at handle i, or ErrVertexNotFound if i is
// outside [0, len(Vertices)).
func (g *Graph) VertexAt(i int) (Vertex, error) {
	if i < 0 || i >= len(g.Vertices) {
		return Vertex{}, ErrVertexNotFound
	}
	return g.Vertices[i], nil
}

// HalfedgeAt returns the halfedge at handle i, or ErrHalfedgeNotFound if
// i is outside [0, len(Halfedges)).
func (g *Graph) HalfedgeAt(i int) (Halfedge, error) {
	if i < 0 || i >= len(g.Halfedges) {
		return Halfedge{}, ErrHalfedgeNotFound
	}
	return g.Halfedges[i], nil
}

// Opposite returns the paired halfedge handle of h.
func (g *Graph) Opposite(h int) int { return h ^ 1 }

// HalfedgesFrom returns the handles of every halfedge whose From == v.
func (g *Graph) HalfedgesFrom(v int) []int {
	var out []int
	for h, he := range g.Halfedges {
		if he.From == v {
			out = append(out, h)
		}
	}
	return out
}

// Length returns the Euclidean length of halfedge h.
func (g *Graph) Length(h int) float64 {
	he := g.Halfedges[h]
	return g.Vertices[he.From].Point.Dist(g.Vertices[he.To].Point)
}

// CanonicalHalfedge returns, for geometric edge h, the halfedge handle
// whose source id is smaller than its target id — each geometric edge is
// represented once, under the orientation convention id(source) <
// id(target), grounded on the original's edge2->vertex()->id() <
// edge2->opposite()->vertex()->id() tie-break.
func (g *Graph) CanonicalHalfedge(h int) int {
	he := g.Halfedges[h]
	if he.From < he.To {
		return h
	}
	return g.Opposite(h)
}

// InnerBisectorEdges returns the canonical halfedge handle of every inner
// bisector edge in the graph, each counted once.
func (g *Graph) InnerBisectorEdges() []int {
	var out []int
	for h, he := range g.Halfedges {
		if !he.InnerBisector {
			continue
		}
		if g.CanonicalHalfedge(h) == h {
			out = append(out, h)
		}
	}
	return out
}

// SkeletonVertices returns the handles of every vertex with τ(v) > 0.
func (g *Graph) SkeletonVertices() []int {
	var out []int
	for i, v := range g.Vertices {
		if v.IsSkeletonVertex() {
			out = append(out, i)
		}
	}
	return out
}
