package roadwidth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/skeleton"
)

// buildCorridor builds a straight run of inner-bisector edges along the
// x-axis, from (0,0) to (30,0), all vertices sharing shrink time 4, so the
// expected weighted half-width collapses to exactly 2*4=8 regardless of
// the c(h) weighting (every w(h) term is the same).
func buildCorridor(t *testing.T) (*skeleton.Graph, int, int, int) {
	t.Helper()
	g := skeleton.NewGraph()
	v0 := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 0, Y: 0}, Time: 4})
	v1 := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 15, Y: 0}, Time: 4})
	v2 := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 30, Y: 0}, Time: 4})
	g.AddEdge(v0, v1)
	g.AddEdge(v1, v2)
	return g, v0, v1, v2
}

func TestEstimateUniformCorridorWidth(t *testing.T) {
	g, v0, _, _ := buildCorridor(t)
	p := skeleton.VertexPoint(0, v0, geom.Point2{X: 0, Y: 0})
	w := Estimate(g, p, geom.Vector2{X: 1, Y: 0}, DefaultOptions())
	require.InDelta(t, 8, w, 1e-9)
}

func TestEstimateHalfedgePointUniformWidth(t *testing.T) {
	g, v0, v1, _ := buildCorridor(t)
	h := g.AddEdge(v0, v1)
	p := skeleton.HalfedgePoint(0, h, geom.Point2{X: 7.5, Y: 0})
	w := Estimate(g, p, geom.Vector2{X: 1, Y: 0}, DefaultOptions())
	require.InDelta(t, 8, w, 1e-9)
}

func TestEstimateFallbackVertexIsolated(t *testing.T) {
	g := skeleton.NewGraph()
	v0 := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 0, Y: 0}, Time: 3})
	p := skeleton.VertexPoint(0, v0, geom.Point2{X: 0, Y: 0})
	w := Estimate(g, p, geom.Vector2{X: 1, Y: 0}, DefaultOptions())
	require.InDelta(t, 6, w, 1e-9)
}

func TestEstimateFallbackHalfedgeBoundary(t *testing.T) {
	// Boundary vertices -> no inner-bisector edges reachable.
	g := skeleton.NewGraph()
	a := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 0, Y: 0}, OnBoundary: true})
	b := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 10, Y: 0}, OnBoundary: true})
	h := g.AddEdge(a, b)
	p := skeleton.HalfedgePoint(0, h, geom.Point2{X: 5, Y: 0})
	w := Estimate(g, p, geom.Vector2{X: 1, Y: 0}, DefaultOptions())
	require.InDelta(t, 0, w, 1e-9) // both endpoints τ=0
}

func TestEstimateRespectsNeighborhoodRadius(t *testing.T) {
	g := skeleton.NewGraph()
	v0 := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 0, Y: 0}, Time: 2})
	v1 := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 100, Y: 0}, Time: 50})
	g.AddEdge(v0, v1)

	p := skeleton.VertexPoint(0, v0, geom.Point2{X: 0, Y: 0})
	opts := Options{NeighborhoodRadius: 10}
	w := Estimate(g, p, geom.Vector2{X: 1, Y: 0}, opts)
	// The single edge is 100 long, exceeding the radius, so it is never
	// relaxed into and the neighborhood is empty at v0 itself beyond the
	// starting vertex: falls back to 2*tau(v0).
	require.InDelta(t, 4, w, 1e-9)
}
