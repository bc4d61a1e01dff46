package skeleton

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terraloom/meshbridge/geom"
)

// buildLine builds a 3-vertex path 0-1-2 along the x-axis with v1 an
// interior (skeleton) vertex and v0,v2 on the polygon boundary.
func buildLine() (*Graph, int, int, int) {
	g := NewGraph()
	v0 := g.AddVertex(Vertex{Point: geom.Point2{X: 0, Y: 0}, OnBoundary: true})
	v1 := g.AddVertex(Vertex{Point: geom.Point2{X: 5, Y: 0}, Time: 3})
	v2 := g.AddVertex(Vertex{Point: geom.Point2{X: 10, Y: 0}, OnBoundary: true})
	g.AddEdge(v0, v1)
	g.AddEdge(v1, v2)
	return g, v0, v1, v2
}

func TestInnerBisectorRequiresBothEndpointsInterior(t *testing.T) {
	g, v0, v1, _ := buildLine()
	h := g.AddEdge(v0, v1) // v0 is boundary, v1 is interior -> not inner
	require.False(t, g.Halfedges[h].InnerBisector)

	g2 := NewGraph()
	a := g2.AddVertex(Vertex{Point: geom.Point2{X: 0, Y: 0}, Time: 1})
	b := g2.AddVertex(Vertex{Point: geom.Point2{X: 1, Y: 0}, Time: 1})
	h2 := g2.AddEdge(a, b)
	require.True(t, g2.Halfedges[h2].InnerBisector)
}

func TestCanonicalHalfedgePicksSmallerSource(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Vertex{Point: geom.Point2{X: 0, Y: 0}, Time: 1})
	b := g.AddVertex(Vertex{Point: geom.Point2{X: 1, Y: 0}, Time: 1})
	fwd := g.AddEdge(b, a) // From=b(1), To=a(0)
	canon := g.CanonicalHalfedge(fwd)
	require.Equal(t, a, g.Halfedges[canon].From)
	require.Equal(t, b, g.Halfedges[canon].To)
}

func TestSkeletonVerticesExcludesBoundary(t *testing.T) {
	g, v0, v1, v2 := buildLine()
	sv := g.SkeletonVertices()
	require.ElementsMatch(t, []int{v1}, sv)
	require.NotContains(t, sv, v0)
	require.NotContains(t, sv, v2)
}

func TestHalfedgePointTimeInterpolates(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Vertex{Point: geom.Point2{X: 0, Y: 0}, Time: 2})
	b := g.AddVertex(Vertex{Point: geom.Point2{X: 10, Y: 0}, Time: 6})
	h := g.AddEdge(a, b)
	mid := HalfedgePoint(0, h, geom.Point2{X: 5, Y: 0})
	require.InDelta(t, 4, Time(g, mid), 1e-9)
}

func TestVertexAtAndHalfedgeAtBoundsChecks(t *testing.T) {
	g, v0, _, _ := buildLine()

	v, err := g.VertexAt(v0)
	require.NoError(t, err)
	require.Equal(t, g.Vertices[v0], v)

	_, err = g.VertexAt(99)
	require.ErrorIs(t, err, ErrVertexNotFound)

	he, err := g.HalfedgeAt(0)
	require.NoError(t, err)
	require.Equal(t, g.Halfedges[0], he)

	_, err = g.HalfedgeAt(99)
	require.ErrorIs(t, err, ErrHalfedgeNotFound)
}

func TestValidateAcceptsPointsOnHalfedgeAndRejectsOffHalfedge(t *testing.T) {
	g := NewGraph()
	a := g.AddVertex(Vertex{Point: geom.Point2{X: 0, Y: 0}, Time: 2})
	b := g.AddVertex(Vertex{Point: geom.Point2{X: 10, Y: 0}, Time: 6})
	h := g.AddEdge(a, b)

	onSegment := HalfedgePoint(0, h, geom.Point2{X: 4, Y: 0})
	require.NoError(t, Validate(g, onSegment))

	offSegment := HalfedgePoint(0, h, geom.Point2{X: 4, Y: 3})
	require.ErrorIs(t, Validate(g, offSegment), ErrNotOnHalfedge)

	badHalfedge := HalfedgePoint(0, 99, geom.Point2{X: 4, Y: 0})
	require.ErrorIs(t, Validate(g, badHalfedge), ErrHalfedgeNotFound)

	goodVertex := VertexPoint(0, a, g.Vertices[a].Point)
	require.NoError(t, Validate(g, goodVertex))

	badVertex := VertexPoint(0, 99, geom.Point2{})
	require.ErrorIs(t, Validate(g, badVertex), ErrVertexNotFound)
}
