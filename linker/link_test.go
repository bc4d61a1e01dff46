package linker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
	"github.com/terraloom/meshbridge/skeleton"
)

func rect(x0, x1 float64) geom.PolygonWithHoles {
	return geom.PolygonWithHoles{Outer: geom.Loop{
		{X: x0, Y: -2}, {X: x1, Y: -2}, {X: x1, Y: 2}, {X: x0, Y: 2},
	}}
}

func fragment(id int, cx float64) Path {
	g := skeleton.NewGraph()
	g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: cx, Y: 0}, Time: 2})
	x0, x1 := cx-1, cx+1
	return Path{ID: id, Label: meshmodel.LabelRoad, Skeleton: g, Polygon: rect(x0, x1)}
}

func TestLinkFindsCrossPathGap(t *testing.T) {
	a := fragment(0, 9)
	b := fragment(1, 21)
	a.Polygon = rect(0, 10)
	b.Polygon = rect(20, 30)

	links := Link([]Path{a, b}, DefaultOptions())
	require.Len(t, links, 1)
	require.InDelta(t, 12, links[0].Distance, 1e-9)
	require.InDelta(t, 4, links[0].HalfWidthA, 1e-9)
	require.InDelta(t, 4, links[0].HalfWidthB, 1e-9)
}

func TestLinkDropsBelowMinimalWidth(t *testing.T) {
	a := fragment(0, 9)
	b := fragment(1, 21)
	a.Polygon = rect(0, 10)
	b.Polygon = rect(20, 30)
	a.Skeleton.Vertices[0].Time = 0.5 // half-width below 2m minimum

	links := Link([]Path{a, b}, DefaultOptions())
	require.Empty(t, links)
}

func TestLinkSkipsOtherLabels(t *testing.T) {
	a := fragment(0, 9)
	a.Label = meshmodel.LabelBuilding
	b := fragment(1, 21)
	b.Label = meshmodel.LabelBuilding

	links := Link([]Path{a, b}, DefaultOptions())
	require.Empty(t, links)
}

func TestExitCountOKCrossVsSamePath(t *testing.T) {
	poly := rect(0, 10)
	require.True(t, exitCountOK(geom.Point2{X: 9, Y: 0}, geom.Point2{X: 21, Y: 0}, poly, false))
	require.False(t, exitCountOK(geom.Point2{X: 9, Y: 0}, geom.Point2{X: 21, Y: 0}, poly, true))
}
