package bridge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// flatGround builds a single large quad (two triangles) of ground at
// z=0, wide enough to sit under a whole test bridge, carrying label.
func flatGround(label meshmodel.Label) (*meshmodel.Mesh, *geom.Locator) {
	m := meshmodel.NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(-50, -50, 0))
	v1 := m.AddVertex(geom.NewPoint3(50, -50, 0))
	v2 := m.AddVertex(geom.NewPoint3(50, 50, 0))
	v3 := m.AddVertex(geom.NewPoint3(-50, 50, 0))
	m.AddFace(v0, v1, v2, label, -1, true, false)
	m.AddFace(v0, v2, v3, label, -1, true, false)

	tree := geom.BuildAABBTree(m.AABBTriangles())
	return m, geom.NewLocator(tree)
}

func rect(x0, x1, y0, y1 float64) geom.PolygonWithHoles {
	return geom.PolygonWithHoles{Outer: geom.Loop{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

func TestOptimizeProducesFiniteCost(t *testing.T) {
	mesh, locator := flatGround(meshmodel.LabelLowVeg)
	alpha := Endpoint{Point: geom.Point2{X: 0, Y: 0}, Elevation: 0, HalfWidth: 3}
	beta := Endpoint{Point: geom.Point2{X: 10, Y: 0}, Elevation: 0, HalfWidth: 3}
	poly := rect(-5, 15, -10, 10)

	opts := DefaultOptions()
	opts.MaxIterations = 5 // keep the test fast; Repair and BorderDistance are exercised directly below
	b, _ := Optimize(meshmodel.LabelRoad, alpha, beta, poly, poly, mesh, locator, opts)

	require.Equal(t, 10, b.N)
	require.False(t, b.Cost < 0)
	require.False(t, math.IsNaN(b.Cost) || math.IsInf(b.Cost, 0))
	require.NotEmpty(t, b.CrossingFaces)
}

func TestRepairClampsToBorderMaximum(t *testing.T) {
	b := &PathBridge{N: 2, Xl: []float64{10, 5, 10}, Xr: []float64{10, 5, 10}}
	ctx := Context{Dl0: 4, DlN: 4, Dr0: 4, DrN: 4}
	Repair(b, ctx)
	require.Equal(t, 4.0, b.Xl[0])
	require.Equal(t, 4.0, b.Xl[2])
	require.Equal(t, 4.0, b.Xr[0])
	require.Equal(t, 4.0, b.Xr[2])
}

func TestRepairEqualizesNegativeWidth(t *testing.T) {
	b := &PathBridge{N: 1, Xl: []float64{-3, 1}, Xr: []float64{1, 1}}
	ctx := Context{Dl0: 100, DlN: 100, Dr0: 100, DrN: 100}
	Repair(b, ctx)
	require.InDelta(t, 0, b.Xl[0]+b.Xr[0], 1e-9)
}

func TestBorderDistanceFindsNearestCrossing(t *testing.T) {
	poly := rect(0, 10, -5, 5)
	d := BorderDistance(geom.Point2{X: 5, Y: 0}, geom.Vector2{X: 0, Y: 1}, poly, 100)
	require.InDelta(t, 5, d, 1e-9)
}
