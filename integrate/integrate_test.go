package integrate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terraloom/meshbridge/bridge"
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/linker"
	"github.com/terraloom/meshbridge/meshmodel"
	"github.com/terraloom/meshbridge/ribbon"
)

func flatGround(label meshmodel.Label) *meshmodel.Mesh {
	m := meshmodel.NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(-50, -50, 0))
	v1 := m.AddVertex(geom.NewPoint3(50, -50, 0))
	v2 := m.AddVertex(geom.NewPoint3(50, 50, 0))
	v3 := m.AddVertex(geom.NewPoint3(-50, 50, 0))
	m.AddFace(v0, v1, v2, label, -1, true, false)
	m.AddFace(v0, v2, v3, label, -1, true, false)
	return m
}

func rect(x0, x1, y0, y1 float64) geom.PolygonWithHoles {
	return geom.PolygonWithHoles{Outer: geom.Loop{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

func TestSampleHolesFillsEmptyNewFaces(t *testing.T) {
	m := meshmodel.NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(4, 0, 0))
	v2 := m.AddVertex(geom.NewPoint3(0, 4, 0))
	f := m.AddFace(v0, v1, v2, meshmodel.LabelRoad, 0, true, true)

	points := []Point{}
	rng := rand.New(rand.NewSource(1))
	SampleHoles(m, &points, 2, nil, nil, rng)

	require.NotEmpty(t, points)
	require.Len(t, m.Points[f], len(points))
	for _, p := range points {
		require.Equal(t, meshmodel.LabelRoad, p.Label)
		require.Equal(t, f, p.Face)
	}
}

func TestSampleHolesSkipsFacesWithExistingPoints(t *testing.T) {
	m := meshmodel.NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(4, 0, 0))
	v2 := m.AddVertex(geom.NewPoint3(0, 4, 0))
	m.AddFace(v0, v1, v2, meshmodel.LabelRoad, 0, true, true)
	m.Points[0] = []int{0}

	points := []Point{{X: 1, Y: 1, Z: 0, Label: meshmodel.LabelRoad, Face: 0}}
	rng := rand.New(rand.NewSource(1))
	SampleHoles(m, &points, 2, nil, nil, rng)

	require.Len(t, points, 1)
}

func TestSampleHolesPromotesLevelCrossingOnConflict(t *testing.T) {
	m := meshmodel.NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(4, 0, 0))
	v2 := m.AddVertex(geom.NewPoint3(0, 4, 0))
	m.AddFace(v0, v1, v2, meshmodel.LabelRoad, 0, true, true)

	pre := meshmodel.NewMesh()
	pv0 := pre.AddVertex(geom.NewPoint3(-50, -50, 0))
	pv1 := pre.AddVertex(geom.NewPoint3(50, -50, 0))
	pv2 := pre.AddVertex(geom.NewPoint3(50, 50, 0))
	pv3 := pre.AddVertex(geom.NewPoint3(-50, 50, 0))
	pre.AddFace(pv0, pv1, pv2, meshmodel.LabelRail, -1, true, false)
	pre.AddFace(pv0, pv2, pv3, meshmodel.LabelRail, -1, true, false)
	preLocator := geom.NewLocator(geom.BuildAABBTree(pre.AABBTriangles()))

	points := []Point{}
	rng := rand.New(rand.NewSource(7))
	SampleHoles(m, &points, 3, pre, preLocator, rng)

	require.NotEmpty(t, points)
	for _, p := range points {
		require.Equal(t, meshmodel.LabelLevelCrossing, p.Label)
	}
}

func TestPathCorefineAppendsSlabFaces(t *testing.T) {
	removal := meshmodel.NewMesh()
	poly := rect(0, 10, 0, 10)
	before := len(removal.Faces)

	appended := PathCorefine(removal, poly, meshmodel.LabelRail, 3, 0, &AttributeVisitor{})

	require.NotEmpty(t, appended)
	require.Greater(t, len(removal.Faces), before)
	for _, f := range appended {
		require.Equal(t, meshmodel.LabelRail, removal.Label[f])
		require.Equal(t, 3, removal.Path[f])
	}
}

func TestPathCorefineEmptyPolygonIsNoop(t *testing.T) {
	removal := meshmodel.NewMesh()
	appended := PathCorefine(removal, geom.PolygonWithHoles{}, meshmodel.LabelRoad, 0, 0, &AttributeVisitor{})
	require.Empty(t, appended)
	require.Empty(t, removal.Faces)
}

func TestCapClosesOpenRibbonRim(t *testing.T) {
	s := straightStrip(t)
	geoMesh := ribbon.Build(s, 0, ribbon.DefaultOptions())

	beforeFaces := len(geoMesh.Surface.Faces)
	Cap(geoMesh.Surface, meshmodel.LabelOther, 0, -100, nil)
	require.Greater(t, len(geoMesh.Surface.Faces), beforeFaces)

	rimAfter := boundaryEdges(geoMesh.Surface)
	require.Empty(t, rimAfter)
}

func straightStrip(t *testing.T) *bridge.PathBridge {
	t.Helper()
	mesh := flatGround(meshmodel.LabelLowVeg)
	locator := geom.NewLocator(geom.BuildAABBTree(mesh.AABBTriangles()))
	alpha := bridge.Endpoint{Point: geom.Point2{X: 0, Y: 0}, Elevation: 0, HalfWidth: 3}
	beta := bridge.Endpoint{Point: geom.Point2{X: 10, Y: 0}, Elevation: 0, HalfWidth: 3}
	poly := rect(-5, 15, -10, 10)
	opts := bridge.DefaultOptions()
	opts.MaxIterations = 3
	b, _ := bridge.Optimize(meshmodel.LabelRoad, alpha, beta, poly, poly, mesh, locator, opts)
	return b
}

func TestIntegrateFoldsAcceptedBridgeIntoMesh(t *testing.T) {
	m := flatGround(meshmodel.LabelLowVeg)
	locator := geom.NewLocator(geom.BuildAABBTree(m.AABBTriangles()))

	alpha := bridge.Endpoint{Point: geom.Point2{X: 0, Y: 0}, Elevation: 0, HalfWidth: 3}
	beta := bridge.Endpoint{Point: geom.Point2{X: 10, Y: 0}, Elevation: 0, HalfWidth: 3}
	poly := rect(-5, 15, -10, 10)

	bopts := bridge.DefaultOptions()
	bopts.MaxIterations = 3
	ropts := ribbon.DefaultOptions()
	opts := Options{SamplingDensity: 1}

	link := linker.PathLink{PathA: 0, PathB: 1}
	points := []Point{}
	rng := rand.New(rand.NewSource(3))

	facesBefore := len(m.Faces)
	_, newLocator, result := Integrate(m, points, link, meshmodel.LabelRoad, alpha, beta, poly, poly, locator, bopts, ropts, opts, nil, rng)

	require.True(t, result.Accepted)
	require.NotNil(t, newLocator)
	require.Greater(t, len(m.Faces), facesBefore)
}
