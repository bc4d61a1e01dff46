// SPDX-License-Identifier: MIT

package testfixtures

import (
	"github.com/terraloom/meshbridge/bridge"
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/linker"
	"github.com/terraloom/meshbridge/meshmodel"
	"github.com/terraloom/meshbridge/skeleton"
)

// Scenario bundles a set of linker paths with the ground mesh/locator the
// paths sit on, ready to hand to linker.Link, bridge.Optimize, or
// integrate.Integrate. Every constructor here leaves Ground nil.
type Scenario struct {
	Paths  []linker.Path
	Mesh   *meshmodel.Mesh
	Ground *geom.Locator
}

// groundPlane builds a flat square of ground at elevation z, wide enough
// to hold whichever scenario is being constructed.
func groundPlane(z, half float64, label meshmodel.Label) *meshmodel.Mesh {
	m := meshmodel.NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(-half, -half, z))
	v1 := m.AddVertex(geom.NewPoint3(half, -half, z))
	v2 := m.AddVertex(geom.NewPoint3(half, half, z))
	v3 := m.AddVertex(geom.NewPoint3(-half, half, z))
	m.AddFace(v0, v1, v2, label, -1, true, false)
	m.AddFace(v0, v2, v3, label, -1, true, false)
	return m
}

func rectPolygon(x0, x1, y0, y1 float64) geom.PolygonWithHoles {
	return geom.PolygonWithHoles{Outer: geom.Loop{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

// straightFragment builds a single-vertex skeleton for a path whose
// polygon is the rectangle [x0,x1]x[-halfWidth,halfWidth], with the
// skeleton vertex pinned at (cx, 0) and shrink time halfWidth (so
// road-width estimation reports 2*halfWidth there).
func straightFragment(id int, label meshmodel.Label, cx, x0, x1, halfWidth float64) linker.Path {
	g := skeleton.NewGraph()
	g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: cx, Y: 0}, Time: halfWidth})
	return linker.Path{
		ID:       id,
		Label:    label,
		Skeleton: g,
		Polygon:  rectPolygon(x0, x1, -halfWidth, halfWidth),
	}
}

// CollinearGap builds scenario 1: two collinear ROAD fragments 10 m
// apart along the x-axis, both 4 m wide (tau=2), on flat ground.
func CollinearGap() Scenario {
	a := straightFragment(0, meshmodel.LabelRoad, 9, 0, 10, 2)
	b := straightFragment(1, meshmodel.LabelRoad, 21, 20, 30, 2)
	return Scenario{
		Paths:  []linker.Path{a, b},
		Mesh:   groundPlane(0, 100, meshmodel.LabelLowVeg),
		Ground: nil,
	}
}

// PerpendicularCrossing builds scenario 2: a ROAD fragment along x and a
// RAIL fragment along y, crossing at the origin with zero gap. The two
// paths carry different labels, so linker.Link never pairs them. Each
// skeleton is a single inner edge lying inside its own polygon: the
// segment between its two vertices is dominated and crosses the polygon
// boundary 0 times, so no same-path shortcut is produced either.
func PerpendicularCrossing() Scenario {
	road := linker.Path{
		ID:      0,
		Label:   meshmodel.LabelRoad,
		Polygon: rectPolygon(-20, 20, -3, 3),
	}
	g := skeleton.NewGraph()
	left := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: -15, Y: 0}, Time: 3})
	right := g.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 15, Y: 0}, Time: 3})
	g.AddEdge(left, right)
	road.Skeleton = g

	rail := linker.Path{
		ID:      1,
		Label:   meshmodel.LabelRail,
		Polygon: rectPolygon(-3, 3, -20, 20),
	}
	g2 := skeleton.NewGraph()
	bottom := g2.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 0, Y: -15}, Time: 3})
	top := g2.AddVertex(skeleton.Vertex{Point: geom.Point2{X: 0, Y: 15}, Time: 3})
	g2.AddEdge(bottom, top)
	rail.Skeleton = g2

	return Scenario{
		Paths: []linker.Path{road, rail},
		Mesh:  groundPlane(0, 100, meshmodel.LabelLowVeg),
	}
}

// NarrowRoad builds scenario 3: a single 1 m-wide ROAD polygon broken
// into two fragments by a small gap — narrow enough that road-width
// estimation reports under the 2 m minimum at both endpoints, so no
// link should survive filtering.
func NarrowRoad() Scenario {
	a := straightFragment(0, meshmodel.LabelRoad, 4, 0, 5, 0.5)
	b := straightFragment(1, meshmodel.LabelRoad, 10, 5.5, 15, 0.5)
	return Scenario{
		Paths: []linker.Path{a, b},
		Mesh:  groundPlane(0, 100, meshmodel.LabelLowVeg),
	}
}

// TerrainCliff builds scenario 4: a ROAD fragment over a 5 m terrain
// drop across the gap — the alpha endpoint sits on a high plateau, the
// beta endpoint on a low plain. The two planes meet at x=15 with no wall
// faces between them.
func TerrainCliff() Scenario {
	a := straightFragment(0, meshmodel.LabelRoad, 9, 0, 10, 2)
	b := straightFragment(1, meshmodel.LabelRoad, 21, 20, 30, 2)

	m := meshmodel.NewMesh()
	highV := []int{
		m.AddVertex(geom.NewPoint3(-100, -100, 5)),
		m.AddVertex(geom.NewPoint3(15, -100, 5)),
		m.AddVertex(geom.NewPoint3(15, 100, 5)),
		m.AddVertex(geom.NewPoint3(-100, 100, 5)),
	}
	m.AddFace(highV[0], highV[1], highV[2], meshmodel.LabelLowVeg, -1, true, false)
	m.AddFace(highV[0], highV[2], highV[3], meshmodel.LabelLowVeg, -1, true, false)

	lowV := []int{
		m.AddVertex(geom.NewPoint3(15, -100, 0)),
		m.AddVertex(geom.NewPoint3(100, -100, 0)),
		m.AddVertex(geom.NewPoint3(100, 100, 0)),
		m.AddVertex(geom.NewPoint3(15, 100, 0)),
	}
	m.AddFace(lowV[0], lowV[1], lowV[2], meshmodel.LabelLowVeg, -1, true, false)
	m.AddFace(lowV[0], lowV[2], lowV[3], meshmodel.LabelLowVeg, -1, true, false)

	return Scenario{Paths: []linker.Path{a, b}, Mesh: m}
}

// ShortLink builds scenario 5: a link whose endpoint straight-line
// distance is under 1 m, so the bridge optimizer must fall back to N=1.
func ShortLink() Scenario {
	a := straightFragment(0, meshmodel.LabelRoad, 4.6, 0, 5, 2)
	b := straightFragment(1, meshmodel.LabelRoad, 5.4, 5.1, 10, 2)
	return Scenario{Paths: []linker.Path{a, b}, Mesh: groundPlane(0, 100, meshmodel.LabelLowVeg)}
}

// ShortLinkEndpoints returns the bridge.Endpoint pair for the ShortLink
// scenario directly, since its N=1 degeneracy is usually exercised
// against package bridge rather than through the full linker.
func ShortLinkEndpoints() (alpha, beta bridge.Endpoint, poly geom.PolygonWithHoles) {
	alpha = bridge.Endpoint{Point: geom.Point2{X: 4.6, Y: 0}, Elevation: 0, HalfWidth: 2}
	beta = bridge.Endpoint{Point: geom.Point2{X: 5.4, Y: 0}, Elevation: 0, HalfWidth: 2}
	poly = rectPolygon(-5, 15, -10, 10)
	return
}

// PinchedWidth returns endpoints inside a corridor whose borders pinch
// hard toward the middle (scenario 6).
func PinchedWidth() (alpha, beta bridge.Endpoint, alphaPoly, betaPoly geom.PolygonWithHoles) {
	alpha = bridge.Endpoint{Point: geom.Point2{X: 0, Y: 0}, Elevation: 0, HalfWidth: 3}
	beta = bridge.Endpoint{Point: geom.Point2{X: 20, Y: 0}, Elevation: 0, HalfWidth: 3}
	// A bowtie-like polygon that narrows to 0.1 m at x=10. BorderDistance
	// is evaluated only at the two endpoints, so the pinch itself does not
	// enter the solver's residuals.
	alphaPoly = geom.PolygonWithHoles{Outer: geom.Loop{
		{X: -5, Y: -4}, {X: 10, Y: -0.05}, {X: 25, Y: -4},
		{X: 25, Y: 4}, {X: 10, Y: 0.05}, {X: -5, Y: 4},
	}}
	betaPoly = alphaPoly
	return
}
