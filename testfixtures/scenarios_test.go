// SPDX-License-Identifier: MIT

package testfixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terraloom/meshbridge/bridge"
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/linker"
	"github.com/terraloom/meshbridge/meshmodel"
)

func TestCollinearGapProducesOneLink(t *testing.T) {
	s := CollinearGap()
	links := linker.Link(s.Paths, linker.DefaultOptions())
	require.Len(t, links, 1)
	require.InDelta(t, 12, links[0].Distance, 1e-9)
	require.InDelta(t, 4, links[0].HalfWidthA, 1e-9)
	require.InDelta(t, 4, links[0].HalfWidthB, 1e-9)
}

func TestPerpendicularCrossingYieldsNoCrossPathLink(t *testing.T) {
	s := PerpendicularCrossing()
	links := linker.Link(s.Paths, linker.DefaultOptions())
	for _, l := range links {
		require.Equal(t, l.PathA, l.PathB, "any surviving link at a zero-gap perpendicular crossing must be same-path")
	}
}

func TestNarrowRoadYieldsNoLink(t *testing.T) {
	s := NarrowRoad()
	links := linker.Link(s.Paths, linker.DefaultOptions())
	require.Empty(t, links)
}

func TestTerrainCliffProducesMonotoneElevation(t *testing.T) {
	s := TerrainCliff()
	locator := geom.NewLocator(geom.BuildAABBTree(s.Mesh.AABBTriangles()))

	alpha := bridge.Endpoint{Point: geom.Point2{X: 9, Y: 0}, Elevation: 5, HalfWidth: 2}
	beta := bridge.Endpoint{Point: geom.Point2{X: 21, Y: 0}, Elevation: 0, HalfWidth: 2}
	poly := rectPolygon(-5, 35, -10, 10)

	opts := bridge.DefaultOptions()
	b, _ := bridge.Optimize(s.Paths[0].Label, alpha, beta, poly, poly, s.Mesh, locator, opts)

	for i := 1; i <= b.N; i++ {
		require.LessOrEqual(t, b.Z[i], b.Z[i-1]+1e-6, "elevation must not rise along the descending link direction")
	}
}

func TestShortLinkFallsBackToSingleSegment(t *testing.T) {
	s := ShortLink()
	alpha, beta, poly := ShortLinkEndpoints()
	mesh := groundPlane(0, 100, meshmodel.LabelLowVeg)
	locator := geom.NewLocator(geom.BuildAABBTree(mesh.AABBTriangles()))

	opts := bridge.DefaultOptions()
	b, _ := bridge.Optimize(s.Paths[0].Label, alpha, beta, poly, poly, mesh, locator, opts)

	require.Equal(t, 1, b.N)
	require.Len(t, b.Z, 2)
}

func TestPinchedWidthRepairsToNonNegative(t *testing.T) {
	alpha, beta, alphaPoly, betaPoly := PinchedWidth()
	mesh := groundPlane(0, 100, meshmodel.LabelLowVeg)
	locator := geom.NewLocator(geom.BuildAABBTree(mesh.AABBTriangles()))

	opts := bridge.DefaultOptions()
	b, _ := bridge.Optimize(meshmodel.LabelRoad, alpha, beta, alphaPoly, betaPoly, mesh, locator, opts)

	for i := range b.Xl {
		require.GreaterOrEqual(t, b.Xl[i]+b.Xr[i], -1e-9)
	}
}
