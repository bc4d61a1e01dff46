package linker

import "github.com/terraloom/meshbridge/geom"

// exitCountOK enforces the polygon-exit constraint: a
// cross-path pair's connecting segment must cross the path boundary
// (outer ring plus holes, counted together) exactly once; a same-path
// pair must cross it exactly twice.
func exitCountOK(a, b geom.Point2, poly geom.PolygonWithHoles, samePath bool) bool {
	n := geom.CrossingCount(a, b, poly)
	if samePath {
		return n == 2
	}
	return n == 1
}
