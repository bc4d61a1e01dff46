package bridge

import "github.com/terraloom/meshbridge/geom"

// BorderDistance shoots a ray from origin along dir and returns the
// distance to the nearest crossing of poly's boundary (outer ring and
// holes alike), capped at maxDist when no crossing is found. This is the
// separate utility that shoots the perpendicular segment inside the
// path polygon to the border.
func BorderDistance(origin geom.Point2, dir geom.Vector2, poly geom.PolygonWithHoles, maxDist float64) float64 {
	far := origin.Add(dir.Scale(maxDist))
	best := maxDist
	found := false
	for _, ring := range poly.Rings() {
		n := len(ring)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if !geom.SegmentsIntersect(origin, far, ring[i], ring[j]) {
				continue
			}
			hit, ok := geom.SegmentIntersection(origin, far, ring[i], ring[j])
			if !ok {
				continue
			}
			d := origin.Dist(hit)
			if !found || d < best {
				best = d
				found = true
			}
		}
	}
	return best
}
