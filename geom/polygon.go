package geom

import (
	clipper "github.com/CWBudde/Go-Clipper2/port"
)

// fixedScale converts between meshbridge's float64 meters and Clipper2's
// int64 fixed-point coordinate system (its "Coordinate System" is
// documented as 64-bit integers for numerical stability). A scale of
// 1e4 keeps sub-millimetre precision across the multi-hundred-metre
// spans typical of road/rail/water paths.
const fixedScale = 1e4

// Loop is a closed 2-D polygon ring (outer boundary or a hole), in order.
type Loop []Point2

// PolygonWithHoles mirrors CGAL's Polygon_with_holes_2: an outer boundary
// plus zero or more hole loops, all in the same ground plane.
type PolygonWithHoles struct {
	Outer Loop
	Holes []Loop
}

// Rings returns outer boundary and holes as a single slice, for code that
// treats "outer or hole" uniformly (e.g. crossing counts, §4.3).
func (p PolygonWithHoles) Rings() []Loop {
	rings := make([]Loop, 0, 1+len(p.Holes))
	rings = append(rings, p.Outer)
	rings = append(rings, p.Holes...)
	return rings
}

func toFixed(v float64) int64 { return int64(v * fixedScale) }

func loopToPath64(l Loop) clipper.Path64 {
	path := make(clipper.Path64, len(l))
	for i, p := range l {
		path[i] = clipper.Point64{X: toFixed(p.X), Y: toFixed(p.Y)}
	}
	return path
}

func (p PolygonWithHoles) toPaths64() clipper.Paths64 {
	paths := make(clipper.Paths64, 0, 1+len(p.Holes))
	paths = append(paths, loopToPath64(p.Outer))
	for _, h := range p.Holes {
		paths = append(paths, loopToPath64(h))
	}
	return paths
}

// PointInPolygon reports whether p lies inside the polygon-with-holes pwh:
// inside the outer ring and outside every hole ring, using the standard
// even-odd ray-casting test against each ring.
func PointInPolygon(p Point2, pwh PolygonWithHoles) bool {
	if !pointInRing(p, pwh.Outer) {
		return false
	}
	for _, h := range pwh.Holes {
		if pointInRing(p, h) {
			return false
		}
	}
	return true
}

func pointInRing(p Point2, ring Loop) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xIntersect := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// CrossingCount returns the number of times closed segment (a,b) crosses the
// boundary of pwh (outer ring and every hole ring counted together), using
// the SegmentsIntersect primitive against each boundary edge. This backs
// the polygon-exit constraint: a cross-path link must cross exactly
// once, a same-path shortcut exactly twice.
func CrossingCount(a, b Point2, pwh PolygonWithHoles) int {
	count := 0
	for _, ring := range pwh.Rings() {
		n := len(ring)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if SegmentsIntersect(a, b, ring[i], ring[j]) {
				count++
			}
		}
	}
	return count
}

// UnionFootprint unions a set of polygon-with-holes footprints (outer
// rings only, holes dropped — used when building a support/removal tube
// footprint that must not itself contain holes) via Clipper2's Vatti-based
// boolean union. Only the first ring of the union result is returned.
func UnionFootprint(polys ...PolygonWithHoles) (Loop, error) {
	subjects := make(clipper.Paths64, 0, len(polys))
	for _, p := range polys {
		subjects = append(subjects, loopToPath64(p.Outer))
	}
	result, err := clipper.Union64(subjects, nil, clipper.NonZero)
	if err != nil {
		return nil, err
	}
	return mergePaths64(result), nil
}

func mergePaths64(paths clipper.Paths64) Loop {
	if len(paths) == 0 {
		return nil
	}
	out := make(Loop, 0, len(paths[0]))
	for _, p := range paths[0] {
		out = append(out, Point2{X: float64(p.X) / fixedScale, Y: float64(p.Y) / fixedScale})
	}
	return out
}
