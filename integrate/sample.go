package integrate

import (
	"math"
	"math/rand"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// triangleArea2D returns the ground-plane (XY-projected) area of face f.
func triangleArea2D(m *meshmodel.Mesh, f int) float64 {
	a, b, c := m.Triangle(f)
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
}

// samplePoint draws a uniformly-random point inside triangle (a,b,c) via
// the standard sqrt-barycentric method.
func samplePoint(a, b, c geom.Point3, rng *rand.Rand) geom.Point3 {
	r1, r2 := rng.Float64(), rng.Float64()
	sq := r1
	if sq > 1 {
		sq = 1
	}
	u := 1 - math.Sqrt(sq)
	v := r2 * math.Sqrt(sq)
	w := 1 - u - v
	return geom.NewPoint3(
		u*a.X+v*b.X+w*c.X,
		u*a.Y+v*b.Y+w*c.Y,
		u*a.Z+v*b.Z+w*c.Z,
	)
}

// SampleHoles is the final integration step: every new face with no attached
// points is sampled at the given density (points per unit ground area),
// each sample point inheriting its face's label. When preMesh/preLocator
// (a snapshot of the mesh taken before this bridge's integration) are
// non-nil, a sampled point whose face's label there disagrees with the
// label just assigned is promoted to LEVEL_CROSSING.
func SampleHoles(m *meshmodel.Mesh, points *[]Point, density float64, preMesh *meshmodel.Mesh, preLocator *geom.Locator, rng *rand.Rand) {
	for f := range m.Faces {
		if len(m.Points[f]) > 0 || !m.NewFace[f] {
			continue
		}
		area := triangleArea2D(m, f)
		if area < 0 {
			area = -area
		}
		n := int(area * density)
		a, b, c := m.Triangle(f)
		label := m.Label[f]
		for k := 0; k < n; k++ {
			pt := samplePoint(a, b, c, rng)
			pointLabel := label
			if preMesh != nil && preLocator != nil {
				if hit, ok := preLocator.Locate(pt.X, pt.Y, pt.Z); ok && preMesh.Label[hit.Face] != label {
					pointLabel = meshmodel.LabelLevelCrossing
				}
			}
			idx := len(*points)
			*points = append(*points, Point{X: pt.X, Y: pt.Y, Z: pt.Z, Label: pointLabel, Face: f})
			m.Points[f] = append(m.Points[f], idx)
		}
	}
}
