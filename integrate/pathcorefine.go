package integrate

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// prismFromPolygon fan-triangulates poly.Outer (assumed convex or at least
// star-shaped about its first vertex — holes are ignored, since a crossed
// path's footprint is thin and rarely perforated) and extrudes it between
// zBase and zBase+thickness, producing a closed thin prism labelled with
// the crossed path's own label so the corefined slab still reads as that
// path after integration.
func prismFromPolygon(poly geom.PolygonWithHoles, label meshmodel.Label, pathID int, zBase, thickness float64) *meshmodel.Mesh {
	ring := poly.Outer
	if len(ring) < 3 {
		return meshmodel.NewMesh()
	}

	m := meshmodel.NewMesh()
	n := len(ring)
	bottom := make([]int, n)
	top := make([]int, n)
	for i, p := range ring {
		bottom[i] = m.AddVertex(geom.NewPoint3(p.X, p.Y, zBase))
		top[i] = m.AddVertex(geom.NewPoint3(p.X, p.Y, zBase+thickness))
	}

	fan := func(loop []int, z float64, flip bool) {
		for i := 1; i < n-1; i++ {
			a, b, c := loop[0], loop[i], loop[i+1]
			if flip {
				b, c = c, b
			}
			m.AddFace(a, b, c, label, pathID, false, true)
		}
	}
	fan(bottom, zBase, true)
	fan(top, zBase+thickness, false)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.AddFace(bottom[i], bottom[j], top[j], label, pathID, false, true)
		m.AddFace(bottom[i], top[j], top[i], label, pathID, false, true)
	}
	return m
}

// PathCorefine handles the case where a bridge crosses another
// ROAD or RAIL path, the removal tube is corefined with a thin slab cut
// from the crossed path's polygon at the bridge's own start elevation, so
// the difference operation that follows also removes the level-crossing
// footprint cleanly. Returns the handles of the appended slab faces.
func PathCorefine(removal *meshmodel.Mesh, crossed geom.PolygonWithHoles, crossedLabel meshmodel.Label, crossedPathID int, startElevation float64, visitor Visitor) []int {
	const slabThickness = 0.05
	slab := prismFromPolygon(crossed, crossedLabel, crossedPathID, startElevation-slabThickness/2, slabThickness)
	if len(slab.Faces) == 0 {
		return nil
	}
	return appendMesh(removal, slab, visitor, false)
}
