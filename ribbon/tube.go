package ribbon

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// extrudeTube builds a closed volume from a ribbon strip: the strip
// itself as the top cap, a shifted
// duplicate as the bottom cap (reversed winding, neutral label), and
// side walls along the strip's perimeter connecting the two.
func extrudeTube(s strip, dz float64, label meshmodel.Label, path int) *meshmodel.Mesh {
	m := meshmodel.NewMesh()

	topVerts := make([]geom.Point3, len(s.mesh.Vertices))
	copy(topVerts, s.mesh.Vertices)

	topIdx := make([]int, len(topVerts))
	bottomIdx := make([]int, len(topVerts))
	for i, p := range topVerts {
		topIdx[i] = m.AddVertex(p)
		bottomIdx[i] = m.AddVertex(geom.NewPoint3(p.X, p.Y, p.Z+dz))
	}

	for _, f := range s.mesh.Faces {
		m.AddFace(topIdx[f.V0], topIdx[f.V1], topIdx[f.V2], label, path, true, false)
	}
	for _, f := range s.mesh.Faces {
		// Bottom cap: reversed winding so its normal faces away from the
		// top, same topology, neutral label (only the top side is real
		// infrastructure surface).
		m.AddFace(bottomIdx[f.V0], bottomIdx[f.V2], bottomIdx[f.V1], meshmodel.LabelOther, path, true, false)
	}

	perimeter := append(append([]int{}, s.left...), reversed(s.right)...)
	n := len(perimeter)
	for i := 0; i < n; i++ {
		a := perimeter[i]
		b := perimeter[(i+1)%n]
		m.AddFace(topIdx[a], topIdx[b], bottomIdx[b], meshmodel.LabelOther, path, true, false)
		m.AddFace(topIdx[a], bottomIdx[b], bottomIdx[a], meshmodel.LabelOther, path, true, false)
	}

	return m
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
