package ribbon

import (
	"github.com/terraloom/meshbridge/bridge"
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// Geometry is the full set of meshes package integrate needs to fold a
// solved bridge into the master mesh.
type Geometry struct {
	Surface *meshmodel.Mesh
	Support *meshmodel.Mesh
	Removal *meshmodel.Mesh

	// Left/Right hold the rail vertex indices into Surface, in station
	// order, so package integrate can walk the ribbon's perimeter.
	Left, Right []int
}

// strip is the two-rail triangulated quad strip of a PathBridge,
// carrying no tube geometry.
type strip struct {
	mesh        *meshmodel.Mesh
	left, right []int
}

func buildStrip(b *bridge.PathBridge, path int, label meshmodel.Label) strip {
	m := meshmodel.NewMesh()
	left := make([]int, b.N+1)
	right := make([]int, b.N+1)
	for i := 0; i <= b.N; i++ {
		l := b.Rail(i, 1)
		r := b.Rail(i, -1)
		left[i] = m.AddVertex(geom.NewPoint3(l.X, l.Y, b.Z[i]))
		right[i] = m.AddVertex(geom.NewPoint3(r.X, r.Y, b.Z[i]))
	}
	for i := 0; i < b.N; i++ {
		m.AddFace(left[i], right[i], left[i+1], label, path, true, false)
		m.AddFace(right[i], right[i+1], left[i+1], label, path, true, false)
	}
	return strip{mesh: m, left: left, right: right}
}

// Build constructs the ribbon surface, support tube, and removal tube
// for a solved bridge.
func Build(b *bridge.PathBridge, path int, opts Options) *Geometry {
	surfaceStrip := buildStrip(b, path, b.Label)

	return &Geometry{
		Surface: surfaceStrip.mesh,
		Support: extrudeTube(surfaceStrip, -opts.TunnelHeight/6, b.Label, path),
		Removal: extrudeTube(surfaceStrip, opts.TunnelHeight, b.Label, path),
		Left:    surfaceStrip.left,
		Right:   surfaceStrip.right,
	}
}
