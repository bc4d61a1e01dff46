package integrate

import "github.com/terraloom/meshbridge/meshmodel"

// appendMesh copies every vertex and face of other into m, dispatching a
// FaceCopy and three EdgeCopy visitor callbacks per appended face. It
// returns the new handle of each appended face, indexed the same as
// other.Faces.
func appendMesh(m, other *meshmodel.Mesh, visitor Visitor, fromTube bool) []int {
	weld := meshmodel.NewWeldCache(m)
	remap := make([]int, len(other.Vertices))
	for i, v := range other.Vertices {
		remap[i] = weld.Weld(v)
	}

	newFaces := make([]int, len(other.Faces))
	for i, f := range other.Faces {
		nf := m.AddFace(
			remap[f.V0], remap[f.V1], remap[f.V2],
			other.Label[i], other.Path[i], other.TrueFace[i], other.NewFace[i],
		)
		newFaces[i] = nf
		visitor.FaceCopy(m, i, nf, fromTube)

		ef := m.Faces[nf]
		visitor.EdgeCopy(m, meshmodel.NewEdgeKey(ef.V0, ef.V1))
		visitor.EdgeCopy(m, meshmodel.NewEdgeKey(ef.V1, ef.V2))
		visitor.EdgeCopy(m, meshmodel.NewEdgeKey(ef.V2, ef.V0))
	}
	return newFaces
}
