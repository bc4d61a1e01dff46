package integrate

import "github.com/terraloom/meshbridge/meshmodel"

// Union performs M <- M ∪ T_support. Every crossing face
// (already drained of its points by MigratePoints) is marked split so
// its edges lose their blocked flag, then the support tube's faces are
// appended as new, true faces.
func Union(m, support *meshmodel.Mesh, crossingFaces map[int]bool, visitor Visitor) []int {
	for f := range crossingFaces {
		visitor.FaceSplit(m, f)
	}
	return appendMesh(m, support, visitor, true)
}
