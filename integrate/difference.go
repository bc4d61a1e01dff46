package integrate

import "github.com/terraloom/meshbridge/meshmodel"

// Difference performs M <- M \ T_remove. Faces copied in
// from the removal tube receive true_face = true, new_face = true, and
// the tube's own label (already set on the tube mesh's faces by package
// ribbon — see ribbon.extrudeTube's top/bottom labeling).
func Difference(m, removal *meshmodel.Mesh, crossingFaces map[int]bool, visitor Visitor) []int {
	for f := range crossingFaces {
		visitor.FaceSplit(m, f)
	}
	newFaces := appendMesh(m, removal, visitor, true)
	for _, nf := range newFaces {
		m.TrueFace[nf] = true
		m.NewFace[nf] = true
	}
	return newFaces
}
