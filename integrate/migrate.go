package integrate

import "github.com/terraloom/meshbridge/meshmodel"

// MigratePoints handles every point attached to a
// crossing face is recorded into the returned set and the face's point
// list is cleared, ready for the face to be superseded by the union.
func MigratePoints(m *meshmodel.Mesh, crossingFaces map[int]bool) map[int]bool {
	moved := make(map[int]bool)
	for f := range crossingFaces {
		for _, pi := range m.Points[f] {
			moved[pi] = true
		}
		m.Points[f] = nil
	}
	return moved
}
