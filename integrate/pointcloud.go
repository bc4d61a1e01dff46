package integrate

import "github.com/terraloom/meshbridge/meshmodel"

// Point is one entry of the external labelled point cloud: a 3-D
// location, its label, and the mesh face
// it is currently associated with (-1 if unassociated).
type Point struct {
	X, Y, Z float64
	Label   meshmodel.Label
	Face    int
}
