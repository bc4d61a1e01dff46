package integrate

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// Reassociate builds a fresh AABB tree over the
// now-updated mesh and relocate every moved point to its new containing
// face.
func Reassociate(m *meshmodel.Mesh, points []Point, moved map[int]bool) *geom.Locator {
	locator := geom.NewLocator(geom.BuildAABBTree(m.AABBTriangles()))
	for pi := range moved {
		p := &points[pi]
		hit, ok := locator.Locate(p.X, p.Y, p.Z)
		if !ok {
			p.Face = -1
			continue
		}
		p.Face = hit.Face
		p.Z = hit.Point.Z
		m.Points[hit.Face] = append(m.Points[hit.Face], pi)
	}
	return locator
}
