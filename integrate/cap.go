package integrate

import (
	"io"
	"log"
	"math"

	"github.com/golang/geo/s1"
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// boundaryEdges returns every directed edge (v0->v1, in face-winding
// order) that occurs exactly once across m.Faces — the open rim left
// behind by the support/removal tube walls.
func boundaryEdges(m *meshmodel.Mesh) map[meshmodel.EdgeKey][2]int {
	count := make(map[meshmodel.EdgeKey]int)
	directed := make(map[meshmodel.EdgeKey][2]int)
	visit := func(a, b int) {
		k := meshmodel.NewEdgeKey(a, b)
		count[k]++
		directed[k] = [2]int{a, b}
	}
	for _, f := range m.Faces {
		visit(f.V0, f.V1)
		visit(f.V1, f.V2)
		visit(f.V2, f.V0)
	}
	rim := make(map[meshmodel.EdgeKey][2]int)
	for k, n := range count {
		if n == 1 {
			rim[k] = directed[k]
		}
	}
	return rim
}

// boundaryCycle walks the directed boundary-edge adjacency starting from
// an arbitrary rim vertex and returns the ordered vertex handles of the
// cycle through it. If the rim holds several cycles, only that one is
// returned; it panics only when the walk reaches a vertex with no
// outgoing rim edge.
func boundaryCycle(rim map[meshmodel.EdgeKey][2]int) []int {
	next := make(map[int]int, len(rim))
	for _, dir := range rim {
		next[dir[0]] = dir[1]
	}
	var start int
	for v := range next {
		start = v
		break
	}
	cycle := []int{start}
	cur := next[start]
	for cur != start {
		cycle = append(cycle, cur)
		var ok bool
		cur, ok = next[cur]
		if !ok {
			panic("integrate: boundary rim is not a single closed cycle")
		}
	}
	return cycle
}

// angularOrder returns, in cycle order (unsorted), each cycle vertex's
// bearing about the centroid as an s1.Angle, purely as a diagnostic
// cross-check that the walked cycle is monotonic; a non-monotonic result
// indicates a self-intersecting rim the fan triangulation below cannot
// handle correctly.
func angularOrder(m *meshmodel.Mesh, cycle []int) []s1.Angle {
	var cx, cy float64
	for _, v := range cycle {
		p := m.Vertices[v]
		cx += p.X
		cy += p.Y
	}
	n := float64(len(cycle))
	cx /= n
	cy /= n

	angles := make([]s1.Angle, len(cycle))
	for i, v := range cycle {
		p := m.Vertices[v]
		angles[i] = s1.Angle(math.Atan2(p.Y-cy, p.X-cx))
	}
	return angles
}

func isMonotonic(angles []s1.Angle) bool {
	if len(angles) < 2 {
		return true
	}
	n := len(angles)
	up, down := 0, 0
	for i := range angles {
		next := angles[(i+1)%n]
		if next > angles[i] {
			up++
		} else if next < angles[i] {
			down++
		}
	}
	return up <= 1 || down <= 1
}

// tubeFloor picks a flat capping elevation safely outside a tube's own
// vertex range, for use when extrudeTube's perimeter ring fails to close
// (a self-intersecting strip from a sharp turn) and Cap has to patch the
// resulting gap.
func tubeFloor(m *meshmodel.Mesh, below bool) float64 {
	if len(m.Vertices) == 0 {
		return 0
	}
	z := m.Vertices[0].Z
	for _, v := range m.Vertices[1:] {
		if below && v.Z < z {
			z = v.Z
		}
		if !below && v.Z > z {
			z = v.Z
		}
	}
	if below {
		return z - 1
	}
	return z + 1
}

// Cap closes the open rim of a support or removal tube with a flat bottom
// cap at zFloor and a ring of side quads stitching the rim to that cap.
// Every added face is marked TrueFace=false, since a cap is a closing
// artifact rather than surface geometry the output carries forward.
func Cap(m *meshmodel.Mesh, label meshmodel.Label, pathID int, zFloor float64, logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rim := boundaryEdges(m)
	if len(rim) == 0 {
		return
	}
	cycle := boundaryCycle(rim)
	if !isMonotonic(angularOrder(m, cycle)) {
		// Fan triangulation below tolerates a non-convex but simple rim;
		// a non-monotonic angular order means the rim self-intersects and
		// the resulting cap may be degenerate.
		logger.Printf("integrate: cap for path %d: boundary rim is not angularly monotonic, possible self-intersection", pathID)
	}

	n := len(cycle)
	floor := make([]int, n)
	for i, v := range cycle {
		p := m.Vertices[v]
		floor[i] = m.AddVertex(geom.NewPoint3(p.X, p.Y, zFloor))
	}

	for i := 1; i < n-1; i++ {
		m.AddFace(floor[0], floor[i+1], floor[i], label, pathID, false, false)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.AddFace(cycle[i], cycle[j], floor[j], label, pathID, false, false)
		m.AddFace(cycle[i], floor[j], floor[i], label, pathID, false, false)
	}
}
