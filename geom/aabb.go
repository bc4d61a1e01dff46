package geom

import (
	"math"
	"sort"
)

// Triangle is a single mesh triangle in the inexact kernel, carrying the
// index of the face it came from so query results can be mapped back to
// mesh attributes.
type Triangle struct {
	A, B, C Point3
	Face    int
}

func (t Triangle) boundsMin() Point3 {
	return NewPoint3(
		math.Min(t.A.X, math.Min(t.B.X, t.C.X)),
		math.Min(t.A.Y, math.Min(t.B.Y, t.C.Y)),
		math.Min(t.A.Z, math.Min(t.B.Z, t.C.Z)),
	)
}

func (t Triangle) boundsMax() Point3 {
	return NewPoint3(
		math.Max(t.A.X, math.Max(t.B.X, t.C.X)),
		math.Max(t.A.Y, math.Max(t.B.Y, t.C.Y)),
		math.Max(t.A.Z, math.Max(t.B.Z, t.C.Z)),
	)
}

// box is an axis-aligned bounding box.
type box struct {
	Min, Max Point3
}

func (b box) expand(o box) box {
	return box{
		Min: NewPoint3(math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)),
		Max: NewPoint3(math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)),
	}
}

func (b box) surfaceArea() float64 {
	d := b.Max.Sub(b.Min)
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

func boxOf(t Triangle) box { return box{Min: t.boundsMin(), Max: t.boundsMax()} }

// coversXY reports whether a vertical ray at (x, y) passes through b's
// footprint (ignoring z), within Epsilon — used to prune the AABB tree
// during vertical ray queries.
func (b box) coversXY(x, y float64) bool {
	return x >= b.Min.X-Epsilon && x <= b.Max.X+Epsilon && y >= b.Min.Y-Epsilon && y <= b.Max.Y+Epsilon
}

// aabbNode is one node of the arena-indexed AABB tree: an internal node
// has both children set (>=0); a leaf has triIndex>=0 and no children.
type aabbNode struct {
	bounds      box
	left, right int
	triIndex    int
}

// AABBTree is a static bounding-volume hierarchy over a mesh's triangles,
// supporting nearest-triangle and vertical ray queries. It is
// rebuilt explicitly after any structural mesh mutation and never shared
// across mutations.
type AABBTree struct {
	nodes  []aabbNode
	tris   []Triangle
	root   int
}

// BuildAABBTree constructs a tree over tris using a median-split top-down
// builder.
func BuildAABBTree(tris []Triangle) *AABBTree {
	t := &AABBTree{tris: tris}
	if len(tris) == 0 {
		t.root = -1
		return t
	}
	idx := make([]int, len(tris))
	for i := range idx {
		idx[i] = i
	}
	t.root = t.build(idx)
	return t
}

func (t *AABBTree) build(idx []int) int {
	bounds := boxOf(t.tris[idx[0]])
	for _, i := range idx[1:] {
		bounds = bounds.expand(boxOf(t.tris[i]))
	}
	if len(idx) == 1 {
		node := aabbNode{bounds: bounds, left: -1, right: -1, triIndex: idx[0]}
		t.nodes = append(t.nodes, node)
		return len(t.nodes) - 1
	}

	// Split along the bounding box's longest axis at the median centroid.
	extent := bounds.Max.Sub(bounds.Min)
	axis := 0
	if extent.Y > extent.X && extent.Y >= extent.Z {
		axis = 1
	} else if extent.Z > extent.X && extent.Z >= extent.Y {
		axis = 2
	}
	centroid := func(i int) float64 {
		tr := t.tris[i]
		switch axis {
		case 1:
			return (tr.A.Y + tr.B.Y + tr.C.Y) / 3
		case 2:
			return (tr.A.Z + tr.B.Z + tr.C.Z) / 3
		default:
			return (tr.A.X + tr.B.X + tr.C.X) / 3
		}
	}
	sortByKey(idx, centroid)
	mid := len(idx) / 2

	nodeIdx := len(t.nodes)
	t.nodes = append(t.nodes, aabbNode{bounds: bounds})
	left := t.build(idx[:mid])
	right := t.build(idx[mid:])
	t.nodes[nodeIdx].left = left
	t.nodes[nodeIdx].right = right
	t.nodes[nodeIdx].triIndex = -1
	return nodeIdx
}

// sortByKey is an insertion sort (trees are small relative to the total
// mesh chunk sizes this module handles per-bridge) avoiding a sort.Slice
// closure-per-call allocation in the hot build path.
func sortByKey(idx []int, key func(int) float64) {
	for i := 1; i < len(idx); i++ {
		v := idx[i]
		kv := key(v)
		j := i - 1
		for j >= 0 && key(idx[j]) > kv {
			idx[j+1] = idx[j]
			j--
		}
		idx[j+1] = v
	}
}

// QueryVerticalRay collects every triangle whose footprint (xy bounding
// box, refined by an exact point-in-triangle test) contains (x,y),
// returning them sorted by ascending z of the ray/triangle intersection.
// Used by Locator to find the "top" and "bottom" hits in the surface
// attachment residual.
func (t *AABBTree) QueryVerticalRay(x, y float64) []RayHit {
	if t.root < 0 {
		return nil
	}
	var hits []RayHit
	t.queryVerticalRay(t.root, x, y, &hits)
	sort.Slice(hits, func(i, j int) bool { return hits[i].Z < hits[j].Z })
	return hits
}

func (t *AABBTree) queryVerticalRay(node int, x, y float64, hits *[]RayHit) {
	n := t.nodes[node]
	if !n.bounds.coversXY(x, y) {
		return
	}
	if n.triIndex >= 0 {
		tr := t.tris[n.triIndex]
		u, v, w, ok := Barycentric(Point2{X: x, Y: y}, tr.A.Project2(), tr.B.Project2(), tr.C.Project2())
		if !ok || u < -Epsilon || v < -Epsilon || w < -Epsilon {
			return
		}
		z := u*tr.A.Z + v*tr.B.Z + w*tr.C.Z
		*hits = append(*hits, RayHit{Face: tr.Face, Z: z, U: u, V: v, W: w})
		return
	}
	t.queryVerticalRay(n.left, x, y, hits)
	t.queryVerticalRay(n.right, x, y, hits)
}

// RayHit is one vertical-ray/triangle intersection.
type RayHit struct {
	Face    int
	Z       float64
	U, V, W float64 // barycentric coordinates within the hit triangle
}

// NearestPoint returns the closest point on the mesh to p and the face it
// lies on, by projecting p onto every triangle in turn (no bounding-box
// pruning). This backs the locator's final fallback tier.
func (t *AABBTree) NearestPoint(p Point3) (Point3, int, bool) {
	if t.root < 0 {
		return Point3{}, -1, false
	}
	best := math.Inf(1)
	var bestPt Point3
	bestFace := -1
	for _, tr := range t.tris {
		q := closestPointOnTriangle(p, tr.A, tr.B, tr.C)
		d := q.Sub(p).Norm2()
		if d < best {
			best = d
			bestPt = q
			bestFace = tr.Face
		}
	}
	return bestPt, bestFace, bestFace >= 0
}

// closestPointOnTriangle projects p onto triangle (a,b,c), clamping to the
// triangle's interior when the unclamped projection falls outside it.
func closestPointOnTriangle(p, a, b, c Point3) Point3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Mul(v))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}
