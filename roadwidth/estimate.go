package roadwidth

import (
	"container/heap"
	"math"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/skeleton"
)

// Options configures the width estimator.
type Options struct {
	// NeighborhoodRadius bounds how far the relaxation descends along
	// inner-bisector halfedges before stopping (default 50 length units).
	NeighborhoodRadius float64
}

// DefaultOptions returns the default parameter values.
func DefaultOptions() Options {
	return Options{NeighborhoodRadius: 50}
}

// pqItem is one entry of the bounded-Dijkstra priority queue.
type pqItem struct {
	vertex int
	dist   float64
}

type pq []pqItem

func (q pq) Len() int            { return len(q) }
func (q pq) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// neighborhood runs the bounded relaxation from a starting vertex with a
// given initial distance, and returns, for every inner-bisector halfedge
// reached, the smallest accumulated distance to it (keyed by the
// canonical halfedge handle so both directions collapse to one entry).
func neighborhood(g *skeleton.Graph, start int, startDist, radius float64) map[int]float64 {
	best := map[int]float64{start: startDist}
	q := &pq{{vertex: start, dist: startDist}}
	heap.Init(q)
	edgeDist := make(map[int]float64)

	for q.Len() > 0 {
		cur := heap.Pop(q).(pqItem)
		if d, ok := best[cur.vertex]; ok && cur.dist > d+geom.Epsilon {
			continue // stale entry
		}
		for _, h := range g.HalfedgesFrom(cur.vertex) {
			he := g.Halfedges[h]
			if !he.InnerBisector {
				continue
			}
			nd := cur.dist + g.Length(h)
			if nd > radius {
				continue // edge leaves the neighborhood before reaching its far end
			}
			canon := g.CanonicalHalfedge(h)
			if d, ok := edgeDist[canon]; !ok || cur.dist < d {
				edgeDist[canon] = cur.dist
			}
			if d, ok := best[he.To]; !ok || nd < d {
				best[he.To] = nd
				heap.Push(q, pqItem{vertex: he.To, dist: nd})
			}
		}
	}
	return edgeDist
}

// startFrontier returns the (vertex, initial distance) pairs the
// relaxation should seed from for SkeletonPoint p.
func startFrontier(g *skeleton.Graph, p skeleton.Point) []pqItem {
	if p.IsVertex() {
		return []pqItem{{vertex: p.Vertex, dist: 0}}
	}
	he := g.Halfedges[p.Halfedge]
	dSrc := p.At.Sub(g.Vertices[he.From].Point).Length()
	dDst := p.At.Sub(g.Vertices[he.To].Point).Length()
	return []pqItem{{vertex: he.From, dist: dSrc}, {vertex: he.To, dist: dDst}}
}

// Estimate computes the local carriageway half-width at SkeletonPoint p,
// given the proposed link direction linkDir. Falls back to
// 2τ(v) (vertex point) or τ(source)+τ(target) (halfedge point) when the
// bounded neighborhood contains no inner-bisector edges.
func Estimate(g *skeleton.Graph, p skeleton.Point, linkDir geom.Vector2, opts Options) float64 {
	frontier := startFrontier(g, p)
	edgeDist := make(map[int]float64)
	for _, f := range frontier {
		for h, d := range neighborhood(g, f.vertex, f.dist, opts.NeighborhoodRadius) {
			if cur, ok := edgeDist[h]; !ok || d < cur {
				edgeDist[h] = d
			}
		}
	}

	if len(edgeDist) == 0 {
		if p.IsVertex() {
			return 2 * skeleton.Time(g, p)
		}
		src, dst := skeleton.EndpointTimes(g, p)
		return src + dst
	}

	dir := linkDir.Normalize()
	var weightedSum, weightTotal float64
	for h, d := range edgeDist {
		he := g.Halfedges[h]
		a, b := g.Vertices[he.From], g.Vertices[he.To]
		w := a.Time + b.Time
		edgeVec := b.Point.Sub(a.Point).Normalize()
		cosTheta := math.Abs(edgeVec.Dot(dir))
		length := g.Length(h)
		c := (cosTheta/2 + 0.5) * length * opts.NeighborhoodRadius / (d + 1)
		weightedSum += c * w
		weightTotal += c
	}
	if weightTotal < geom.Epsilon {
		if p.IsVertex() {
			return 2 * skeleton.Time(g, p)
		}
		src, dst := skeleton.EndpointTimes(g, p)
		return src + dst
	}
	return weightedSum / weightTotal
}
