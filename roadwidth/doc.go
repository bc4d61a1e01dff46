// Package roadwidth implements component C4: given a link endpoint on a
// path's straight skeleton, estimate the local carriageway half-width
// there by weighting nearby inner-bisector skeleton edges.
//
// A bounded depth-first traversal accumulating the Euclidean distance
// from the start is realized here as a Dijkstra-style relaxation with a
// NeighborhoodRadius cutoff, restricted to inner-bisector
// halfedges: this is the same computation (best-known — i.e. smallest —
// accumulated distance per discovered halfedge) that a depth-first search
// with memoized "best so far" distances would produce, but a priority-queue
// relaxation gets it right in the presence of cycles (a skeleton of a
// polygon with holes is not always a tree) without extra bookkeeping.
// The cutoff follows the same bounded-search shape as a max-distance
// option on a shortest-path search, restricted here to skeleton.Graph's
// integer handles and to inner-bisector halfedges only.
package roadwidth
