// Package linker implements component C5: given the
// straight skeletons of every path of a given label class, find
// candidate PathLinks across disconnected fragments, prune them to
// locally-minimal pairs (the "dominance filter"), and enforce the
// polygon-exit constraint that separates a genuine gap crossing from a
// spurious shortcut.
//
// Distances are computed over the three SkeletonPoint kinds
// (vertex-vertex, vertex-halfedge, halfedge-vertex); halfedge-point
// geometry is the point's stored 2-D location together with the owning
// halfedge's supporting line, following skeleton.Point.
//
// Distances are assembled the way a dense adjacency/distance table is
// normally built, generalized to the three heterogeneous endpoint kinds
// this domain needs instead of one vertex-vertex table.
package linker
