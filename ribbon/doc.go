// Package ribbon builds the 3-D geometry of a solved bridge: the ribbon surface itself (two vertex rails of N+1 points each,
// triangulated as a strip), the support tube (a thin closed volume below
// the ribbon used for boolean union into the master mesh), and the
// removal tube (a closed volume above and including the ribbon, used for
// boolean difference). Both tubes inherit the bridge's label on their
// top-side faces only.
//
// The strip is laid out row by row the way a triangulated grid surface
// normally is, generalized here to a labeled meshmodel.Mesh instead of
// an abstract graph.
package ribbon
