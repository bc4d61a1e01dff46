// Package meshmodel defines Mesh, the arena-indexed triangle surface mesh
// used throughout meshbridge. Vertices, faces,
// and edges are identified by integer handles into parallel slices rather
// than pointer-linked half-edge nodes — this sidesteps the circularity of
// a pointer-based half-edge mesh without reference counting or weak
// references, and every attribute map is simply another parallel slice
// indexed by the same handle.
//
// Two coordinate kernels are kept side by side: Mesh.Vertices (float64,
// fast, used by every query) and Mesh.ExactVertices (*big.Rat, used only
// by package integrate's corefinement). They are synchronized at the
// start and end of each integration, never in between.
package meshmodel
