// Package skeleton models the straight skeleton of a polygon-with-holes:
// a plane graph whose vertices carry a non-negative "time" (the inradius
// at that point) and whose halfedges are tagged "inner bisector" when
// both endpoints are interior skeleton vertices.
//
// Graph is an arena-indexed adjacency structure — parallel slices indexed
// by integer vertex/halfedge handles, rather than a map[string]*Vertex
// adjacency list with pointer-linked nodes.
//
// Computing the skeleton itself is out of scope: this
// package only represents one that has already been built by an external
// collaborator and offers the small set of queries C4 and C5 need.
package skeleton
