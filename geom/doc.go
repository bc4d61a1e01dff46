// Package geom provides the 2-D/3-D geometric primitives shared by the
// rest of meshbridge: point/vector types built on github.com/golang/geo/r3,
// exact and inexact orientation predicates, an axis-aligned bounding-box
// (AABB) tree over triangles, and a ray/segment locator that resolves a
// 2-D ground point to a (face, barycentric) hit on a 3-D mesh.
//
// Two coordinate kernels coexist, as in the CGAL-based pipeline this
// module replaces: an inexact (float64) kernel used for all queries, and
// an exact (*big.Rat) kernel used only through the corefinement boundary
// in package integrate. geom defines both point types; it never mixes
// them in a single computation.
//
// Degeneracies (zero-area triangles, a ray that misses the mesh, a
// perpendicular foot that falls outside its segment) are not errors:
// each predicate documents its own fallback instead of returning an
// error for a condition the geometry itself produces routinely.
package geom
