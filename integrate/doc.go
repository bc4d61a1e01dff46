// Package integrate implements component C7: folds one
// solved bridge's ribbon/support/removal geometry into the master mesh
// via boolean union and difference, carrying face attributes across the
// operation and re-associating the external point cloud.
//
// This is deliberately not a general boolean mesh library; it assumes
// its boolean kernel is correct. The actual triangle-triangle clipping a
// production corefinement library performs is out of scope here and
// treated as a correctness assumption; union.go and difference.go stand
// in for that assumed-correct kernel with a direct append-only
// implementation, so that the part genuinely in scope — the
// attribute-propagating Visitor contract — is exercised end to end.
package integrate
