// Package bridge implements component C6: given a
// surviving PathLink, builds a PathBridge — a centerline elevation
// profile plus asymmetric left/right half-widths — by solving a small
// nonlinear least-squares problem whose residuals trade off surface
// smoothness, the path's expected width, and agreement with the mesh
// surface the bridge must clear above and rest below.
//
// The reference solver hand-rolls its own Gauss-Newton loop over a
// sparse QR factorization; this package keeps that same
// Gauss-Newton/normal-equations shape but factors the normal equations
// with gonum.org/v1/gonum/mat's Cholesky decomposition, since the
// problem is small and dense (one row/column per ribbon station).
package bridge
