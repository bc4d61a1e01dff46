package bridge

import (
	"math"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// Endpoint bundles the per-endpoint inputs the builder needs: a
// SkeletonPoint's ground location, the mesh elevation it locates to, and
// its estimated half-width.
type Endpoint struct {
	Point     geom.Point2
	Elevation float64
	HalfWidth float64
}

// New constructs the initial PathBridge for a link between alpha and
// beta: linear interpolation for z/xl/xr, a symmetry-
// breaking perturbation at the midpoint, and the border half-widths
// shot from each endpoint's polygon.
func New(label meshmodel.Label, alpha, beta Endpoint, alphaPoly, betaPoly geom.PolygonWithHoles) *PathBridge {
	d := beta.Point.Sub(alpha.Point)
	length := d.Length()
	n := int(math.Ceil(length))
	if n < 1 {
		n = 1
	}
	dir := d.Normalize()
	perp := dir.Perp()

	dl0 := BorderDistance(alpha.Point, perp, alphaPoly, length)
	dr0 := BorderDistance(alpha.Point, perp.Scale(-1), alphaPoly, length)
	dlN := BorderDistance(beta.Point, perp, betaPoly, length)
	drN := BorderDistance(beta.Point, perp.Scale(-1), betaPoly, length)

	b := &PathBridge{
		Label:  label,
		N:      n,
		Z:      make([]float64, n+1),
		Xl:     make([]float64, n+1),
		Xr:     make([]float64, n+1),
		Origin: alpha.Point,
		Dir:    dir,
		Perp:   perp,
		Length: length,
	}

	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		b.Z[i] = alpha.Elevation + (beta.Elevation-alpha.Elevation)*t
		b.Xl[i] = dl0 + (dlN-dl0)*t
		b.Xr[i] = dr0 + (drN-dr0)*t
	}

	mid := (n + 1) / 2
	b.Z[mid] += 1 // break the symmetric stationary point

	return b
}

// ExpectedWidth returns the interpolated expected total width w(j) used
// by the surface-width residual.
func ExpectedWidth(wAlpha, wBeta float64, j, n int) float64 {
	t := float64(j) / float64(n)
	return wAlpha + (wBeta-wAlpha)*t
}
