package bridge

import (
	"math"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// Context bundles everything the residual assembly needs beyond the
// optimization variables themselves: the endpoint conditions, expected
// widths, border maxima, and the mesh/locator pair the surface-
// attachment residual queries.
type Context struct {
	Mesh    *meshmodel.Mesh
	Locator *geom.Locator

	ZAlpha, ZBeta float64
	WAlpha, WBeta float64 // total (left+right) expected width at each endpoint
	Dl0, DlN      float64
	Dr0, DrN      float64
}

// residuals assembles the full residual vector for the given station
// arrays, across seven blocks. crossingFaces accumulates
// every mesh face touched by the surface-attachment integration.
func residuals(b *PathBridge, ctx Context, z, xl, xr []float64, opts Options) (res []float64, crossingFaces map[int]bool) {
	n := b.N
	crossingFaces = make(map[int]bool)

	// 1. Surface regularity.
	for i := 0; i < n; i++ {
		res = append(res, opts.Alpha*(z[i]-z[i+1]))
	}

	// 2. Contour regularity.
	for j := 0; j < n; j++ {
		res = append(res, opts.Gamma*(xl[j]-xl[j+1]))
		res = append(res, opts.Gamma*(xr[j]-xr[j+1]))
	}

	// 3. Surface width.
	for j := 0; j <= n; j++ {
		w := ExpectedWidth(ctx.WAlpha, ctx.WBeta, j, n)
		res = append(res, opts.Delta*(xl[j]+xr[j]-w))
	}

	// 4. Centering.
	res = append(res, opts.Epsilon*(xl[0]-xr[0]))
	res = append(res, opts.Epsilon*(xl[n]-xr[n]))

	// 5. Border elevation.
	res = append(res, opts.Zeta*(z[0]-ctx.ZAlpha))
	res = append(res, opts.Zeta*(z[n]-ctx.ZBeta))

	// 6. Border constraint (one-sided).
	res = append(res, opts.Eta*math.Max(0, xl[0]-ctx.Dl0))
	res = append(res, opts.Eta*math.Max(0, xl[n]-ctx.DlN))
	res = append(res, opts.Eta*math.Max(0, xr[0]-ctx.Dr0))
	res = append(res, opts.Eta*math.Max(0, xr[n]-ctx.DrN))

	// 7. Surface attachment / negative-width penalty.
	for i := 0; i <= n; i++ {
		if xl[i]+xr[i] < 0 {
			res = append(res, (-xl[i]-xr[i])*opts.Alpha*10)
			continue
		}
		area := surfaceAttachmentIntegral(b, ctx, i, z[i], xl[i], xr[i], opts, crossingFaces)
		res = append(res, opts.Beta*area)
	}

	return res, crossingFaces
}
