package bridge

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// Optimize runs the full C6 pipeline for one link: build the initial
// bridge, solve the least-squares problem, repair the solution, and
// evaluate its final cost. The returned bridge should be discarded by
// the caller when accepted is false.
func Optimize(label meshmodel.Label, alpha, beta Endpoint, alphaPoly, betaPoly geom.PolygonWithHoles, mesh *meshmodel.Mesh, locator *geom.Locator, opts Options) (b *PathBridge, accepted bool) {
	b = New(label, alpha, beta, alphaPoly, betaPoly)
	ctx := Context{
		Mesh:    mesh,
		Locator: locator,
		ZAlpha:  alpha.Elevation, ZBeta: beta.Elevation,
		WAlpha: alpha.HalfWidth, WBeta: beta.HalfWidth,
		Dl0: b.Xl[0], DlN: b.Xl[b.N], Dr0: b.Xr[0], DrN: b.Xr[b.N],
	}
	Solve(b, ctx, opts)
	Repair(b, ctx)
	accepted = Finalize(b, ctx, opts)
	return b, accepted
}
