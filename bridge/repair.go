package bridge

import "math"

// Repair clamps any endpoint half-width exceeding its border maximum and
// equalizes any segment whose total width has gone negative.
func Repair(b *PathBridge, ctx Context) {
	if b.Xl[0] > ctx.Dl0 {
		b.Xl[0] = ctx.Dl0
	}
	if b.Xl[b.N] > ctx.DlN {
		b.Xl[b.N] = ctx.DlN
	}
	if b.Xr[0] > ctx.Dr0 {
		b.Xr[0] = ctx.Dr0
	}
	if b.Xr[b.N] > ctx.DrN {
		b.Xr[b.N] = ctx.DrN
	}

	for i := range b.Xl {
		total := b.Xl[i] + b.Xr[i]
		if total < 0 {
			shift := total / 2
			b.Xl[i] -= shift
			b.Xr[i] -= shift
		}
	}
}

// Finalize re-evaluates every residual at the repaired solution, sets
// b.Cost and b.CrossingFaces, and reports whether the bridge survives
// the cost_threshold rejection.
func Finalize(b *PathBridge, ctx Context, opts Options) (accepted bool) {
	res, crossingFaces := residuals(b, ctx, b.Z, b.Xl, b.Xr, opts)
	b.Cost = sumSquares(res)
	b.CrossingFaces = crossingFaces
	accepted = b.Cost <= opts.CostThreshold && !math.IsNaN(b.Cost)
	if !accepted {
		opts.logger().Printf("bridge: rejecting solution: cost %.2f exceeds threshold %.2f", b.Cost, opts.CostThreshold)
	}
	return accepted
}
