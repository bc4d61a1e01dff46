package bridge

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// integrandAt evaluates the surface-attachment data cost at cross-section
// point p2, elevation z. hasBelow is checked
// first: no bottom hit means the point is outside the terrain entirely
// and contributes 0, overriding the above/below-surface branches below.
func integrandAt(b *PathBridge, ctx Context, p2 geom.Point2, z float64, opts Options, crossingFaces map[int]bool) float64 {
	below, above, hasBelow, hasAbove := ctx.Locator.LocateBelowAbove(p2.X, p2.Y, z)
	if !hasBelow {
		return 0
	}
	crossingFaces[below.Face] = true
	if hasAbove {
		crossingFaces[above.Face] = true
	}

	kappaBottom := ctx.Mesh.NormalAngleCoef[below.Face]
	mismatchBottom := labelMismatch(ctx.Mesh, below.Face, b.Label)

	// "above the surface": no overhead hit, or the overhead hit is a
	// normal upward-facing surface rather than the underside of an
	// overhang.
	aboveSurface := !hasAbove || topFacesUp(ctx.Mesh, above.Face)

	H := opts.TunnelHeight
	if aboveSurface {
		cost := (z - below.Point.Z) * kappaBottom
		if mismatchBottom {
			cost += opts.Theta * kappaBottom
		}
		if hasAbove {
			gap := above.Point.Z - z
			if gap < H {
				kappaTop := ctx.Mesh.NormalAngleCoef[above.Face]
				cost += ((H - gap) / 2) * kappaTop
			}
		}
		return cost
	}

	if !hasAbove {
		return 0
	}
	kappaTop := ctx.Mesh.NormalAngleCoef[above.Face]
	mismatchTop := labelMismatch(ctx.Mesh, above.Face, b.Label)
	depth := above.Point.Z - z
	switch {
	case depth <= H/2:
		cost := depth * kappaTop
		if mismatchTop {
			cost += opts.Theta * kappaTop
		}
		return cost
	case depth <= H:
		return (z + H - above.Point.Z) * kappaTop
	default:
		return 0
	}
}

// surfaceAttachmentIntegral numerically integrates integrandAt across the
// cross-section from -xl to +xr at station i, elevation z, via composite
// trapezoidal quadrature with a step close to opts.IntegrationStep
//. The step is adjusted to divide the strip width
// evenly rather than carrying a separate weighted remainder, a reasonable
// simplification given the station count is always small.
func surfaceAttachmentIntegral(b *PathBridge, ctx Context, i int, z, xl, xr float64, opts Options, crossingFaces map[int]bool) float64 {
	width := xl + xr
	if width <= 0 {
		return 0
	}
	steps := int(width/opts.IntegrationStep + 0.5)
	if steps < 1 {
		steps = 1
	}
	h := width / float64(steps)
	station := b.Station(i)

	var total float64
	for k := 0; k <= steps; k++ {
		j := -xl + float64(k)*h
		p2 := station.Add(b.Perp.Scale(j))
		v := integrandAt(b, ctx, p2, z, opts, crossingFaces)
		weight := h
		if k == 0 || k == steps {
			weight /= 2
		}
		total += v * weight
	}
	return total
}

// labelMismatch reports whether face's label is a non-neutral class
// distinct from the bridge's own label, exempting ROAD/RAIL disagreement
// since a level crossing is an expected overlap between those two classes.
func labelMismatch(mesh *meshmodel.Mesh, face int, bridgeLabel meshmodel.Label) bool {
	label := mesh.Label[face]
	if label.IsNeutral() || label == bridgeLabel {
		return false
	}
	isRoadOrRail := func(l meshmodel.Label) bool { return l == meshmodel.LabelRoad || l == meshmodel.LabelRail }
	if isRoadOrRail(label) && isRoadOrRail(bridgeLabel) {
		return false
	}
	return true
}

// topFacesUp reports whether face's normal points generally upward (a
// real ground surface) rather than downward (the underside of an
// overhang such as a bridge deck or overpass).
func topFacesUp(mesh *meshmodel.Mesh, face int) bool {
	a, b, c := mesh.Triangle(face)
	_, _, nz := geom.TriangleNormal(a, b, c)
	return nz > 0
}
