package integrate

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// hitsTube reports whether a vertical ray through (x,y,z) intersects the
// removal tube in either direction.
func hitsTube(removalLocator *geom.Locator, x, y, z float64) bool {
	_, _, hasBelow, hasAbove := removalLocator.LocateBelowAbove(x, y, z)
	return hasBelow || hasAbove
}

// RelabelOtherUnknown handles the case where a migrated point labelled
// OTHER or UNKNOWN adopts the bridge's label if it falls inside the
// removal tube's footprint.
func RelabelOtherUnknown(points []Point, moved map[int]bool, removalLocator *geom.Locator, bridgeLabel meshmodel.Label) {
	for pi := range moved {
		p := &points[pi]
		if !p.Label.IsNeutral() {
			continue
		}
		if hitsTube(removalLocator, p.X, p.Y, p.Z) {
			p.Label = bridgeLabel
		}
	}
}

// LevelCrossingPromotion handles the case where a migrated ROAD/RAIL
// point whose label disagrees with the bridge's own is promoted to
// LEVEL_CROSSING when it falls inside the removal tube's footprint.
func LevelCrossingPromotion(points []Point, moved map[int]bool, removalLocator *geom.Locator, bridgeLabel meshmodel.Label) {
	for pi := range moved {
		p := &points[pi]
		if p.Label != meshmodel.LabelRoad && p.Label != meshmodel.LabelRail {
			continue
		}
		if p.Label == bridgeLabel {
			continue
		}
		if hitsTube(removalLocator, p.X, p.Y, p.Z) {
			p.Label = meshmodel.LabelLevelCrossing
		}
	}
}
