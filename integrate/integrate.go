package integrate

import (
	"io"
	"log"
	"math/rand"

	"github.com/terraloom/meshbridge/bridge"
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/linker"
	"github.com/terraloom/meshbridge/meshmodel"
	"github.com/terraloom/meshbridge/ribbon"
)

// Crossing names another path whose footprint the bridge passes over and
// that therefore needs path-corefinement before the
// difference operation runs.
type Crossing struct {
	Polygon        geom.PolygonWithHoles
	Label          meshmodel.Label
	PathID         int
	StartElevation float64
}

// Options bundles the tunables Integrate needs beyond what bridge/ribbon
// already carry.
type Options struct {
	SamplingDensity float64

	// Logger records geometric degeneracies encountered while folding a
	// bridge into the mesh. Defaults to a discard logger when left zero.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

// Result is what Integrate reports back for one bridge: the solved
// PathBridge and whether its cost passed the acceptance threshold.
type Result struct {
	Bridge   *bridge.PathBridge
	Accepted bool
}

// Integrate runs the full per-link pipeline end to end for a single
// accepted link: build and solve the bridge, fold its support/removal
// tubes into the master mesh in a fixed order (migrate, union, relabel,
// promote, corefine, difference, reassociate, sample), and return the
// updated point cloud and locator for the next link in sequence.
//
// m is mutated in place. points is replaced with the post-integration
// point cloud. crossings lists the other paths this link's removal tube
// overlaps, if any were already detected by the caller during linking.
func Integrate(
	m *meshmodel.Mesh,
	points []Point,
	link linker.PathLink,
	label meshmodel.Label,
	alpha, beta bridge.Endpoint,
	alphaPoly, betaPoly geom.PolygonWithHoles,
	locator *geom.Locator,
	bopts bridge.Options,
	ropts ribbon.Options,
	opts Options,
	crossings []Crossing,
	rng *rand.Rand,
) ([]Point, *geom.Locator, Result) {
	b, accepted := bridge.Optimize(label, alpha, beta, alphaPoly, betaPoly, m, locator, bopts)
	if !accepted {
		return points, locator, Result{Bridge: b, Accepted: false}
	}

	geo := ribbon.Build(b, link.PathA, ropts)
	visitor := &AttributeVisitor{}

	// extrudeTube's perimeter ring normally closes the support/removal
	// solids on its own; Cap is a no-op unless a self-intersecting strip
	// left an open rim, in which case it patches the gap and logs it.
	Cap(geo.Support, label, link.PathA, tubeFloor(geo.Support, true), opts.logger())
	Cap(geo.Removal, label, link.PathA, tubeFloor(geo.Removal, false), opts.logger())

	m.EnsureExact()

	// Step 1: migrate points off the crossing faces before the union
	// supersedes them.
	moved := MigratePoints(m, b.CrossingFaces)

	// Step 2: fold in the support tube under the gap.
	Union(m, geo.Support, b.CrossingFaces, visitor)

	removalLocator := geom.NewLocator(geom.BuildAABBTree(geo.Removal.AABBTriangles()))

	// Step 3/4: relabel neutral points and promote level crossings inside
	// the removal tube's footprint.
	RelabelOtherUnknown(points, moved, removalLocator, label)
	LevelCrossingPromotion(points, moved, removalLocator, label)

	// Step 5: corefine the removal tube with any crossed path so the
	// difference below also removes that path's overlapping footprint.
	for _, c := range crossings {
		if c.Label != meshmodel.LabelRoad && c.Label != meshmodel.LabelRail {
			continue
		}
		PathCorefine(geo.Removal, c.Polygon, c.Label, c.PathID, c.StartElevation, visitor)
	}

	// locator still indexes the mesh as it stood before this function
	// started mutating it; old face indices keep their original labels
	// across the append-only Union/Difference below, so it doubles as
	// step 8's pre-integration snapshot for the level-crossing check.
	preLocator := locator

	// Step 6: carve out the removal tube.
	Difference(m, geo.Removal, b.CrossingFaces, visitor)

	// Step 7: reassociate every moved point against a fresh AABB tree.
	newLocator := Reassociate(m, points, moved)

	// Step 8: sample any new, still-empty face.
	SampleHoles(m, &points, opts.SamplingDensity, m, preLocator, rng)

	if err := m.SyncInexactFromExact(); err != nil {
		opts.logger().Printf("integrate: %v", err)
	}

	return points, newLocator, Result{Bridge: b, Accepted: true}
}
