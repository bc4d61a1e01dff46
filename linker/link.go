package linker

import (
	"io"
	"log"
	"math"

	"github.com/terraloom/meshbridge/meshmodel"
	"github.com/terraloom/meshbridge/roadwidth"
	"github.com/terraloom/meshbridge/skeleton"
)

// Options configures the linker.
type Options struct {
	// MinimalPathWidth drops any link with either endpoint half-width
	// estimate below this value.
	MinimalPathWidth float64
	RoadWidth        roadwidth.Options

	// Logger records discarded candidate links. Defaults to a discard
	// logger when left zero.
	Logger *log.Logger
}

// DefaultOptions returns the default parameter values.
func DefaultOptions() Options {
	return Options{
		MinimalPathWidth: 2,
		RoadWidth:        roadwidth.DefaultOptions(),
		Logger:           log.New(io.Discard, "", 0),
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

// selectedLabels is the label set the linker runs over, grounded on the
// original's `for (int selected_label : {3, 8, 9})` outer loop over
// ROAD, RAIL, WATER.
var selectedLabels = []meshmodel.Label{meshmodel.LabelRoad, meshmodel.LabelRail, meshmodel.LabelWater}

// Link runs component C5 over every path in paths, grouped by label, and
// returns the deduplicated, width-filtered set of surviving PathLinks.
func Link(paths []Path, opts Options) []PathLink {
	var out []PathLink
	for _, label := range selectedLabels {
		group := groupByLabel(paths, label)
		out = append(out, linkGroup(group, opts)...)
	}
	return out
}

func groupByLabel(paths []Path, label meshmodel.Label) []Path {
	var out []Path
	for _, p := range paths {
		if p.Label == label {
			out = append(out, p)
		}
	}
	return out
}

// linkGroup links every path within one label class: each path against
// itself and every
// unordered pair of distinct paths.
func linkGroup(group []Path, opts Options) []PathLink {
	var out []PathLink
	for i := range group {
		if group[i].Skeleton == nil {
			opts.logger().Printf("linker: skipping path %d: nil skeleton", group[i].ID)
			continue
		}
		cands := enumerateSamePath(group[i])
		out = append(out, filterAndEstimate(cands, group[i], group[i], true, opts)...)
		for j := i + 1; j < len(group); j++ {
			if group[j].Skeleton == nil {
				opts.logger().Printf("linker: skipping path %d: nil skeleton", group[j].ID)
				continue
			}
			cands := enumerateCrossPath(group[i], group[j])
			out = append(out, filterAndEstimate(cands, group[i], group[j], false, opts)...)
		}
	}
	return out
}

func filterAndEstimate(cands []candidate, pathA, pathB Path, samePath bool, opts Options) []PathLink {
	skelOf := func(id int) *skeleton.Graph {
		if id == pathA.ID {
			return pathA.Skeleton
		}
		return pathB.Skeleton
	}

	var out []PathLink
	for _, c := range cands {
		if !dominant(c, skelOf, skelOf) {
			continue
		}
		pa := point2(skelOf(c.A.Path), c.A.Point)
		pb := point2(skelOf(c.B.Path), c.B.Point)
		if !exitCountOK(pa, pb, pathA.Polygon, samePath) {
			continue
		}

		link := toPathLink(c, skelOf(c.A.Path), skelOf(c.B.Path), opts)
		if link.HalfWidthA < opts.MinimalPathWidth || link.HalfWidthB < opts.MinimalPathWidth {
			opts.logger().Printf("linker: discarding candidate link %d<->%d: half-width %.2f/%.2f below minimum %.2f",
				link.PathA, link.PathB, link.HalfWidthA, link.HalfWidthB, opts.MinimalPathWidth)
			continue
		}
		out = append(out, link)
	}
	return out
}

func toPathLink(c candidate, gA, gB *skeleton.Graph, opts Options) PathLink {
	pa := point2(gA, c.A.Point)
	pb := point2(gB, c.B.Point)
	dir := pb.Sub(pa)

	return PathLink{
		PathA:      c.A.Path,
		PathB:      c.B.Path,
		A:          c.A.Point,
		B:          c.B.Point,
		Distance:   math.Sqrt(c.DistSq),
		HalfWidthA: roadwidth.Estimate(gA, c.A.Point, dir, opts.RoadWidth),
		HalfWidthB: roadwidth.Estimate(gB, c.B.Point, dir, opts.RoadWidth),
	}
}
