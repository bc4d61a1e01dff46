package linker

import (
	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
	"github.com/terraloom/meshbridge/skeleton"
)

// Path is one connected path fragment of a given label class: its
// straight skeleton plus the ground-plane polygon the skeleton was built
// from.
type Path struct {
	ID       int
	Label    meshmodel.Label
	Skeleton *skeleton.Graph
	Polygon  geom.PolygonWithHoles
}

// Endpoint names one end of a candidate link: which Path it belongs to
// and the SkeletonPoint on that path's skeleton.
type Endpoint struct {
	Path  int
	Point skeleton.Point
}

// key returns a value comparable with < that gives every distinct
// Endpoint a total order, ranking vertex- and halfedge-pinned endpoints
// alike.
func (e Endpoint) key() endpointKey {
	if e.Point.IsVertex() {
		return endpointKey{path: e.Path, kind: 0, index: e.Point.Vertex}
	}
	return endpointKey{path: e.Path, kind: 1, index: e.Point.Halfedge}
}

type endpointKey struct {
	path, kind, index int
}

func (k endpointKey) less(o endpointKey) bool {
	if k.path != o.path {
		return k.path < o.path
	}
	if k.kind != o.kind {
		return k.kind < o.kind
	}
	return k.index < o.index
}

// candidate is one enumerated (A, B) pair before dominance and
// polygon-exit filtering, with its squared 2-D distance.
type candidate struct {
	A, B   Endpoint
	DistSq float64
}

// PathLink is a surviving link between two path fragments, ready for the bridge optimizer (C6).
type PathLink struct {
	PathA, PathB           int
	A, B                   skeleton.Point
	Distance               float64
	HalfWidthA, HalfWidthB float64
}
