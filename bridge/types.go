package bridge

import (
	"io"
	"log"

	"github.com/terraloom/meshbridge/geom"
	"github.com/terraloom/meshbridge/meshmodel"
)

// Options configures the bridge optimizer with the residual coefficients
// and solver tunables.
type Options struct {
	Alpha, Beta, Gamma, Delta, Epsilon, Zeta, Eta, Theta float64
	TunnelHeight                                         float64
	CostThreshold                                        float64
	IntegrationStep                                       float64
	MaxIterations                                         int

	// Logger records bridges rejected by the cost-threshold check.
	// Defaults to a discard logger when left zero.
	Logger *log.Logger
}

// DefaultOptions returns the default parameter values.
func DefaultOptions() Options {
	return Options{
		Alpha: 10, Beta: 1, Gamma: 1, Delta: 2, Epsilon: 1, Zeta: 10, Eta: 100, Theta: 15,
		TunnelHeight:    3,
		CostThreshold:   50,
		IntegrationStep: 0.3,
		MaxIterations:   30,
		Logger:          log.New(io.Discard, "", 0),
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

// PathBridge is the optimized ribbon centerline/half-width profile:
// N+1 stations along the link direction, each carrying an elevation and
// asymmetric left/right half-widths.
type PathBridge struct {
	Label meshmodel.Label
	N     int

	// Station arrays, each of length N+1.
	Z, Xl, Xr []float64

	Origin geom.Point2  // alpha.point
	Dir    geom.Vector2 // unit link direction l = (beta-alpha)/|beta-alpha|
	Perp   geom.Vector2 // n = l-perp, counter-clockwise
	Length float64      // D = |beta.point - alpha.point|

	Cost          float64
	CrossingFaces map[int]bool
}

// Station returns the 2-D ground point at station i (the centerline
// sample, before any left/right offset).
func (b *PathBridge) Station(i int) geom.Point2 {
	t := float64(i) / float64(b.N)
	return b.Origin.Add(b.Dir.Scale(t * b.Length))
}

// Rail returns the left (side=+1) or right (side=-1) rail point at
// station i, offset perpendicular to the centerline by the station's
// half-width.
func (b *PathBridge) Rail(i int, side float64) geom.Point2 {
	half := b.Xl[i]
	if side < 0 {
		half = b.Xr[i]
	}
	return b.Station(i).Add(b.Perp.Scale(side * half))
}
