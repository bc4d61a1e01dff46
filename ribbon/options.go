package ribbon

// Options configures tube extrusion.
type Options struct {
	// TunnelHeight is H: the removal tube extrudes
	// upward by H, the support tube downward by H/6.
	TunnelHeight float64
}

// DefaultOptions returns the default (H = 3 m).
func DefaultOptions() Options {
	return Options{TunnelHeight: 3}
}
