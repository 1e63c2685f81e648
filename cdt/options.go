package cdt

import "github.com/zalo/CDT/types"

// config collects the complete option set: spec section 6's addBoundingBox
// and verbose, plus the ambient additions (epsilon, merge distance, logger)
// SPEC_FULL.md's ambient stack section documents.
type config struct {
	addBoundingBox bool
	verbose        bool
	epsilon        types.Epsilon
	mergeDistance  float64
	logger         Logger
}

func defaultConfig() config {
	eps := types.DefaultEpsilon()
	return config{
		epsilon:       eps,
		mergeDistance: eps.Abs,
	}
}

// Option configures a ComputeCDT call, mirroring the functional-options
// pattern in the reference's mesh/options.go.
type Option func(*config)

// WithBoundingBox enables spec 4.B's addBoundingBox: eight axis-aligned
// corners are appended strictly outside the input bounding box before
// Delaunay construction, guaranteeing every input vertex is interior to the
// hull.
func WithBoundingBox(enable bool) Option {
	return func(c *config) {
		c.addBoundingBox = enable
	}
}

// WithVerbose enables diagnostic logging to stderr (spec section 6), by
// installing stderrLogger unless a logger is set via WithLogger (in either
// option order).
func WithVerbose(enable bool) Option {
	return func(c *config) {
		c.verbose = enable
	}
}

// WithEpsilon overrides the geometric tolerance stored in the call's
// configuration. No pipeline stage reads this value: vertex merging uses
// the WithMergeDistance radius, and no degeneracy check consults it.
func WithEpsilon(epsilon types.Epsilon) Option {
	return func(c *config) {
		c.epsilon = epsilon
	}
}

// WithMergeDistance overrides the radius within which a vertex inserted
// during recovery is snapped to an existing vertex's handle
// (tetmesh.AddVertex). Input vertices are never merged with each other.
func WithMergeDistance(distance float64) Option {
	return func(c *config) {
		if distance >= 0 {
			c.mergeDistance = distance
		}
	}
}

// WithLogger installs sink as the destination for diagnostic logging,
// overriding WithVerbose's default stderr sink.
func WithLogger(sink Logger) Option {
	return func(c *config) {
		c.logger = sink
	}
}
