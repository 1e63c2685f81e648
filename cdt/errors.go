package cdt

import "errors"

// Sentinel errors for the category-4/5 failure modes of spec section 7:
// categories 1-3 (input invalid, degenerate geometry, recovery failure) are
// reported through Result.Success instead, mirroring how the reference's
// mesh/errors.go and validation/*.go keep package-level sentinels that the
// public surface only sometimes surfaces directly.
var (
	// ErrPredicateInconsistency indicates a geometric predicate contradicted
	// a prior evaluation of the same inputs — spec 7 category 5, a bug, not
	// a recoverable condition.
	ErrPredicateInconsistency = errors.New("cdt: predicate sign inconsistency")
)
