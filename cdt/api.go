// Package cdt orchestrates the full pipeline (spec section 2: A→B→D→E→F→G→H)
// behind the two public operations spec section 6 names, ComputeCDT and
// ValidateMesh.
//
// Grounded on the reference's cdt.Build (cdt/builder.go): stage-by-stage
// orchestration with wrapped errors and a diagnostics-carrying result,
// restaged from 2D's normalize→cover→insert→constrain→legalize→classify→
// export to plc→delaunay→overlay→recovery(segments)→recovery(faces)→
// region→export.
package cdt

import (
	"github.com/zalo/CDT/numerics"
	"github.com/zalo/CDT/plc"
)

// ComputeCDT computes a Constrained Delaunay Tetrahedrization of the PLC
// described by verticesFlat (packed x,y,z triples) and trianglesFlat
// (packed vertex-index triples), per spec section 6.
//
// Every input-invalid, degenerate-geometry, or recovery-failure condition
// (spec 7 categories 1-3) is reported as Result{Success: false} with empty
// arrays rather than a Go error; a non-nil error return is reserved for
// conditions spec 7 says must propagate rather than collapse (category 4:
// resource exhaustion; category 5: internal predicate inconsistency).
func ComputeCDT(verticesFlat []float64, trianglesFlat []uint32, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	release := numerics.AcquireRoundingMode()
	defer release()

	pl := &pipeline{cfg: cfg, log: cfg.resolveLogger()}
	return pl.run(verticesFlat, trianglesFlat)
}

// ValidateMesh reports whether verticesFlat/trianglesFlat form a structurally
// valid PLC input (spec section 6), without running the tetrahedrizer.
func ValidateMesh(verticesFlat []float64, trianglesFlat []uint32) ValidationResult {
	p, err := plc.New(verticesFlat, trianglesFlat)
	if err != nil {
		return ValidationResult{
			NumVertices:  len(verticesFlat) / 3,
			NumTriangles: len(trianglesFlat) / 3,
			Valid:        false,
		}
	}
	return ValidationResult{
		NumVertices:  len(p.Vertices),
		NumTriangles: len(p.Triangles),
		Valid:        true,
	}
}
