// SPDX-License-Identifier: MIT
// Package patternerr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// pipeline. All components MUST return these sentinels (wrapped with
// fmt.Errorf("ctx: %w", ErrX) where context is essential) and tests MUST
// check them via errors.Is. No component panics on caller-triggered error
// conditions; panics are reserved for programmer errors in private helpers.
package patternerr

import "errors"

// The six externally-surfaced taxonomy members (spec §6), plus ErrInternal
// for the fatal NaN/Inf invariant violation required by §7.
var (
	// ErrInvalidProfileCurve indicates a malformed or discontinuous profile
	// curve: empty segment list, or a gap between consecutive segments
	// exceeding the continuity tolerance.
	ErrInvalidProfileCurve = errors.New("patterngen: invalid profile curve")

	// ErrInvalidConfiguration indicates a non-positive height, gauge
	// component, or hook size, or an unrecognized construction mode.
	ErrInvalidConfiguration = errors.New("patterngen: invalid configuration")

	// ErrParameterizationFailure indicates the conformal least-squares
	// system could not be solved: too few vertices, a degenerate pin
	// selection, or conjugate gradient failing to converge.
	ErrParameterizationFailure = errors.New("patterngen: parameterization failure")

	// ErrSeamPlacementFailure indicates no seam path of length >= 2 could
	// be found on a closed mesh.
	ErrSeamPlacementFailure = errors.New("patterngen: seam placement failure")

	// ErrPatternInconsistency indicates a RowComposer post-condition
	// (consumption/production accounting) failed verification.
	ErrPatternInconsistency = errors.New("patterngen: pattern inconsistency")

	// ErrIO indicates a failure reading or decoding external input (mesh
	// loader, data URI).
	ErrIO = errors.New("patterngen: io error")

	// ErrInternal indicates a NaN or ±Inf value surfaced in an
	// intermediate numeric result; this is always fatal and never
	// recoverable via a warning.
	ErrInternal = errors.New("patterngen: internal invariant violated")
)
