package stitchcount

import (
	"fmt"
	"math"

	"github.com/ravelcraft/patterngen/patternerr"
)

// magicRingCount is the forced stitch count of row 0.
const magicRingCount = 6

// minStitchCount is the floor applied to every row's ideal count.
const minStitchCount = 6

// MaxDelta returns the maximum allowed |count_i - count_{i-1}|: a row may
// at most double (all increases, delta == prev) or halve (all invisible
// decreases, delta == prev/2), mechanically bounded by
// max(6, floor(prev/6)) (§4.10).
func MaxDelta(prev int) int {
	d := prev / 6
	if d < magicRingCount {
		d = magicRingCount
	}
	return d
}

// Solve converts a physical length per row (circumference for the
// profile path, local width for the mesh path) into integer stitch
// counts. lengths[0] is ignored: row 0 is always the magic ring
// (magicRingCount stitches). For i > 0, the ideal count is
// round(lengths[i] * stitchesPerCM), floored at minStitchCount, then
// clamped to [prev-MaxDelta(prev), prev+MaxDelta(prev)].
func Solve(lengths []float64, stitchesPerCM float64) ([]int, error) {
	if stitchesPerCM <= 0 {
		return nil, fmt.Errorf("%w: stitches/cm must be > 0, got %v", patternerr.ErrInvalidConfiguration, stitchesPerCM)
	}
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: no rows to solve", patternerr.ErrInvalidConfiguration)
	}

	counts := make([]int, len(lengths))
	counts[0] = magicRingCount
	for i := 1; i < len(lengths); i++ {
		length := lengths[i]
		if math.IsNaN(length) || math.IsInf(length, 0) {
			return nil, fmt.Errorf("%w: non-finite row length at row %d", patternerr.ErrInternal, i)
		}
		if length < 0 {
			length = 0
		}
		ideal := int(math.Round(length * stitchesPerCM))
		if ideal < minStitchCount {
			ideal = minStitchCount
		}

		prev := counts[i-1]
		maxDelta := MaxDelta(prev)
		lo := prev - maxDelta
		if lo < minStitchCount {
			lo = minStitchCount
		}
		hi := prev + maxDelta
		clamped := ideal
		if clamped < lo {
			clamped = lo
		}
		if clamped > hi {
			clamped = hi
		}
		counts[i] = clamped
	}
	return counts, nil
}
