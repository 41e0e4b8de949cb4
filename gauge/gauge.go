// Package gauge defines YarnGauge, the physical density a crochet
// fabric is worked at.
package gauge

import (
	"fmt"

	"github.com/ravelcraft/patterngen/patternerr"
)

// YarnGauge describes stitch density: stitches and rows per centimeter,
// and the hook size (mm) the gauge was measured with. All three fields
// must be strictly positive.
type YarnGauge struct {
	StitchesPerCM float64
	RowsPerCM     float64
	HookSizeMM    float64
}

// Validate reports patternerr.ErrInvalidConfiguration if any field is
// non-positive.
func (g YarnGauge) Validate() error {
	if g.StitchesPerCM <= 0 {
		return fmt.Errorf("%w: stitches/cm must be > 0, got %v", patternerr.ErrInvalidConfiguration, g.StitchesPerCM)
	}
	if g.RowsPerCM <= 0 {
		return fmt.Errorf("%w: rows/cm must be > 0, got %v", patternerr.ErrInvalidConfiguration, g.RowsPerCM)
	}
	if g.HookSizeMM <= 0 {
		return fmt.Errorf("%w: hook size must be > 0, got %v", patternerr.ErrInvalidConfiguration, g.HookSizeMM)
	}
	return nil
}

// RowHeightCM returns 1/RowsPerCM, the physical height of one row.
func (g YarnGauge) RowHeightCM() float64 { return 1.0 / g.RowsPerCM }
