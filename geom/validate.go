package geom

import (
	"fmt"
	"math"

	"github.com/ravelcraft/patterngen/patternerr"
)

// continuityEpsilon is the maximum allowed gap between one segment's end
// and the next segment's start before the curve is rejected as
// discontinuous (§3, §8).
const continuityEpsilon = 1e-6

// Validate reports patternerr.ErrInvalidProfileCurve if c has no
// segments, or if any two consecutive segments fail to meet within
// continuityEpsilon.
func (c ProfileCurve) Validate() error {
	if len(c.Segments) == 0 {
		return fmt.Errorf("%w: profile curve has no segments", patternerr.ErrInvalidProfileCurve)
	}
	for i := 1; i < len(c.Segments); i++ {
		gap := c.Segments[i].Start.Distance(c.Segments[i-1].End)
		if math.IsNaN(gap) || gap > continuityEpsilon {
			return fmt.Errorf("%w: discontinuity of %g between segment %d and %d exceeds tolerance %g",
				patternerr.ErrInvalidProfileCurve, gap, i-1, i, continuityEpsilon)
		}
	}
	return nil
}
