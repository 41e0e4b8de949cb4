package rowcompose

import (
	"fmt"

	"github.com/ravelcraft/patterngen/patternerr"
	"github.com/ravelcraft/patterngen/stitchkind"
)

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// ComposeRow emits the stitch-kind sequence that transforms a row of
// prevCount stitches into a row totaling targetCount stitches (§4.11).
//
//   - Δ = 0: prevCount singles.
//   - Δ > 0: prevCount instructions, exactly Δ increases placed so that
//     after sequence index i the cumulative increase count equals
//     ⌈(i+1)·Δ / prevCount⌉, the rest singles.
//   - Δ < 0: a mixture of invisible decreases (consume 2, produce 1) and
//     singles. A consumption pointer i walks 0..prevCount; an invisible
//     decrease is placed when the schedule ⌈(i+1)·d / prevCount⌉ (d =
//     prevCount-targetCount) demands one more than already placed AND
//     i+1 < prevCount (room to consume a second stitch); otherwise a
//     single is placed and the pointer advances by 1.
//
// The result's consumption (Σ kind.Consumes()) always equals prevCount
// and its production (Σ kind.Produces()) always equals targetCount; this
// is asserted before returning and reported as
// patternerr.ErrPatternInconsistency on failure rather than ever
// returned silently wrong (§7).
func ComposeRow(prevCount, targetCount int) ([]stitchkind.Kind, error) {
	if prevCount <= 0 || targetCount <= 0 {
		return nil, fmt.Errorf("%w: row counts must be positive (prev=%d, target=%d)",
			patternerr.ErrInvalidConfiguration, prevCount, targetCount)
	}

	delta := targetCount - prevCount
	var kinds []stitchkind.Kind

	switch {
	case delta == 0:
		kinds = make([]stitchkind.Kind, prevCount)
		for i := range kinds {
			kinds[i] = stitchkind.Single
		}

	case delta > 0:
		kinds = make([]stitchkind.Kind, prevCount)
		placed := 0
		for i := 0; i < prevCount; i++ {
			need := ceilDiv((i+1)*delta, prevCount)
			if placed < need {
				kinds[i] = stitchkind.Increase
				placed++
			} else {
				kinds[i] = stitchkind.Single
			}
		}

	default: // delta < 0
		d := -delta
		kinds = make([]stitchkind.Kind, 0, targetCount)
		placed := 0
		i := 0
		for i < prevCount {
			need := ceilDiv((i+1)*d, prevCount)
			if placed < need && i+1 < prevCount {
				kinds = append(kinds, stitchkind.InvisibleDecrease)
				placed++
				i += 2
			} else {
				kinds = append(kinds, stitchkind.Single)
				i++
			}
		}
	}

	if err := verify(kinds, prevCount, targetCount); err != nil {
		return nil, err
	}
	return kinds, nil
}

// verify checks the RowComposer post-condition: total consumption equals
// prevCount and total production equals targetCount.
func verify(kinds []stitchkind.Kind, prevCount, targetCount int) error {
	consumed, produced := 0, 0
	for _, k := range kinds {
		consumed += k.Consumes()
		produced += k.Produces()
	}
	if consumed != prevCount || produced != targetCount {
		return fmt.Errorf("%w: consumed=%d want=%d, produced=%d want=%d",
			patternerr.ErrPatternInconsistency, consumed, prevCount, produced, targetCount)
	}
	return nil
}

// MagicRing returns the fixed row-0 instruction sequence: six singles
// (§3, §4.11).
func MagicRing() []stitchkind.Kind {
	return []stitchkind.Kind{
		stitchkind.Single, stitchkind.Single, stitchkind.Single,
		stitchkind.Single, stitchkind.Single, stitchkind.Single,
	}
}
