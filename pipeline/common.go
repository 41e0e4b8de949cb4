package pipeline

import (
	"github.com/ravelcraft/patterngen/anneal"
	"github.com/ravelcraft/patterngen/stitchkind"
)

// rearrange redistributes a composed row's special stitches (the
// increases of a Δ>0 row, or the invisible decreases of a Δ<0 row) using
// the deterministic placement annealer (§4.12), in place of
// RowComposer's own schedule-based positions, and returns the
// RowPlacement the next row's annealing pass needs as its "previous
// row" reference. A row with no special stitches (Δ=0, or row 1's magic
// ring) passes through unchanged.
func rearrange(kinds []stitchkind.Kind, prev anneal.RowPlacement) ([]stitchkind.Kind, anneal.RowPlacement) {
	special, nSpecial, ok := specialKind(kinds)
	if !ok {
		return kinds, anneal.RowPlacement{Length: len(kinds)}
	}

	positions := anneal.Arrange(len(kinds), nSpecial, prev)
	out := anneal.ApplyPositions(len(kinds), positions, special)

	// Keep the row's non-special kinds (e.g. a HalfDouble from
	// ClassifyCurvature) in their original order in the non-special slots.
	rest := make([]stitchkind.Kind, 0, len(kinds)-nSpecial)
	for _, k := range kinds {
		if !k.IsSpecial() {
			rest = append(rest, k)
		}
	}
	j := 0
	for i, k := range out {
		if !k.IsSpecial() {
			out[i] = rest[j]
			j++
		}
	}
	return out, anneal.RowPlacement{Length: len(kinds), Specials: positions}
}

// specialKind reports the single non-uniform kind present in kinds
// (RowComposer never mixes increases and decreases within one row) and
// how many instances of it occur.
func specialKind(kinds []stitchkind.Kind) (kind stitchkind.Kind, count int, ok bool) {
	for _, k := range kinds {
		if k.IsSpecial() {
			kind = k
			count++
		}
	}
	return kind, count, count > 0
}
