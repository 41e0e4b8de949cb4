package anneal

import (
	"math"
	"math/rand"

	"github.com/ravelcraft/patterngen/stitchkind"
)

// newRNG returns the fixed-seed deterministic PRNG required for
// reproducible annealing runs.
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(fixedSeed))
}

// initialPositionsStaggered lays out nSpecial slots evenly across
// [0,length), offset by half the spacing if the previous row carried any
// special stitches, to stagger increases/decreases from row to row
// (§4.12).
func initialPositionsStaggered(length, nSpecial int, prev RowPlacement) []int {
	if nSpecial == 0 {
		return nil
	}
	spacing := float64(length) / float64(nSpecial)
	offset := 0.0
	if len(prev.Specials) > 0 {
		offset = spacing / 2
	}
	pos := make([]int, nSpecial)
	seen := make(map[int]bool, nSpecial)
	for i := 0; i < nSpecial; i++ {
		p := int(spacing*float64(i)+offset) % length
		for seen[p] {
			p = (p + 1) % length
		}
		seen[p] = true
		pos[i] = p
	}
	return pos
}

// Arrange runs the simulated-annealing schedule described in §4.12 and
// returns the final slot indices (within [0,length)) of the nSpecial
// special stitches in a row of the given length, given the previous
// row's placement (Length==0 if there is no previous row, e.g. row 1).
//
// Deterministic: always uses the fixed seed, so the same (length,
// nSpecial, prev) always returns the same arrangement.
func Arrange(length, nSpecial int, prev RowPlacement) []int {
	if nSpecial == 0 || length == 0 {
		return nil
	}
	if nSpecial >= length {
		// Degenerate: every slot is special: no freedom to arrange.
		pos := make([]int, length)
		for i := range pos {
			pos[i] = i
		}
		return pos
	}

	rng := newRNG()
	positions := initialPositionsStaggered(length, nSpecial, prev)
	currentEnergy := energy(positions, length, prev)
	temperature := initialTemperature

	for iter := 0; iter < iterations; iter++ {
		candidate := append([]int(nil), positions...)
		if rng.Float64() < swapMoveProbability {
			proposeSwap(candidate, rng)
		} else {
			if !proposeShift(candidate, length, rng) {
				temperature *= coolingFactor
				continue
			}
		}

		candidateEnergy := energy(candidate, length, prev)
		delta := candidateEnergy - currentEnergy
		if delta <= 0 || rng.Float64() < math.Exp(-delta/temperature) {
			positions = candidate
			currentEnergy = candidateEnergy
		}
		temperature *= coolingFactor
	}

	sortInts(positions)
	return positions
}

// proposeSwap swaps two distinct entries of positions in place.
func proposeSwap(positions []int, rng *rand.Rand) {
	if len(positions) < 2 {
		return
	}
	i := rng.Intn(len(positions))
	j := rng.Intn(len(positions))
	for j == i {
		j = rng.Intn(len(positions))
	}
	positions[i], positions[j] = positions[j], positions[i]
}

// proposeShift shifts one random entry of positions by a random amount
// in [-shiftRange, +shiftRange], wrapping circularly within [0,length).
// Returns false (no-op) if the shifted slot collides with another
// occupied slot, per the "reject candidates with collisions" rule.
func proposeShift(positions []int, length int, rng *rand.Rand) bool {
	i := rng.Intn(len(positions))
	delta := rng.Intn(2*shiftRange+1) - shiftRange
	next := ((positions[i]+delta)%length + length) % length
	for k, p := range positions {
		if k != i && p == next {
			return false
		}
	}
	positions[i] = next
	return true
}

// sortInts sorts a small slice of positions ascending (insertion sort is
// fine: nSpecial is bounded by a row's stitch count, never large enough
// to warrant sort.Ints's overhead for this hot loop... callers may also
// just use sort.Ints; this keeps the package self-contained).
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// ApplyPositions builds the final kind sequence of the given length,
// placing special at each index in positions and stitchkind.Single
// elsewhere.
func ApplyPositions(length int, positions []int, special stitchkind.Kind) []stitchkind.Kind {
	kinds := make([]stitchkind.Kind, length)
	for i := range kinds {
		kinds[i] = stitchkind.Single
	}
	for _, p := range positions {
		kinds[p] = special
	}
	return kinds
}
