package anneal

// RowPlacement captures a row's length and the slot indices (0-based,
// within [0,Length)) that hold its special (non-single) stitch, for use
// as the "previous row" reference when annealing the next row.
type RowPlacement struct {
	Length   int
	Specials []int
}

// fixedSeed is the PlacementAnnealer's deterministic PRNG seed (§4.12, §9
// — "seeded with a fixed value (42) for reproducibility").
const fixedSeed = 42

// iterations is the number of annealing steps per row (§4.12).
const iterations = 500

// initialTemperature and coolingFactor define the per-iteration schedule
// T_{n+1} = T_n * coolingFactor, starting at initialTemperature (§4.12).
const (
	initialTemperature = 1.0
	coolingFactor      = 0.95
)

// lambda weights the inter-row staggering term against the intra-row
// spacing term in the energy (§4.12).
const lambda = 1.0

// swapMoveProbability is the probability of proposing a swap move versus
// an index-shift move at each iteration (§4.12).
const swapMoveProbability = 0.5

// shiftRange bounds the random index shift applied by a shift move to
// [-shiftRange, +shiftRange] (§4.12).
const shiftRange = 3
