// Package anneal redistributes the positions of a row's non-uniform
// (increase/decrease-family) stitches by simulated annealing, minimizing
// an energy that rewards even intra-row spacing and staggering against
// the previous row's special-stitch positions.
//
// The stitch-kind multiset a row emits (see rowcompose) is fixed before
// annealing starts — consumption and production depend only on how many
// of each kind a row has, never on their order — so every candidate
// arrangement explored here is automatically consumption/production
// valid; annealing only ever chooses which of a row's L slots carry the
// special kind.
//
// Determinism: the PRNG is seeded with a fixed value (42) so that
// re-running the annealer on identical input reproduces the identical
// arrangement, matching the teacher package's tsp/rng.go policy of never
// reaching for a time-based source.
package anneal
