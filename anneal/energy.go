package anneal

import "math"

// circularDist returns the circular distance between integer slots a and
// b on a ring of size length.
func circularDist(a, b, length int) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > length-d {
		d = length - d
	}
	return float64(d)
}

// circularDistToFloat returns the circular distance between integer slot
// a (ring size length) and a continuous ring position b, both expressed
// in a-units.
func circularDistToFloat(a int, b float64, length int) float64 {
	d := float64(a) - b
	if d < 0 {
		d = -d
	}
	l := float64(length)
	if d > l-d {
		d = l - d
	}
	return d
}

// prevRowPenalty scores how close a current-row special stitch (at slot
// cur, out of curLen) sits to its nearest special stitch on the previous
// row (scaled into the current row's slot units), per the threshold rule
// in §4.12: distances under curLen/(2*nSpecial) are penalized sharply
// (near-alignment is bad — it stacks increases/decreases into visible
// columns), farther distances lightly.
func prevRowPenalty(cur, curLen, nSpecial int, prev RowPlacement) float64 {
	if len(prev.Specials) == 0 {
		return 0
	}
	threshold := float64(curLen) / (2 * float64(nSpecial))
	minDist := math.Inf(1)
	for _, p := range prev.Specials {
		frac := float64(p) / float64(prev.Length)
		equiv := frac * float64(curLen)
		d := circularDistToFloat(cur, equiv, curLen)
		if d < minDist {
			minDist = d
		}
	}
	if minDist < threshold {
		return math.Exp(-minDist) * 10
	}
	return math.Exp(-minDist / 2)
}

// energy computes the total placement energy for the given special-slot
// arrangement: the negative-log-spacing intra-row term plus lambda times
// the previous-row staggering penalty, summed over every special stitch.
func energy(positions []int, length int, prev RowPlacement) float64 {
	n := len(positions)
	var e float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := circularDist(positions[i], positions[j], length)
			e -= math.Log(d + 1)
		}
	}
	var penalty float64
	for _, p := range positions {
		penalty += prevRowPenalty(p, length, n, prev)
	}
	e += lambda * penalty
	return e
}
