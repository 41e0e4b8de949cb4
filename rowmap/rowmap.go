package rowmap

import (
	"math"
	"sort"

	"github.com/ravelcraft/patterngen/gauge"
	"github.com/ravelcraft/patterngen/geom"
)

// RowCount returns R = max(1, floor(totalHeightCM/h + 0.5)) where
// h = g.RowHeightCM() (§4.3).
func RowCount(totalHeightCM float64, g gauge.YarnGauge) int {
	h := g.RowHeightCM()
	r := int(math.Floor(totalHeightCM/h + 0.5))
	if r < 1 {
		r = 1
	}
	return r
}

// MapRows returns, for each row i = 1..R, the index into samples whose
// height (Y) is nearest the row's target height i*h, with the last row
// pinned to exactly totalHeightCM (§4.3). samples must be sorted
// ascending by Y (height); CurveSampler's output satisfies this for any
// profile curve whose height strictly increases.
func MapRows(samples []geom.Point2D, totalHeightCM float64, g gauge.YarnGauge) []int {
	r := RowCount(totalHeightCM, g)
	h := g.RowHeightCM()

	indices := make([]int, r)
	for i := 1; i <= r; i++ {
		targetHeight := float64(i) * h
		if i == r {
			targetHeight = totalHeightCM
		}
		indices[i-1] = nearestByHeight(samples, targetHeight)
	}
	return indices
}

// nearestByHeight binary-searches samples (sorted ascending by Y) for
// the index whose height is closest to targetHeight.
func nearestByHeight(samples []geom.Point2D, targetHeight float64) int {
	n := len(samples)
	if n == 0 {
		return 0
	}
	i := sort.Search(n, func(i int) bool { return samples[i].Y >= targetHeight })
	if i == 0 {
		return 0
	}
	if i == n {
		return n - 1
	}
	if targetHeight-samples[i-1].Y <= samples[i].Y-targetHeight {
		return i - 1
	}
	return i
}
