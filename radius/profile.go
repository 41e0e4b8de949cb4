package radius

import (
	"math"

	"github.com/ravelcraft/patterngen/geom"
)

// interSampleSpacing is the nominal spacing (in sample-index units) the
// Gaussian kernel's sigma is derived from (§4.2). CurveSampler produces
// arc-length-uniform samples, so index spacing is the natural unit.
const interSampleSpacing = 1.0

// sigma is 0.5 * interSampleSpacing (§4.2).
const sigma = 0.5 * interSampleSpacing

// Smooth takes samples interpreted as (radius, height) — X is radius, Y
// is height — clamps radius to non-negative, and returns the
// Gaussian-smoothed radius sequence. Half-width is ceil(6*sigma);
// boundary samples use index clamping.
func Smooth(samples []geom.Point2D) []float64 {
	n := len(samples)
	radii := make([]float64, n)
	for i, p := range samples {
		r := p.X
		if r < 0 {
			r = 0
		}
		radii[i] = r
	}
	if n == 0 {
		return radii
	}

	halfWidth := int(math.Ceil(6 * sigma))
	kernel := make([]float64, 2*halfWidth+1)
	sum := 0.0
	for j := -halfWidth; j <= halfWidth; j++ {
		w := math.Exp(-float64(j*j) / (2 * sigma * sigma))
		kernel[j+halfWidth] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var acc float64
		for j := -halfWidth; j <= halfWidth; j++ {
			idx := clampIndex(i+j, n)
			acc += kernel[j+halfWidth] * radii[idx]
		}
		out[i] = acc
	}
	return out
}

// clampIndex clamps i into [0,n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
