package radius_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/radius"
)

func constantSamples(r float64, n int) []geom.Point2D {
	out := make([]geom.Point2D, n)
	for i := range out {
		out[i] = geom.Point2D{X: r, Y: float64(i)}
	}
	return out
}

func TestSmooth_ConstantRadiusIsFixedPoint(t *testing.T) {
	samples := constantSamples(4.5, 20)
	smoothed := radius.Smooth(samples)

	for _, r := range smoothed {
		require.InDelta(t, 4.5, r, 1e-9)
	}
}

func TestSmooth_IsIdempotentOnAlreadySmoothedInput(t *testing.T) {
	samples := constantSamples(3, 15)
	once := radius.Smooth(samples)

	onceSamples := make([]geom.Point2D, len(once))
	for i, r := range once {
		onceSamples[i] = geom.Point2D{X: r, Y: float64(i)}
	}
	twice := radius.Smooth(onceSamples)

	require.Len(t, twice, len(once))
	for i := range once {
		require.InDelta(t, once[i], twice[i], 1e-9)
	}
}

func TestSmooth_NegativeRadiusClampsToZero(t *testing.T) {
	samples := []geom.Point2D{{X: -5, Y: 0}}
	smoothed := radius.Smooth(samples)
	require.Len(t, smoothed, 1)
	require.Equal(t, 0.0, smoothed[0])
}

func TestSmooth_EmptyInputReturnsEmpty(t *testing.T) {
	require.Empty(t, radius.Smooth(nil))
}

func TestSmooth_SpikeIsDampedBelowItsOwnValue(t *testing.T) {
	samples := constantSamples(2, 21)
	samples[10].X = 20

	smoothed := radius.Smooth(samples)
	require.Less(t, smoothed[10], 20.0)
	require.Greater(t, smoothed[10], 2.0)
}
