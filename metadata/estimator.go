package metadata

import (
	"fmt"
	"time"
)

// secondsPerStitch is the flat per-stitch time estimate (§4.13).
const secondsPerStitch = 2

// cmPerStitchAllowance is the flat per-stitch yarn allowance added to
// each row's physical circumference when estimating yarn consumption
// (§4.13).
const cmPerStitchAllowance = 1.0

const cmPerMeter = 100.0

// RowStat is the per-row input to Estimate: the row's stitch count and
// its physical circumference (or width, for a flat panel) in
// centimeters.
type RowStat struct {
	StitchCount     int
	CircumferenceCM float64
}

// Dimensions carries optional resulting physical dimensions, as supplied
// by the caller of Estimate.
type Dimensions struct {
	HeightCM float64
	WidthCM  float64
}

// Metadata is MetadataEstimator's output (§4.13, §6).
type Metadata struct {
	StitchCount    int
	RowCount       int
	EstimatedTime  string
	YarnEstimate   string
	EstimatedTimeS float64 // seconds, for callers needing the raw value
	YarnEstimateM  float64 // meters, for callers needing the raw value
	Dimensions     *Dimensions
}

// Estimate derives a Metadata summary from the per-row stats of a
// finished pattern.
func Estimate(rows []RowStat, dims *Dimensions) Metadata {
	totalStitches := 0
	yarnCM := 0.0
	for _, r := range rows {
		totalStitches += r.StitchCount
		yarnCM += r.CircumferenceCM + cmPerStitchAllowance*float64(r.StitchCount)
	}

	timeSeconds := float64(totalStitches * secondsPerStitch)
	yarnMeters := yarnCM / cmPerMeter

	return Metadata{
		StitchCount:    totalStitches,
		RowCount:       len(rows),
		EstimatedTime:  humanDuration(timeSeconds),
		YarnEstimate:   fmt.Sprintf("%.1f m", yarnMeters),
		EstimatedTimeS: timeSeconds,
		YarnEstimateM:  yarnMeters,
		Dimensions:     dims,
	}
}

// humanDuration renders a second count as a compact "Xh Ym" / "Ym" /
// "Ys" human string.
func humanDuration(seconds float64) string {
	d := time.Duration(seconds) * time.Second
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", int(seconds))
	}
}
