package pipeline

import (
	"context"
	"math"

	"github.com/ravelcraft/patterngen/anneal"
	"github.com/ravelcraft/patterngen/config"
	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/metadata"
	"github.com/ravelcraft/patterngen/pattern"
	"github.com/ravelcraft/patterngen/radius"
	"github.com/ravelcraft/patterngen/rowcompose"
	"github.com/ravelcraft/patterngen/rowmap"
	"github.com/ravelcraft/patterngen/sampler"
	"github.com/ravelcraft/patterngen/stitchcount"
	"github.com/ravelcraft/patterngen/stitchkind"
)

// profileSamplesPerRow oversamples the profile curve relative to the
// final row count, so RowMapper's nearest-sample lookup (§4.3) has
// enough resolution to track the smoothed radius rather than aliasing
// against it.
const profileSamplesPerRow = 8

// minProfileSamples floors the sample count for very short, few-row
// profiles.
const minProfileSamples = 64

// RunProfile runs the complete profile-curve pipeline: CurveSampler,
// RadiusSmoother, RowMapper, StitchCountSolver, RowComposer (with
// annealed special-stitch placement), and MetadataEstimator (§4.1-§4.3,
// §4.10-§4.13). Row 1 is always the magic ring. In ModeRound each row's
// physical length is the circumference 2πr swept by its smoothed
// radius; in ModeFlat the curve's radius channel is instead read as a
// half-width, giving a flat panel of physical width 2r per row.
func RunProfile(ctx context.Context, curve geom.ProfileCurve, cfg config.Config) (pattern.Pattern, error) {
	if err := ctx.Err(); err != nil {
		return pattern.Pattern{}, err
	}
	if err := curve.Validate(); err != nil {
		return pattern.Pattern{}, err
	}
	if err := cfg.Validate(); err != nil {
		return pattern.Pattern{}, err
	}

	rowCount := rowmap.RowCount(cfg.TotalHeightCM, cfg.Gauge)
	sampleN := rowCount * profileSamplesPerRow
	if sampleN < minProfileSamples {
		sampleN = minProfileSamples
	}

	samples := sampler.Sample(curve, sampleN)
	radii := radius.Smooth(samples)
	smoothed := make([]geom.Point2D, len(samples))
	for i, p := range samples {
		smoothed[i] = geom.Point2D{X: radii[i], Y: p.Y}
	}
	rowSample := rowmap.MapRows(smoothed, cfg.TotalHeightCM, cfg.Gauge)

	lengths := make([]float64, rowCount)
	for i := 0; i < rowCount; i++ {
		r := radii[rowSample[i]]
		if cfg.Mode == config.ModeFlat {
			lengths[i] = 2 * r
		} else {
			lengths[i] = 2 * math.Pi * r
		}
	}

	counts, err := stitchcount.Solve(lengths, cfg.Gauge.StitchesPerCM)
	if err != nil {
		return pattern.Pattern{}, err
	}

	rows := make([]pattern.Row, rowCount)
	rowStats := make([]metadata.RowStat, rowCount)
	var prevPlacement anneal.RowPlacement

	for i := 0; i < rowCount; i++ {
		if err := ctx.Err(); err != nil {
			return pattern.Pattern{}, err
		}
		number := i + 1
		var kinds []stitchkind.Kind
		if i == 0 {
			kinds = rowcompose.MagicRing()
		} else {
			kinds, err = rowcompose.ComposeRow(counts[i-1], counts[i])
			if err != nil {
				return pattern.Pattern{}, err
			}
		}
		kinds, prevPlacement = rearrange(kinds, prevPlacement)

		row := pattern.BuildRow(number, kinds)
		rows[i] = row
		rowStats[i] = metadata.RowStat{StitchCount: row.TargetCount, CircumferenceCM: lengths[i]}
	}

	maxRadius := 0.0
	for _, r := range radii {
		if r > maxRadius {
			maxRadius = r
		}
	}
	dims := &metadata.Dimensions{HeightCM: cfg.TotalHeightCM, WidthCM: 2 * maxRadius}

	return pattern.Pattern{Rows: rows, Metadata: metadata.Estimate(rowStats, dims)}, nil
}
