package pipeline

import (
	"context"

	"github.com/ravelcraft/patterngen/anneal"
	"github.com/ravelcraft/patterngen/config"
	"github.com/ravelcraft/patterngen/curvature"
	"github.com/ravelcraft/patterngen/halfedge"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/metadata"
	"github.com/ravelcraft/patterngen/param"
	"github.com/ravelcraft/patterngen/pattern"
	"github.com/ravelcraft/patterngen/rowcompose"
	"github.com/ravelcraft/patterngen/rowmap"
	"github.com/ravelcraft/patterngen/seam"
	"github.com/ravelcraft/patterngen/stitchcount"
	"github.com/ravelcraft/patterngen/stitchgrid"
	"github.com/ravelcraft/patterngen/stitchkind"
)

// relaxIterations and relaxLambda are passed to stitchgrid.Relax; zero
// values make Relax fall back to its own documented defaults, which is
// all the mesh pipeline needs.
const (
	relaxIterations = 0
	relaxLambda     = 0
)

// RunMesh runs the complete mesh pipeline: MeshPreprocessor,
// HalfEdgeMesh construction, SeamPlacer and TopologicalCutter,
// Parameterizer, CurvatureAnalyzer, StitchGridGenerator (width scan,
// relax, and the curvature-classification supplement), StitchCountSolver,
// RowComposer with annealed placement, and MetadataEstimator
// (§4.4-§4.10, §4.12-§4.13). Preprocessing warnings are returned
// alongside the finished pattern; they never halt the pipeline (§7).
func RunMesh(ctx context.Context, input mesh.MeshData, cfg config.Config) (pattern.Pattern, []string, error) {
	if err := ctx.Err(); err != nil {
		return pattern.Pattern{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return pattern.Pattern{}, nil, err
	}

	pre, err := mesh.Preprocess(input, cfg.TargetSizeCM())
	if err != nil {
		return pattern.Pattern{}, nil, err
	}
	m := pre.Mesh

	hm, err := halfedge.Build(m)
	if err != nil {
		return pattern.Pattern{}, pre.Warnings, err
	}

	placed, err := seam.Place(m, hm)
	if err != nil {
		return pattern.Pattern{}, pre.Warnings, err
	}
	cut := m
	if !placed.AlreadyOpen {
		cut = seam.Cut(m, hm, placed.Path)
	}

	pinA, pinB := placed.Path[0], placed.Path[len(placed.Path)-1]
	flat, err := param.Parameterize(cut, pinA, pinB)
	if err != nil {
		return pattern.Pattern{}, pre.Warnings, err
	}
	curved := curvature.AnnotateMesh(flat)

	rowCount := rowmap.RowCount(cfg.TotalHeightCM, cfg.Gauge)
	widths := stitchgrid.RowWidths(curved, rowCount)
	relaxed := stitchgrid.Relax(widths, relaxIterations, relaxLambda)

	counts, err := stitchcount.Solve(relaxed, cfg.Gauge.StitchesPerCM)
	if err != nil {
		return pattern.Pattern{}, pre.Warnings, err
	}

	rows := make([]pattern.Row, rowCount)
	rowStats := make([]metadata.RowStat, rowCount)
	var prevPlacement anneal.RowPlacement

	for i := 0; i < rowCount; i++ {
		if err := ctx.Err(); err != nil {
			return pattern.Pattern{}, pre.Warnings, err
		}
		number := i + 1
		var kinds []stitchkind.Kind
		if i == 0 {
			kinds = rowcompose.MagicRing()
		} else {
			kinds, err = rowcompose.ComposeRow(counts[i-1], counts[i])
			if err != nil {
				return pattern.Pattern{}, pre.Warnings, err
			}
		}

		avgCurvature := stitchgrid.AverageCurvature(curved, rowCount, i)
		kinds = stitchgrid.ClassifyCurvature(avgCurvature, kinds)
		kinds, prevPlacement = rearrange(kinds, prevPlacement)

		row := pattern.BuildRow(number, kinds)
		attachMeshPositions(row.Instructions, curved, rowCount, i)
		rows[i] = row
		rowStats[i] = metadata.RowStat{StitchCount: row.TargetCount, CircumferenceCM: relaxed[i]}
	}

	dims := &metadata.Dimensions{HeightCM: cfg.TotalHeightCM}
	return pattern.Pattern{Rows: rows, Metadata: metadata.Estimate(rowStats, dims)}, pre.Warnings, nil
}

// attachMeshPositions fills each instruction's 3-D Position and diagram
// UV from StitchGridGenerator's band layout, in place. A count mismatch
// (an empty or malformed band) leaves the instructions' positions at
// their zero value rather than guessing.
func attachMeshPositions(instructions []pattern.StitchInstruction, m mesh.MeshData, rowCount, rowIndex int) {
	positions := stitchgrid.LayoutPositions(m, rowCount, rowIndex, len(instructions))
	uvs := stitchgrid.LayoutUV(m, rowCount, rowIndex, len(instructions))
	if len(positions) != len(instructions) || len(uvs) != len(instructions) {
		return
	}
	for i := range instructions {
		instructions[i].Position = positions[i]
		instructions[i].UV = uvs[i]
		instructions[i].HasUV = true
	}
}
