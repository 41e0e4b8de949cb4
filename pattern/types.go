package pattern

import (
	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/metadata"
	"github.com/ravelcraft/patterngen/stitchkind"
)

// StitchInstruction is a single worked stitch: its kind, its position
// (angular, for the profile path's circular rows; 3-D, for the mesh
// path), and its 0-based index within the row (§3).
type StitchInstruction struct {
	Kind          stitchkind.Kind
	AngleRadians  float64
	Position      geom.Vec3    // 3-D position, populated by the mesh path
	UV            geom.Point2D // 2-D diagram position, populated by the mesh path
	HasUV         bool         // true when UV was populated (mesh path only)
	SequenceIndex int
}

// Row is a single round of the finished pattern: its 1-based number, its
// target stitch count (production total), and the ordered instructions
// that produce it (§3).
type Row struct {
	Number       int
	TargetCount  int
	Instructions []StitchInstruction
}

// StitchGroup is a run-length-encoded span of consecutive same-kind
// instructions within a row, the unit the textual renderer emits (§6).
type StitchGroup struct {
	Kind  stitchkind.Kind
	Count int
}

// Pattern is the finished, ordered sequence of rows plus summary
// metadata (§3).
type Pattern struct {
	Rows     []Row
	Metadata metadata.Metadata
}
