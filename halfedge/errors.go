package halfedge

import (
	"fmt"

	"github.com/ravelcraft/patterngen/patternerr"
)

// ErrEmptyMesh indicates the input mesh has no faces to build edges from.
// It wraps patternerr.ErrInvalidConfiguration.
var ErrEmptyMesh = fmt.Errorf("halfedge: mesh has no faces: %w", patternerr.ErrInvalidConfiguration)
