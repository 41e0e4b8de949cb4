// Package pipeline wires every other package into the two end-to-end
// entry points a caller actually invokes: RunProfile for a 2-D profile
// curve swept into a round or flat piece, and RunMesh for an arbitrary
// 3-D mesh flattened and gridded into stitches. Neither entry point
// halts on a recoverable condition; both return the first tagged error
// (patternerr) a component reports, unwrapped, so callers can switch on
// errors.Is regardless of which stage failed (§7).
package pipeline
