// Package pattern defines the finished-pattern data model (Row, Pattern,
// StitchInstruction, StitchGroup) and its textual rendering: per-row
// run-length-encoded instruction groups of the form "N <abbr>", joined
// by commas and followed by "(N)" for the row's total stitch count
// (§6).
package pattern
