// Package svgrender builds the optional SVG stitch diagram (§6): a
// rectangular canvas of filled circles, one per stitch, colored by
// StitchKind. Elements are constructed with encoding/xml rather than
// manual string concatenation, since the teacher never serializes to a
// wire format and encoding/xml is the standard way to get deterministic,
// testable markup for free.
package svgrender
