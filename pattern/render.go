package pattern

import (
	"fmt"
	"strings"
)

// Groups run-length-encodes r's instructions into consecutive same-kind
// spans, the unit the textual renderer joins (§6).
func (r Row) Groups() []StitchGroup {
	var groups []StitchGroup
	for _, instr := range r.Instructions {
		if n := len(groups); n > 0 && groups[n-1].Kind == instr.Kind {
			groups[n-1].Count++
			continue
		}
		groups = append(groups, StitchGroup{Kind: instr.Kind, Count: 1})
	}
	return groups
}

// String renders r as comma-joined "N <abbr>" fragments followed by
// "(N)" for the row's total stitch count, bit-exact with §6.
func (r Row) String() string {
	groups := r.Groups()
	fragments := make([]string, len(groups))
	for i, g := range groups {
		fragments[i] = fmt.Sprintf("%d %s", g.Count, g.Kind.Abbrev())
	}
	return fmt.Sprintf("%s (%d)", strings.Join(fragments, ", "), r.TargetCount)
}

// String renders the full pattern as one row per line, numbered,
// followed by a summary line of its metadata.
func (p Pattern) String() string {
	var b strings.Builder
	for _, row := range p.Rows {
		fmt.Fprintf(&b, "Row %d: %s\n", row.Number, row.String())
	}
	fmt.Fprintf(&b, "Stitches: %d, Rows: %d, Time: %s, Yarn: %s\n",
		p.Metadata.StitchCount, p.Metadata.RowCount, p.Metadata.EstimatedTime, p.Metadata.YarnEstimate)
	return b.String()
}
