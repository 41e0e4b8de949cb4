package pattern

import (
	"math"

	"github.com/ravelcraft/patterngen/stitchkind"
)

// magicRingSize is the fixed row-1 stitch count (§3, §4.11).
const magicRingSize = 6

// BuildRow assigns angular positions to a composed stitch-kind sequence
// and numbers the resulting instructions, for the profile path's
// circular rows. Angle of instruction i in a row of length L is 2πi/L
// (§4.11); row 1 (the magic ring) uses L=magicRingSize regardless of the
// sequence's own length, per the magic-ring row's fixed angle table.
func BuildRow(number int, kinds []stitchkind.Kind) Row {
	length := len(kinds)
	if number == 1 {
		length = magicRingSize
	}

	instructions := make([]StitchInstruction, len(kinds))
	for i, k := range kinds {
		instructions[i] = StitchInstruction{
			Kind:          k,
			AngleRadians:  2 * math.Pi * float64(i) / float64(length),
			SequenceIndex: i,
		}
	}

	target := 0
	for _, instr := range instructions {
		target += instr.Kind.Produces()
	}

	return Row{Number: number, TargetCount: target, Instructions: instructions}
}
