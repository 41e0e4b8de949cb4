package svgrender

import (
	"encoding/xml"
	"math"
	"strconv"

	"github.com/ravelcraft/patterngen/pattern"
)

// defaultWidth, defaultHeight are the canvas dimensions used when Options
// leaves them zero (§6).
const (
	defaultWidth  = 800
	defaultHeight = 600
)

// stitchRadius is the filled-circle radius for every stitch marker (§6).
const stitchRadius = 3

// Options configures the rendered canvas.
type Options struct {
	Width, Height int
}

// Render builds the SVG diagram for p: one filled circle per stitch
// instruction at (ux*W, uy*H), colored by its kind (§6). Mesh-path
// instructions use their own UV field for (ux,uy); profile-path
// instructions (HasUV false) project their angular position onto a
// unit circle, with radial distance from center scaled by the row's
// position in the pattern so earlier rows sit nearer the center.
// Instructions whose kind has no documented SVGColor (InvisibleDecrease)
// are omitted rather than drawn with an invented color.
func Render(p pattern.Pattern, opts Options) ([]byte, error) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}

	doc := svgDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   w,
		Height:  h,
		ViewBox: svgViewBox(w, h),
	}

	rowCount := len(p.Rows)
	for _, row := range p.Rows {
		for _, instr := range row.Instructions {
			color, ok := instr.Kind.SVGColor()
			if !ok {
				continue
			}
			ux, uy := stitchUV(instr, row.Number, rowCount)
			doc.Circles = append(doc.Circles, svgCircle{
				Cx:   ux * float64(w),
				Cy:   uy * float64(h),
				R:    stitchRadius,
				Fill: color,
			})
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// stitchUV returns an instruction's normalized (ux,uy) diagram position.
func stitchUV(instr pattern.StitchInstruction, rowNumber, rowCount int) (float64, float64) {
	if instr.HasUV {
		return instr.UV.X, instr.UV.Y
	}
	radial := 0.5
	if rowCount > 0 {
		radial = 0.5 * float64(rowNumber) / float64(rowCount)
	}
	ux := 0.5 + radial*math.Cos(instr.AngleRadians)
	uy := 0.5 + radial*math.Sin(instr.AngleRadians)
	return ux, uy
}

func svgViewBox(w, h int) string {
	return "0 0 " + strconv.Itoa(w) + " " + strconv.Itoa(h)
}
