package svgrender_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/pattern"
	"github.com/ravelcraft/patterngen/stitchkind"
	"github.com/ravelcraft/patterngen/svgrender"
)

func TestRender_DefaultCanvasAndColors(t *testing.T) {
	p := pattern.Pattern{
		Rows: []pattern.Row{
			pattern.BuildRow(1, []stitchkind.Kind{stitchkind.Single, stitchkind.Single}),
		},
	}
	out, err := svgrender.Render(p, svgrender.Options{})
	require.NoError(t, err)

	s := string(out)
	require.True(t, strings.Contains(s, `width="800"`))
	require.True(t, strings.Contains(s, `height="600"`))
	require.True(t, strings.Contains(s, "#4A90E2"))
}

func TestRender_OmitsUndocumentedColorKind(t *testing.T) {
	p := pattern.Pattern{
		Rows: []pattern.Row{
			pattern.BuildRow(2, []stitchkind.Kind{stitchkind.InvisibleDecrease}),
		},
	}
	out, err := svgrender.Render(p, svgrender.Options{})
	require.NoError(t, err)
	require.False(t, strings.Contains(string(out), "<circle"))
}

func TestRender_CustomCanvasSize(t *testing.T) {
	p := pattern.Pattern{Rows: []pattern.Row{pattern.BuildRow(1, []stitchkind.Kind{stitchkind.Single})}}
	out, err := svgrender.Render(p, svgrender.Options{Width: 400, Height: 300})
	require.NoError(t, err)
	require.True(t, strings.Contains(string(out), `width="400"`))
}
