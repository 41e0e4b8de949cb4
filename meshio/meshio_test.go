package meshio_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/meshio"
	"github.com/ravelcraft/patterngen/patternerr"
)

func TestDecodeDataURI_RoundTrips(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(payload)

	out, err := meshio.DecodeDataURI(uri)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestDecodeDataURI_RejectsExternalURI(t *testing.T) {
	_, err := meshio.DecodeDataURI("https://example.com/model.bin")
	require.ErrorIs(t, err, patternerr.ErrIO)
}

func TestFromPrimitive_NonIndexedTriangulatesConsecutiveTriples(t *testing.T) {
	p := meshio.Primitive{
		Positions: []geom.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
	}
	m, err := meshio.FromPrimitive(p, meshio.IdentityMat4)
	require.NoError(t, err)
	require.Len(t, m.Faces, 2)
	require.Equal(t, geom.Vec3{X: 0, Y: 1, Z: 0}, m.Vertices[0].Normal)
}

func TestFromPrimitive_AppliesNodeTransform(t *testing.T) {
	translate := meshio.IdentityMat4
	translate[12] = 5 // translate X by 5 (column-major offset column)

	p := meshio.Primitive{
		Positions: []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
	}
	m, err := meshio.FromPrimitive(p, translate)
	require.NoError(t, err)
	require.InDelta(t, 5.0, m.Vertices[0].Position.X, 1e-9)
}
