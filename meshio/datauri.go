package meshio

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ravelcraft/patterngen/patternerr"
)

// dataURIPrefix marks a base64-encoded data URI, the only embedded-data
// form §6 accepts; external URI references are rejected.
const dataURIPrefix = "data:"

// DecodeDataURI decodes a base64 data URI (e.g.
// "data:application/octet-stream;base64,...") into its raw bytes.
// Returns patternerr.ErrIO for any non-data URI (external references are
// rejected, §6) or malformed base64 payload.
func DecodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, fmt.Errorf("%w: external URI references are rejected: %q", patternerr.ErrIO, uri)
	}
	comma := strings.IndexByte(uri, ',')
	if comma < 0 || !strings.Contains(uri[:comma], "base64") {
		return nil, fmt.Errorf("%w: data URI is not base64-encoded", patternerr.ErrIO)
	}
	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: malformed base64 data URI: %v", patternerr.ErrIO, err)
	}
	return data, nil
}
