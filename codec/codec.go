// Package codec centralizes the encodings used for point sets and reports.
//
// A codec is picked by name ("json", "csv") or by file extension.
package codec

import (
	"fmt"
	"path"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ErrUnknownCodec is returned when no codec matches a name or extension.
var ErrUnknownCodec = fmt.Errorf("codec: unknown codec")

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch strings.ToLower(name) {
	case "json":
		return JSON{}, true
	case "csv":
		return CSV{}, true
	default:
		return nil, false
	}
}

// ForFile returns the codec matching the extension of filename.
func ForFile(filename string) (Codec, error) {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if c, ok := ByName(ext); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, filename)
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Default is the codec used when none is configured.
var Default Codec = JSON{}
