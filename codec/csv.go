package codec

import (
	"bytes"

	"github.com/gocarina/gocsv"
)

// CSV is a CSV codec backed by github.com/gocarina/gocsv.
//
// Values must be pointers to slices of structs carrying `csv` tags. The
// first row is the header.
type CSV struct{}

// Marshal encodes the slice v to CSV.
func (CSV) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gocsv.Marshal(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes CSV data into the slice pointed to by v.
func (CSV) Unmarshal(data []byte, v any) error {
	return gocsv.Unmarshal(bytes.NewReader(data), v)
}

// Name returns the unique name of the codec ("csv").
func (CSV) Name() string { return "csv" }
