package dataset

import (
	"context"
	"fmt"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/codec"
)

// Format describes how a blob name maps to a codec and compression.
type Format struct {
	Codec       codec.Codec
	Compression Compression
}

// FormatFor derives the format from a blob name such as "points.csv.zst".
func FormatFor(name string) (Format, error) {
	c, base := CompressionFor(name)
	cd, err := codec.ForFile(base)
	if err != nil {
		return Format{}, err
	}
	return Format{Codec: cd, Compression: c}, nil
}

// Decode decodes a point set from raw blob bytes.
func (f Format) Decode(data []byte) ([]kmeans.Point, error) {
	raw, err := decompress(f.Compression, data)
	if err != nil {
		return nil, fmt.Errorf("dataset: decompress %s: %w", f.Compression, err)
	}

	var points []kmeans.Point
	if err := f.Codec.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", f.Codec.Name(), err)
	}
	return points, nil
}

// Encode encodes v and applies the format's compression. CSV requires v to
// be a pointer to a slice of tagged structs.
func (f Format) Encode(v any) ([]byte, error) {
	raw, err := f.Codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("dataset: encode %s: %w", f.Codec.Name(), err)
	}
	return compress(f.Compression, raw)
}

// Load reads the point set stored under name.
func Load(ctx context.Context, store blobstore.Store, name string) ([]kmeans.Point, error) {
	f, err := FormatFor(name)
	if err != nil {
		return nil, err
	}

	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", name, err)
	}
	return f.Decode(data)
}

// Save stores points under name.
func Save(ctx context.Context, store blobstore.Store, name string, points []kmeans.Point) error {
	f, err := FormatFor(name)
	if err != nil {
		return err
	}

	data, err := f.Encode(&points)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}

// Write stores a report of res under name. JSON blobs hold the full Report,
// CSV blobs hold one Row per point.
func Write(ctx context.Context, store blobstore.Store, name string, points []kmeans.Point, res *kmeans.Result) error {
	f, err := FormatFor(name)
	if err != nil {
		return err
	}

	report := NewReport(points, res)

	var v any = report
	if f.Codec.Name() == "csv" {
		v = &report.Points
	}

	data, err := f.Encode(v)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}

// Scenario returns the five-point reference data set a..e.
func Scenario() []kmeans.Point {
	return []kmeans.Point{
		{Label: "a", X: -5.379713, Y: -3.362104},
		{Label: "b", X: -3.487105, Y: -1.724432},
		{Label: "c", X: 0.450614, Y: -3.302219},
		{Label: "d", X: -0.392370, Y: -3.963704},
		{Label: "e", X: -3.453687, Y: 3.424321},
	}
}
