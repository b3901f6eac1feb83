package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCompressionFor(t *testing.T) {
	tests := []struct {
		name string
		c    Compression
		base string
	}{
		{"points.csv", CompressionNone, "points.csv"},
		{"points.csv.zst", CompressionZSTD, "points.csv"},
		{"points.json.lz4", CompressionLZ4, "points.json"},
		{"dir/points.CSV.GZ", CompressionGzip, "dir/points.CSV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, base := CompressionFor(tt.name)
			assert.Equal(t, tt.c, c)
			assert.Equal(t, tt.base, base)
		})
	}
}

func TestCompression_RoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("label,x,y\na,-5.379713,-3.362104\n", 64))

	for _, c := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4, CompressionGzip} {
		t.Run(c.String(), func(t *testing.T) {
			packed, err := compress(c, data)
			require.NoError(t, err)
			if c != CompressionNone {
				assert.Less(t, len(packed), len(data))
			}

			unpacked, err := decompress(c, packed)
			require.NoError(t, err)
			assert.Equal(t, data, unpacked)
		})
	}
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("points.json.zst")
	require.NoError(t, err)
	assert.Equal(t, "json", f.Codec.Name())
	assert.Equal(t, CompressionZSTD, f.Compression)

	_, err = FormatFor("points.txt.gz")
	assert.ErrorIs(t, err, codec.ErrUnknownCodec)
}

func TestLoad_CSV(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	csv := "label,x,y\na,-5.379713,-3.362104\nb,-3.487105,-1.724432\n"
	require.NoError(t, store.Put(ctx, "points.csv", []byte(csv)))

	points, err := Load(ctx, store, "points.csv")
	require.NoError(t, err)
	assert.Equal(t, Scenario()[:2], points)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "missing.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestLoad_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "points.json.zst", []byte("not zstd")))

	_, err := Load(ctx, store, "points.json.zst")
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	for _, name := range []string{
		"points.csv", "points.csv.zst", "points.csv.lz4", "points.csv.gz",
		"points.json", "points.json.zst", "points.json.lz4", "points.json.gz",
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Save(ctx, store, name, Scenario()))

			points, err := Load(ctx, store, name)
			require.NoError(t, err)
			assert.Equal(t, Scenario(), points)
		})
	}
}

func scenarioResult(t *testing.T) ([]kmeans.Point, *kmeans.Result) {
	t.Helper()

	points := Scenario()
	seeds := []r2.Vec{points[3].Vec(), points[4].Vec(), points[0].Vec()}

	res, err := kmeans.Refine(context.Background(), points, seeds)
	require.NoError(t, err)
	return points, res
}

func TestNewReport(t *testing.T) {
	points, res := scenarioResult(t)

	r := NewReport(points, res)
	assert.Equal(t, 3, r.K)
	assert.Equal(t, 2, r.Iterations)
	require.Len(t, r.Centroids, 3)
	assert.Equal(t, []string{"c", "d"}, r.Centroids[0].Members)
	assert.Equal(t, []string{"e"}, r.Centroids[1].Members)
	assert.Equal(t, []string{"a", "b"}, r.Centroids[2].Members)
	assert.Equal(t, points[3].X, r.Centroids[0].SeedX)

	require.Len(t, r.Points, 5)
	assert.Equal(t, 2, r.Points[0].Cluster)
	assert.InDelta(t, -4.433409, r.Points[1].CentroidX, 1e-6)
}

func TestWrite(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	points, res := scenarioResult(t)

	t.Run("JSON", func(t *testing.T) {
		require.NoError(t, Write(ctx, store, "report.json.gz", points, res))

		data, err := blobstore.ReadAll(ctx, store, "report.json.gz")
		require.NoError(t, err)
		raw, err := decompress(CompressionGzip, data)
		require.NoError(t, err)

		var r Report
		require.NoError(t, codec.JSON{}.Unmarshal(raw, &r))
		assert.Equal(t, 3, r.K)
		assert.Equal(t, []string{"e"}, r.Centroids[1].Members)
	})

	t.Run("CSV", func(t *testing.T) {
		require.NoError(t, Write(ctx, store, "report.csv", points, res))

		data, err := blobstore.ReadAll(ctx, store, "report.csv")
		require.NoError(t, err)

		var rows []Row
		require.NoError(t, codec.CSV{}.Unmarshal(data, &rows))
		require.Len(t, rows, 5)
		assert.Equal(t, "e", rows[4].Label)
		assert.Equal(t, 1, rows[4].Cluster)
	})
}
