package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, argv ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), argv, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw     string
		want    location
		wantErr bool
	}{
		{raw: "points.csv", want: location{Dir: ".", Name: "points.csv"}},
		{raw: "/data/in/points.csv.zst", want: location{Dir: "/data/in", Name: "points.csv.zst"}},
		{raw: "s3://bucket/points.json", want: location{Scheme: "s3", Bucket: "bucket", Name: "points.json"}},
		{raw: "s3://bucket/runs/1/report.json", want: location{Scheme: "s3", Bucket: "bucket", Dir: "runs/1/", Name: "report.json"}},
		{raw: "minio://localhost:9000/bucket/in/points.csv", want: location{Scheme: "minio", Host: "localhost:9000", Bucket: "bucket", Dir: "in/", Name: "points.csv"}},
		{raw: "s3://bucket", wantErr: true},
		{raw: "s3:///key.csv", wantErr: true},
		{raw: "minio://localhost:9000/bucket", wantErr: true},
		{raw: "gs://bucket/key.csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseLocation(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Help(t *testing.T) {
	stdout, _, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage: kmeans")
	assert.Contains(t, stdout, "--max-iterations")
}

func TestRun_Demo(t *testing.T) {
	stdout, _, err := run(t, "--demo", "-k", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "k=1 iterations=2")
	assert.Contains(t, stdout, "0 (-2.452452, -1.785628) a b c d e")
}

func TestRun_DemoFirstCentroid(t *testing.T) {
	stdout, _, err := run(t, "--demo", "--first", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, stdout, "k=3 iterations=3")
	assert.Contains(t, stdout, "1 (-3.453687, 3.424321) e\n")
}

func TestRun_DemoSingletons(t *testing.T) {
	stdout, _, err := run(t, "--demo", "-k", "5", "--strategy", "uniform", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "k=5 iterations=1 inertia=0.000000")
}

func TestRun_Errors(t *testing.T) {
	t.Run("NoInput", func(t *testing.T) {
		_, _, err := run(t)
		assert.Error(t, err)
	})

	t.Run("InvalidK", func(t *testing.T) {
		_, _, err := run(t, "--demo", "-k", "6")
		assert.ErrorIs(t, err, kmeans.ErrInvalidK)
	})

	t.Run("UnknownStrategy", func(t *testing.T) {
		_, _, err := run(t, "--demo", "--strategy", "forgy")
		assert.ErrorIs(t, err, kmeans.ErrInvalidOption)
	})

	t.Run("UnknownLogFormat", func(t *testing.T) {
		_, _, err := run(t, "--demo", "--log-format", "xml")
		assert.Error(t, err)
	})

	t.Run("MissingInput", func(t *testing.T) {
		_, _, err := run(t, filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "points.csv.gz")
	output := filepath.Join(dir, "out", "report.json")

	store := blobstore.NewLocalStore(dir)
	require.NoError(t, dataset.Save(context.Background(), store, "points.csv.gz", dataset.Scenario()))

	stdout, stderr, err := run(t, input, "-o", output, "-k", "2", "--seed", "1", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "k=2")
	assert.Contains(t, stderr, `"msg":"report written"`)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var report dataset.Report
	require.NoError(t, codec.JSON{}.Unmarshal(data, &report))
	assert.Equal(t, 2, report.K)
	assert.Len(t, report.Points, 5)
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "kmeans.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("demo: true\nk: 1\nlog_level: warn\n"), 0o644))

	t.Run("FromFile", func(t *testing.T) {
		stdout, _, err := run(t, "-c", cfg)
		require.NoError(t, err)
		assert.Contains(t, stdout, "k=1")
	})

	t.Run("FlagWins", func(t *testing.T) {
		stdout, _, err := run(t, "-c", cfg, "-k", "5")
		require.NoError(t, err)
		assert.Contains(t, stdout, "k=5")
	})

	t.Run("Missing", func(t *testing.T) {
		_, _, err := run(t, "-c", filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestArgs_Validate(t *testing.T) {
	a := defaultArgs()
	a.Demo = true
	require.NoError(t, a.Validate())

	a.Input = "points.csv"
	assert.Error(t, a.Validate())

	a = defaultArgs()
	a.Input = "points.csv"
	a.LogLevel = "loud"
	assert.Error(t, a.Validate())
}
