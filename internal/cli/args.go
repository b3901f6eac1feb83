package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Args are the command line arguments of the kmeans command. Every field
// can also be set from the YAML file named by --config; flags win.
type Args struct {
	Input         string  `arg:"positional" help:"points to cluster: path, s3://bucket/key or minio://host/bucket/key" yaml:"input"`
	Output        string  `arg:"-o" help:"write a report (.json or .csv, optionally .zst, .lz4 or .gz)" yaml:"output"`
	Config        string  `arg:"-c" help:"YAML file with default arguments" yaml:"-"`
	K             int     `arg:"-k" help:"number of centroids" yaml:"k"`
	Strategy      string  `help:"seeding strategy: kmeans++ or uniform" yaml:"strategy"`
	First         int     `help:"index of the first k-means++ centroid, omit to draw it" yaml:"first"`
	Seed          *int64  `help:"random seed, drawn from the clock when unset" yaml:"seed"`
	MaxIterations int     `arg:"--max-iterations" help:"iteration cap, 0 for none" yaml:"max_iterations"`
	Tolerance     float64 `help:"stop once no centroid moves farther than this" yaml:"tolerance"`
	Workers       int     `arg:"-w" help:"parallel workers for the assignment step" yaml:"workers"`
	LogLevel      string  `arg:"--log-level" help:"debug, info, warn or error" yaml:"log_level"`
	LogFormat     string  `arg:"--log-format" help:"text or json" yaml:"log_format"`
	Demo          bool    `help:"cluster the built-in five point data set" yaml:"demo"`
}

func defaultArgs() Args {
	return Args{
		K:             3,
		Strategy:      "kmeans++",
		First:         -1,
		MaxIterations: 1000,
		Workers:       1,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Description is shown by --help.
func (Args) Description() string {
	return "kmeans partitions 2-D points into k groups with k-means++ or uniform seeding."
}

// Validate checks argument combinations the parser cannot express.
func (a *Args) Validate() error {
	if a.Input == "" && !a.Demo {
		return errors.New("an input location or --demo is required")
	}
	if a.Input != "" && a.Demo {
		return errors.New("--demo does not take an input location")
	}
	if _, err := a.level(); err != nil {
		return err
	}
	switch a.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", a.LogFormat)
	}
	return nil
}

func (a *Args) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(a.LogLevel))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", a.LogLevel)
	}
	return l, nil
}

// loadConfig overlays the YAML file at path onto a.
func loadConfig(path string, a *Args) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
