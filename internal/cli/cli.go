// Package cli implements the kmeans command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	arg "github.com/alexflint/go-arg"
	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
)

const program = "kmeans"

// Run parses argv, clusters the input and prints a summary to stdout.
// Logs go to stderr.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	args, p, err := parse(argv)
	if errors.Is(err, arg.ErrHelp) {
		p.WriteHelp(stdout)
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := newLogger(&args, stderr)
	if err != nil {
		return err
	}

	points, err := load(ctx, &args)
	if err != nil {
		return err
	}

	metrics := &kmeans.BasicMetricsCollector{}
	opts, err := clusterOptions(&args, logger, metrics)
	if err != nil {
		return err
	}

	res, err := kmeans.Cluster(ctx, points, args.K, opts...)
	if err != nil {
		return err
	}

	stats := metrics.GetStats()
	logger.DebugContext(ctx, "metrics",
		"seed_ns", stats.SeedAvgNanos,
		"iteration_ns", stats.IterationAvgNanos,
		"iterations", stats.IterationCount,
	)

	if args.Output != "" {
		if err := write(ctx, args.Output, points, res); err != nil {
			return err
		}
		logger.InfoContext(ctx, "report written", "output", args.Output)
	}

	printSummary(stdout, points, res)
	return nil
}

// parse applies defaults, then the config file, then flags.
func parse(argv []string) (Args, *arg.Parser, error) {
	args := defaultArgs()
	p, err := arg.NewParser(arg.Config{Program: program}, &args)
	if err != nil {
		return args, nil, err
	}
	if err := p.Parse(argv); err != nil {
		return args, p, err
	}

	if args.Config != "" {
		layered := defaultArgs()
		if err := loadConfig(args.Config, &layered); err != nil {
			return args, p, err
		}
		if p, err = arg.NewParser(arg.Config{Program: program}, &layered); err != nil {
			return args, nil, err
		}
		if err := p.Parse(argv); err != nil {
			return args, p, err
		}
		args = layered
	}

	return args, p, args.Validate()
}

func newLogger(args *Args, w io.Writer) (*kmeans.Logger, error) {
	level, err := args.level()
	if err != nil {
		return nil, err
	}

	hopts := &slog.HandlerOptions{Level: level}
	if args.LogFormat == "json" {
		return kmeans.NewLogger(slog.NewJSONHandler(w, hopts)), nil
	}
	return kmeans.NewLogger(slog.NewTextHandler(w, hopts)), nil
}

func clusterOptions(args *Args, logger *kmeans.Logger, mc kmeans.MetricsCollector) ([]kmeans.Option, error) {
	strategy, err := kmeans.ParseStrategy(args.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []kmeans.Option{
		kmeans.WithStrategy(strategy),
		kmeans.WithMaxIterations(args.MaxIterations),
		kmeans.WithTolerance(args.Tolerance),
		kmeans.WithWorkers(args.Workers),
		kmeans.WithLogger(logger),
		kmeans.WithMetricsCollector(mc),
	}
	if args.First >= 0 {
		opts = append(opts, kmeans.WithFirstCentroid(args.First))
	}
	if args.Seed != nil {
		opts = append(opts, kmeans.WithSeed(*args.Seed))
	}
	return opts, nil
}

func load(ctx context.Context, args *Args) ([]kmeans.Point, error) {
	if args.Demo {
		return dataset.Scenario(), nil
	}

	loc, err := parseLocation(args.Input)
	if err != nil {
		return nil, err
	}
	store, err := loc.open(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Load(ctx, store, loc.Name)
}

func write(ctx context.Context, output string, points []kmeans.Point, res *kmeans.Result) error {
	loc, err := parseLocation(output)
	if err != nil {
		return err
	}
	store, err := loc.open(ctx)
	if err != nil {
		return err
	}
	return dataset.Write(ctx, store, loc.Name, points, res)
}

func printSummary(w io.Writer, points []kmeans.Point, res *kmeans.Result) {
	fmt.Fprintf(w, "k=%d iterations=%d inertia=%.6f\n", res.K(), res.Iterations, res.Inertia)
	for c, v := range res.Centroids {
		fmt.Fprintf(w, "%d (%.6f, %.6f)", c, v.X, v.Y)
		for _, i := range res.Group(c) {
			label := points[i].Label
			if label == "" {
				label = fmt.Sprint(i)
			}
			fmt.Fprint(w, " ", label)
		}
		fmt.Fprintln(w)
	}
}
