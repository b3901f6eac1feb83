// Command kmeans clusters 2-D points read from a local file, S3 or MinIO.
//
//	kmeans -k 3 --seed 42 points.csv
//	kmeans -k 3 -o s3://bucket/runs/report.json.zst s3://bucket/points.csv
//	kmeans --demo --log-level debug
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/kmeans/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "kmeans:", err)
		stop()
		os.Exit(1)
	}
}
