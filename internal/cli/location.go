package cli

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/kmeans/blobstore"
	minioblob "github.com/hupe1980/kmeans/blobstore/minio"
	s3blob "github.com/hupe1980/kmeans/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// location is a parsed input or output argument.
type location struct {
	Scheme string // "", "s3" or "minio"
	Host   string // minio endpoint
	Bucket string
	Dir    string // directory or key prefix
	Name   string // blob name inside Dir
}

func parseLocation(raw string) (location, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return location{Dir: filepath.Dir(raw), Name: filepath.Base(raw)}, nil
	}

	parts := strings.Split(rest, "/")
	var loc location
	switch scheme {
	case "s3":
		if len(parts) < 2 {
			return location{}, fmt.Errorf("s3 location %q: want s3://bucket/key", raw)
		}
		loc = location{Scheme: scheme, Bucket: parts[0]}
		parts = parts[1:]
	case "minio":
		if len(parts) < 3 {
			return location{}, fmt.Errorf("minio location %q: want minio://host/bucket/key", raw)
		}
		loc = location{Scheme: scheme, Host: parts[0], Bucket: parts[1]}
		parts = parts[2:]
	default:
		return location{}, fmt.Errorf("unsupported location scheme %q", scheme)
	}

	key := path.Join(parts...)
	if key == "" || key == "." || loc.Bucket == "" {
		return location{}, fmt.Errorf("location %q: missing bucket or key", raw)
	}
	loc.Dir, loc.Name = path.Split(key)
	return loc, nil
}

// open builds the store a location lives in.
func (l location) open(ctx context.Context) (blobstore.Store, error) {
	switch l.Scheme {
	case "s3":
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return s3blob.NewStore(s3.NewFromConfig(cfg), l.Bucket, l.Dir), nil
	case "minio":
		client, err := minio.New(l.Host, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: os.Getenv("MINIO_SECURE") == "true",
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return minioblob.NewStore(client, l.Bucket, l.Dir), nil
	default:
		return blobstore.NewLocalStore(l.Dir), nil
	}
}
