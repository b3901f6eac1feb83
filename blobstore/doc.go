// Package blobstore provides the storage abstraction used to read point
// sets and write clustering reports.
//
// A blob is an immutable, whole-object value addressed by name:
//
//	type Store interface {
//	    Open(ctx, name) (io.ReadCloser, error)
//	    Put(ctx, name, data) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem rooted at a directory
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 (aws-sdk-go-v2)
//   - minio.Store: MinIO and other S3-compatible storage
//
// Missing blobs satisfy errors.Is(err, ErrNotFound).
package blobstore
