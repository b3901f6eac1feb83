// Package minio provides a blobstore.Store backed by the MinIO client.
//
// MinIO is S3-compatible, so the same store works against Ceph, SeaweedFS,
// Garage and friends without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "datasets/")
//	points, err := dataset.Load(ctx, store, "points.csv.zst")
package minio
