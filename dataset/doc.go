// Package dataset loads point sets from a blobstore.Store and writes
// clustering reports back to one.
//
// The encoding follows the blob name: "points.csv", "points.json",
// optionally with a ".zst", ".lz4" or ".gz" suffix for compressed blobs.
//
//	store := blobstore.NewLocalStore("data")
//	points, err := dataset.Load(ctx, store, "points.csv.zst")
//	if err != nil {
//	    return err
//	}
//	res, err := kmeans.Cluster(ctx, points, 3)
//	if err != nil {
//	    return err
//	}
//	err = dataset.Write(ctx, store, "report.json", points, res)
package dataset
