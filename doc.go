// Package kmeans clusters labeled planar points with Lloyd's k-means
// algorithm and k-means++ seeding.
//
// # Quick Start
//
//	points := []kmeans.Point{
//	    {Label: "a", X: -5.38, Y: -3.36},
//	    {Label: "b", X: -3.49, Y: -1.72},
//	    // ...
//	}
//
//	res, err := kmeans.Cluster(ctx, points, 3, kmeans.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	for c := range res.K() {
//	    fmt.Println(res.Centroids[c], res.Group(c))
//	}
//
// # Pipeline
//
// A run is seeding followed by iteration, and both halves are exposed:
//
//	seeds, _ := kmeans.SeedCentroids(points, 3, kmeans.WithFirstCentroid(3))
//	res, _ := kmeans.Refine(ctx, points, seeds)
//
// Seeding draws from an injected rng.Source. StrategyUniform picks k
// distinct points; StrategyPlusPlus (default) picks every further centroid
// with probability proportional to its distance to the nearest centroid
// chosen so far.
//
// The iteration assigns every point to its nearest centroid (ties go to the
// lowest centroid index), replaces each centroid by the mean of its group
// and stops once the summed centroid movement is zero, or at most the value
// given to WithTolerance.
//
// # Errors
//
// A run either converges or fails as a whole:
//
//   - InvalidKError: k < 1 or k > len(points)
//   - DegenerateSeedingWeightsError: k-means++ ran out of distinct points
//   - EmptyCentroidGroupError: a centroid lost all of its points
//   - NotConvergedError: the WithMaxIterations cap was reached
//
// Each type matches its sentinel with errors.Is (ErrInvalidK,
// ErrDegenerateSeedingWeights, ErrEmptyCentroidGroup, ErrNotConverged).
package kmeans
