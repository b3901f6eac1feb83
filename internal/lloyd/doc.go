// Package lloyd implements the assign/update iteration of k-means.
//
// Each pass assigns every point to its nearest centroid, recomputes every
// centroid as the mean of its group and sums how far the centroids moved.
// The run converges when that movement is at most Config.Tolerance; the
// default tolerance of zero requires the centroids to stop moving exactly.
//
// Phases never edit their inputs: Assign returns a fresh Assignment and
// Update returns a fresh centroid slice.
package lloyd
