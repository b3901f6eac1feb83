// Package seed chooses the initial centroids of a k-means run.
//
// Two strategies are provided:
//
//   - Uniform: k points drawn without replacement.
//   - PlusPlus: k-means++ roulette-wheel sampling, where each point is picked
//     with probability proportional to its distance to the nearest
//     centroid chosen so far.
//
// Both strategies draw exclusively from an injected rng.Source, so a fixed
// seed reproduces a fixed centroid sequence.
package seed
