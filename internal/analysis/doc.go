// Package analysis post-processes sampling runs: free-energy profiles from
// an accumulated bias grid, trajectory histograms, and well occupancy.
package analysis
