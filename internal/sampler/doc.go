// Package sampler provides the steppers that move a walker across a
// [landscape.Potential].
//
//   - [Langevin]: overdamped Langevin dynamics (Euler-Maruyama scheme)
//   - [Metropolis]: Metropolis Monte Carlo displacement moves
//
// Samplers own their random source, so runs are reproducible from a seed.
// They read the potential through Energy/Gradient only and never mutate it;
// adaptive biasing is the simulation loop's concern.
package sampler
