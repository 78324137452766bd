// Package landscape provides analytic one-dimensional energy surfaces.
//
// Each surface implements the [Potential] interface, exposing a closed-form
// energy function and its analytic derivative:
//
//   - [Harmonic]: quadratic well
//   - [DoubleWell]: bistable well with a central barrier
//   - [Gaussian]: localized bump, also the metadynamics deposition kernel
//   - [Wave]: periodic cosine surface
//
// Gradients are hand-derived once; nothing re-differentiates at query time,
// so the per-step cost of a sampler driving these surfaces is constant.
//
// Most surfaces also implement [Configurable] for runtime parameter
// adjustment from the live view.
package landscape
