// Package bias implements adaptive and static bias potentials layered on
// top of a base [landscape.Potential].
//
// The production path is [Metadynamics]: a grid-backed accumulator that
// deposits a Gaussian kernel at the current position every n-th step. Query
// cost is O(1) regardless of how many kernels have been deposited, because
// the bias is rasterized onto [Grid] bins at deposition time.
//
// [AnalyticMetadynamics] keeps the full kernel list and re-sums it per
// query. It is algorithmically equivalent but its query cost grows with the
// deposit count; it exists as a reference implementation and test oracle.
//
// [Sum] is the non-adaptive sibling: a fixed read-through combination of two
// potentials, as used in umbrella sampling.
//
// All three satisfy the same Potential contract, so samplers are agnostic
// to which biasing strategy drives them.
package bias
