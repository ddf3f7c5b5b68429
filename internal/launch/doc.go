// Package launch is a pure translator from a (kernel, arguments, geometry) descriptor to a
// sequence of compute-API calls, with precise per-phase error attribution (spec §4.8,
// component C11). It knows nothing about BLAS semantics.
package launch
