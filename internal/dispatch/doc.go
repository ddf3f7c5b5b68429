// Package dispatch implements the solution sequence that turns one BLAS call into a built,
// cached kernel and a launch: validate, identify the device, rank candidate patterns, decompose
// the problem, find-or-build the kernel, bind arguments, and launch (spec §4.7, component C10).
package dispatch
