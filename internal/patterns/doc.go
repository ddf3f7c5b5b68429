// Package patterns holds the concrete pattern.Pattern implementations registered against a
// library instance's pattern.Registry: one strategy per BLAS function, grounded on the same
// LDS-tiling and argument-binding conventions the reference solver kernels use.
//
// Every pattern here ignores the vendor device's real compiler: its GenKernel output is a
// fully specialized OpenCL C kernel in the same shape the reference implementation would
// emit, but the Go closure returned from KernelEntryPoints is the one actually exercised at
// launch time, operating directly on the raw device-memory bytes the simulated compute
// backend hands it.
package patterns
