// Package compute provides a vendor-neutral accelerator compute API: contexts, devices,
// command queues, programs, kernels, buffers, images and events.
//
// Its shape follows github.com/opencl-go/cl30 closely — handles, Info() queries, retain/
// release pairs, blocking/non-blocking enqueue — because that is the real-world API this
// kind of dispatch library is built against. Unlike cl30, this package does not wrap a
// cgo binding to an actual accelerator driver: it is an in-process software device that
// stands in for one. Binding correctness against a real compute API, and the numerical
// formulation of what a kernel computes, are both out of scope for the system this package
// supports (see the dispatch/kernel-cache/launch pipeline in the parent module); what this
// package preserves faithfully is the *shape* of the contract those components are built
// against: handle lifecycles, build diagnostics, argument binding order, and per-phase
// launch errors.
//
// A kernel's actual computation is supplied by the caller as a Go closure and attached to
// a built Program with AttachKernelImplementation, keyed by the kernel's entry point name.
// This is the seam where a real implementation would hand templated kernel source to a
// device compiler; here it is resolved to native Go code instead.
package compute
