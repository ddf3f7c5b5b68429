// Package pattern defines the memory-pattern registry and solver interface every BLAS
// function's strategies implement (spec §4.6, component C9).
//
// A Pattern is modeled as a plain Go interface rather than a deep class hierarchy, per the
// specification's "tagged variants in place of polymorphism" design note: a Go interface's
// method set already is a set of function pointers on whatever concrete struct implements
// it, which is exactly the shape the reference's function-pointer-struct pattern takes.
package pattern
