// Package clblas is the public BLAS surface: a library-context object (Setup/Teardown)
// wrapping the internal dispatch pipeline and its registered patterns behind the routine
// names and calling conventions a BLAS caller expects (spec §6 External Interfaces).
//
// Nothing under internal/ is reachable from outside this module; this package is the only
// caller-facing door to it.
package clblas
