package clblas

import (
	"fmt"

	"github.com/opencl-go/clblas/internal/dispatch"
)

// This block groups the package's sentinel errors by the five kinds spec §7 defines.
// Validation and Lifecycle errors are always fatal to the call that produced them;
// Compilation errors only become fatal once every ranked pattern has failed to build
// (ErrPatternsExhausted, from internal/dispatch); Resource and Capability errors propagate
// unchanged from wherever the compute API or the dispatcher raised them.
var (
	// ErrInvalidOrder is returned when an Order argument names neither row- nor
	// column-major storage.
	ErrInvalidOrder = fmt.Errorf("clblas: invalid order")
	// ErrInvalidDimension is returned when M, N, or K is negative.
	ErrInvalidDimension = fmt.Errorf("clblas: invalid dimension")
	// ErrInvalidLeadingDim names a leading dimension too small for the matrix shape it
	// describes. No routine in this package returns it: Sgemm and Dgemm pass lda/ldb/ldc
	// to the dispatcher, which rejects a too-small one with an error wrapping
	// dispatch.ErrInvalidCallParams.
	ErrInvalidLeadingDim = fmt.Errorf("clblas: invalid leading dimension")
	// ErrInvalidIncrement is returned when a vector increment is zero.
	ErrInvalidIncrement = fmt.Errorf("clblas: invalid increment")
	// ErrInvalidOffset is returned when an operand offset (offA, offB/offx, offC/offy) is
	// negative.
	ErrInvalidOffset = fmt.Errorf("clblas: invalid offset")

	// ErrNotInitialized is returned by every routine in this package, including
	// Teardown, when called before a successful Setup.
	ErrNotInitialized = fmt.Errorf("clblas: library not initialized")
	// ErrAlreadyInitialized is returned by Setup when called while the library is
	// already initialized.
	ErrAlreadyInitialized = fmt.Errorf("clblas: library already initialized")
)

// ErrUnsupportedPrecision is dispatch.ErrUnsupportedPrecision re-exported under this
// package so callers can errors.Is against it without importing internal/dispatch
// directly. It is returned synchronously, before any kernel is built, when a routine's
// element type requires native double precision the target device does not report.
var ErrUnsupportedPrecision = dispatch.ErrUnsupportedPrecision
