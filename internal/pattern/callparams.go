package pattern

import "github.com/opencl-go/clblas/compute"

// Order selects row-major or column-major storage for a call's matrix operands, matching
// the convention gonum's blas.Order and the reference's clblasOrder both use.
type Order int

// Recognized Order values.
const (
	RowMajor Order = iota
	ColumnMajor
)

// Transpose selects whether a matrix operand is used as-is, transposed, or conjugate
// transposed.
type Transpose int

// Recognized Transpose values.
const (
	NoTrans Transpose = iota
	Trans
	ConjTrans
)

// Uplo selects which triangle of a symmetric/triangular/Hermitian matrix operand is
// referenced.
type Uplo int

// Recognized Uplo values.
const (
	Upper Uplo = iota
	Lower
)

// Side selects whether a triangular/symmetric operand multiplies from the left or right.
type Side int

// Recognized Side values.
const (
	Left Side = iota
	Right
)

// Diag selects whether a triangular operand's diagonal is taken as explicitly stored or
// implicitly unit.
type Diag int

// Recognized Diag values.
const (
	NonUnit Diag = iota
	Unit
)

// Scalar holds a BLAS alpha/beta coefficient. It always holds one of float32, float64,
// complex64, or complex128 — Go's native complex types stand in for the reference's
// separate real/imaginary scalar structs, so no custom union type is needed.
type Scalar interface{}

// CallParams carries one dispatched BLAS call's shape, operand layout, and synchronization
// requirements. Every Pattern method that needs to reason about the call in progress takes
// a CallParams rather than the BLAS entry point's raw positional arguments, so patterns
// never depend on which specific routine is calling them.
type CallParams struct {
	Order            Order
	TransA, TransB   Transpose
	Uplo             Uplo
	Side             Side
	Diag             Diag
	M, N, K, KL, KU  int
	LDA, LDB, LDC    int
	IncX, IncY       int
	OffA, OffB, OffC int
	Alpha, Beta      Scalar

	// A, B, C are the matrix operands referenced by LDA/LDB/LDC and OffA/OffB/OffC
	// (GEMM/SYRK/TRSM/TRMM-shaped calls); X, Y are the vector operands referenced by
	// IncX/IncY (GEMV/AXPY/SCAL/DOT-shaped calls), reusing OffA/OffB as their element
	// offsets respectively since no call is ever both matrix- and vector-shaped at once. A
	// routine leaves whichever of these it has no operand for as the zero compute.MemObject.
	A, B, C compute.MemObject
	X, Y    compute.MemObject

	Queues   []compute.CommandQueue
	WaitList []compute.Event
}
