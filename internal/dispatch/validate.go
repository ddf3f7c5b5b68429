package dispatch

import (
	"fmt"

	"github.com/opencl-go/clblas/internal/pattern"
)

// Validate checks params against the shape constraints common to every BLAS routine:
// non-negative dimensions, non-zero increments, and leading dimensions wide enough to hold
// the dimension they stride. It is deliberately routine-agnostic; a pattern's own
// GetFlags/FixupArgs still enforce anything specific to one function (e.g. a triangular
// routine rejecting a negative KL).
func Validate(params pattern.CallParams) error {
	if params.M < 0 || params.N < 0 || params.K < 0 {
		return fmt.Errorf("%w: negative dimension (M=%d, N=%d, K=%d)", ErrInvalidCallParams, params.M, params.N, params.K)
	}
	if params.IncX == 0 || params.IncY == 0 {
		return fmt.Errorf("%w: zero increment (incX=%d, incY=%d)", ErrInvalidCallParams, params.IncX, params.IncY)
	}
	if params.OffA < 0 || params.OffB < 0 || params.OffC < 0 {
		return fmt.Errorf("%w: negative offset (offA=%d, offB=%d, offC=%d)", ErrInvalidCallParams, params.OffA, params.OffB, params.OffC)
	}
	if params.LDA < 0 || params.LDB < 0 || params.LDC < 0 {
		return fmt.Errorf("%w: negative leading dimension (lda=%d, ldb=%d, ldc=%d)", ErrInvalidCallParams, params.LDA, params.LDB, params.LDC)
	}
	minLDA := leadingDimensionFloor(params.Order, params.M, params.N, params.K, params.TransA)
	if params.LDA != 0 && params.LDA < minLDA {
		return fmt.Errorf("%w: lda=%d shorter than required %d", ErrInvalidCallParams, params.LDA, minLDA)
	}
	minLDB := leadingDimensionFloor(params.Order, params.K, params.N, 0, params.TransB)
	if params.LDB != 0 && params.LDB < minLDB {
		return fmt.Errorf("%w: ldb=%d shorter than required %d", ErrInvalidCallParams, params.LDB, minLDB)
	}
	minLDC := leadingDimensionFloor(params.Order, params.M, params.N, 0, pattern.NoTrans)
	if params.LDC != 0 && params.LDC < minLDC {
		return fmt.Errorf("%w: ldc=%d shorter than required %d", ErrInvalidCallParams, params.LDC, minLDC)
	}
	return nil
}

// leadingDimensionFloor returns the smallest leading dimension that can stride a matrix
// operand of the given logical shape in the requested order/transpose.
func leadingDimensionFloor(order pattern.Order, m, n, k int, trans pattern.Transpose) int {
	cols := n
	if k > 0 {
		cols = k
	}
	rows := m
	if trans != pattern.NoTrans {
		rows, cols = cols, rows
	}
	if order == pattern.ColumnMajor {
		return max(rows, 1)
	}
	return max(cols, 1)
}
