package clblas

import (
	"fmt"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/dispatch"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/pattern"
	"github.com/opencl-go/clblas/internal/patterns"
)

// Sgemm computes C = alpha*op(A)*op(B) + beta*C for single-precision matrices, dispatching
// through the registered Sgemm patterns. m, n, k give op(A)'s and op(B)'s logical shape
// (m x k times k x n); lda/ldb/ldc are the physical row (row-major) or column
// (column-major) strides of A, B, C as stored; offA/offB/offC are each operand's starting
// element offset, letting a caller address a sub-matrix view without copying it out first.
func Sgemm(
	queue compute.CommandQueue, device compute.Device, ctx compute.Context,
	order Order, transA, transB Transpose,
	m, n, k int,
	alpha float32, a compute.MemObject, lda, offA int,
	b compute.MemObject, ldb, offB int,
	beta float32, c compute.MemObject, ldc, offC int,
) (compute.Event, error) {
	lib, err := current()
	if err != nil {
		return compute.Event{}, err
	}
	patternOrder, err := order.toPattern()
	if err != nil {
		return compute.Event{}, err
	}
	if m < 0 || n < 0 || k < 0 {
		return compute.Event{}, ErrInvalidDimension
	}
	if offA < 0 || offB < 0 || offC < 0 {
		return compute.Event{}, ErrInvalidOffset
	}

	event, _, err := lib.dispatcher.Call(dispatchGemmRequest(
		"Sgemm", queue, device, ctx, dtype.RealSingle,
		patternOrder, transA, transB, m, n, k,
		alpha, a, lda, offA, b, ldb, offB, beta, c, ldc, offC,
	))
	if err != nil {
		return compute.Event{}, fmt.Errorf("clblas: sgemm: %w", err)
	}
	return event, nil
}

// Dgemm computes C = alpha*op(A)*op(B) + beta*C for double-precision matrices. It fails
// synchronously with ErrUnsupportedPrecision, before any kernel is built, on a device that
// does not report native double precision.
func Dgemm(
	queue compute.CommandQueue, device compute.Device, ctx compute.Context,
	order Order, transA, transB Transpose,
	m, n, k int,
	alpha float64, a compute.MemObject, lda, offA int,
	b compute.MemObject, ldb, offB int,
	beta float64, c compute.MemObject, ldc, offC int,
) (compute.Event, error) {
	lib, err := current()
	if err != nil {
		return compute.Event{}, err
	}
	patternOrder, err := order.toPattern()
	if err != nil {
		return compute.Event{}, err
	}
	if m < 0 || n < 0 || k < 0 {
		return compute.Event{}, ErrInvalidDimension
	}
	if offA < 0 || offB < 0 || offC < 0 {
		return compute.Event{}, ErrInvalidOffset
	}

	req := dispatchGemmRequest(
		"Dgemm", queue, device, ctx, dtype.RealDouble,
		patternOrder, transA, transB, m, n, k,
		alpha, a, lda, offA, b, ldb, offB, beta, c, ldc, offC,
	)

	event, _, err := lib.dispatcher.Call(req)
	if err != nil {
		return compute.Event{}, fmt.Errorf("clblas: dgemm: %w", err)
	}
	return event, nil
}

func dispatchGemmRequest(
	function string,
	queue compute.CommandQueue, device compute.Device, ctx compute.Context, elem dtype.ElementType,
	order pattern.Order, transA, transB Transpose,
	m, n, k int,
	alpha pattern.Scalar, a compute.MemObject, lda, offA int,
	b compute.MemObject, ldb, offB int,
	beta pattern.Scalar, c compute.MemObject, ldc, offC int,
) dispatch.Request {
	return dispatch.Request{
		Function: function,
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Elem:     elem,
		N:        n,
		Extra: patterns.GemmExtras{
			RowMajor: order == pattern.RowMajor,
			TransA:   transA.toPattern() != pattern.NoTrans,
			TransB:   transB.toPattern() != pattern.NoTrans,
		},
		Params: pattern.CallParams{
			Order:  order,
			TransA: transA.toPattern(), TransB: transB.toPattern(),
			M: m, N: n, K: k,
			LDA: lda, LDB: ldb, LDC: ldc,
			OffA: offA, OffB: offB, OffC: offC,
			IncX: 1, IncY: 1,
			Alpha: alpha, Beta: beta,
			A: a, B: b, C: c,
		},
	}
}
