package clblas

import (
	"fmt"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/dispatch"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/pattern"
)

// Saxpy computes y = alpha*x + y over n single-precision elements, strided by incx/incy
// starting at offx/offy within x and y respectively.
func Saxpy(
	queue compute.CommandQueue, device compute.Device, ctx compute.Context,
	n int, alpha float32,
	x compute.MemObject, incx, offx int,
	y compute.MemObject, incy, offy int,
) (compute.Event, error) {
	lib, err := current()
	if err != nil {
		return compute.Event{}, err
	}
	if n < 0 {
		return compute.Event{}, ErrInvalidDimension
	}
	if incx == 0 || incy == 0 {
		return compute.Event{}, ErrInvalidIncrement
	}
	if offx < 0 || offy < 0 {
		return compute.Event{}, ErrInvalidOffset
	}

	event, _, err := lib.dispatcher.Call(dispatch.Request{
		Function: "Saxpy",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Elem:     dtype.RealSingle,
		N:        n,
		Params: pattern.CallParams{
			N:    n,
			IncX: incx, IncY: incy,
			OffA:  offx,
			OffB:  offy,
			Alpha: alpha,
			X:     x, Y: y,
		},
	})
	if err != nil {
		return compute.Event{}, fmt.Errorf("clblas: saxpy: %w", err)
	}
	return event, nil
}
