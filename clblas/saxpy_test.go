package clblas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas"
	"github.com/opencl-go/clblas/compute"
)

// TestSaxpyPublicEntryPointCorrectness exercises Saxpy through the package's public
// surface end to end.
func TestSaxpyPublicEntryPointCorrectness(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	const n = 20
	device, ctx, queue := newHarness(t)

	x := make([]float32, n)
	y := make([]float32, n)
	for i := range x {
		x[i] = float32(i)
		y[i] = float32(-i)
	}
	xBuf := uploadFloats(t, ctx, queue, x)
	yBuf := uploadFloats(t, ctx, queue, y)

	_, err := clblas.Saxpy(queue, device, ctx, n, 3, xBuf, 1, 0, yBuf, 1, 0)
	require.NoError(t, err)

	got := downloadFloats(t, queue, yBuf, n)
	for i := range got {
		want := 3*x[i] + y[i]
		require.InDelta(t, want, got[i], 1e-4, "y[%d]", i)
	}
}

// TestSaxpyRejectsZeroIncrement asserts Saxpy validates its own increment arguments before
// ever reaching the dispatcher.
func TestSaxpyRejectsZeroIncrement(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	device, ctx, queue := newHarness(t)
	var x, y compute.MemObject
	_, err := clblas.Saxpy(queue, device, ctx, 4, 1, x, 0, 0, y, 1, 0)
	require.ErrorIs(t, err, clblas.ErrInvalidIncrement)
}
