package clblas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas"
	"github.com/opencl-go/clblas/compute"
)

// TestSetupTeardownIdempotence exercises spec's setup/teardown idempotence property:
// setup, teardown, setup succeeds, and every routine requires setup again after teardown.
func TestSetupTeardownIdempotence(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	require.ErrorIs(t, clblas.Setup(), clblas.ErrAlreadyInitialized)

	require.NoError(t, clblas.Teardown())
	require.ErrorIs(t, clblas.Teardown(), clblas.ErrNotInitialized)

	require.NoError(t, clblas.Setup())
}

// TestCallBeforeSetupReturnsNotInitialized asserts every BLAS entry point rejects calls
// made before Setup.
func TestCallBeforeSetupReturnsNotInitialized(t *testing.T) {
	var queue compute.CommandQueue
	var device compute.Device
	var ctx compute.Context
	var x, y compute.MemObject
	_, err := clblas.Saxpy(queue, device, ctx, 4, 1, x, 1, 0, y, 1, 0)
	require.ErrorIs(t, err, clblas.ErrNotInitialized)
}
