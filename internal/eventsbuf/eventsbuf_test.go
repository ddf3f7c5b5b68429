package eventsbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/eventsbuf"
)

// TestAllocGrowsInFixedSteps allocates 250 slots, past two of the buffer's 100-slot growth
// steps, and asserts the indices run 0..249 and Len and Events both report 250.
func TestAllocGrowsInFixedSteps(t *testing.T) {
	b := eventsbuf.New()
	for i := 0; i < 250; i++ {
		index := b.Alloc()
		require.Equal(t, i, index)
		b.Set(index, compute.Event{})
	}
	require.Equal(t, 250, b.Len())
	require.Len(t, b.Events(), 250)
}

// TestSetRecordsAtAllocatedIndex asserts a value Set at an allocated index is returned by a
// later Events call at the same position.
func TestSetRecordsAtAllocatedIndex(t *testing.T) {
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	device, err := compute.RegisterDevice(platform, compute.DeviceInfo{Vendor: "Simulated", Name: "sim0"})
	require.NoError(t, err)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	queue, err := compute.CreateCommandQueue(ctx, device, 0)
	require.NoError(t, err)
	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)
	var want compute.Event
	require.NoError(t, compute.EnqueueWriteBuffer(queue, buf, true, 0, 4, []byte{1, 2, 3, 4}, nil, &want))

	b := eventsbuf.New()
	_ = b.Alloc()
	index := b.Alloc()
	b.Set(index, want)

	require.Equal(t, want, b.Events()[index])
}

// TestTeardownEmptiesState exercises spec testable property 8's shape at the buffer level:
// after Teardown, the buffer reports zero length even though it was previously grown well
// past its initial allocation.
func TestTeardownEmptiesState(t *testing.T) {
	b := eventsbuf.New()
	for i := 0; i < 150; i++ {
		b.Set(b.Alloc(), compute.Event{})
	}
	require.Equal(t, 150, b.Len())

	b.Teardown()

	require.Equal(t, 0, b.Len())
	require.Empty(t, b.Events())

	index := b.Alloc()
	require.Equal(t, 0, index)
	require.Equal(t, 1, b.Len())
}
