package patterns_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/dispatch"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/identity"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/pattern"
	"github.com/opencl-go/clblas/internal/patterns"
)

func uploadVector(t *testing.T, ctx compute.Context, queue compute.CommandQueue, values []float32) compute.MemObject {
	t.Helper()
	data := make([]byte, len(values)*4)
	for i, v := range values {
		bits := math.Float32bits(v)
		data[i*4+0] = byte(bits)
		data[i*4+1] = byte(bits >> 8)
		data[i*4+2] = byte(bits >> 16)
		data[i*4+3] = byte(bits >> 24)
	}
	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, uintptr(len(data)))
	require.NoError(t, err)
	require.NoError(t, compute.EnqueueWriteBuffer(queue, buf, true, 0, uintptr(len(data)), data, nil, nil))
	return buf
}

func downloadVector(t *testing.T, queue compute.CommandQueue, buf compute.MemObject, n int) []float32 {
	t.Helper()
	raw := make([]byte, n*4)
	require.NoError(t, compute.EnqueueReadBuffer(queue, buf, true, 0, uintptr(len(raw)), raw, nil, nil))
	out := make([]float32, n)
	for i := range out {
		bits := uint32(raw[i*4+0]) | uint32(raw[i*4+1])<<8 | uint32(raw[i*4+2])<<16 | uint32(raw[i*4+3])<<24
		out[i] = math.Float32frombits(bits)
	}
	return out
}

// TestSaxpyUnitStrideCorrectness exercises y = alpha*x + y for a contiguous vector pair.
func TestSaxpyUnitStrideCorrectness(t *testing.T) {
	const n = 37
	device, ctx, queue := newSgemmHarness(t)

	x := make([]float32, n)
	y := make([]float32, n)
	for i := range x {
		x[i] = float32(i) - 3
		y[i] = float32(2 * i)
	}
	xBuf := uploadVector(t, ctx, queue, x)
	yBuf := uploadVector(t, ctx, queue, y)

	registry := pattern.NewRegistry()
	registry.Register("Saxpy", patterns.NewSaxpyScalar())
	d := dispatch.New(identity.NewCache(), kernelcache.New(1<<20, nil), registry, nil)

	_, _, err := d.Call(dispatch.Request{
		Function: "Saxpy",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Elem:     dtype.RealSingle,
		N:        n,
		Params: pattern.CallParams{
			N:     n,
			IncX:  1,
			IncY:  1,
			Alpha: float32(2.5),
			X:     xBuf,
			Y:     yBuf,
		},
	})
	require.NoError(t, err)

	got := downloadVector(t, queue, yBuf, n)
	for i := range got {
		want := 2.5*x[i] + y[i]
		require.InDelta(t, want, got[i], 1e-4, "y[%d]", i)
	}
}

// TestSaxpyStridedAccess exercises non-unit IncX/IncY, touching only every other element.
func TestSaxpyStridedAccess(t *testing.T) {
	const n = 5
	device, ctx, queue := newSgemmHarness(t)

	x := []float32{1, 100, 2, 100, 3, 100, 4, 100, 5, 100}
	y := make([]float32, len(x))
	xBuf := uploadVector(t, ctx, queue, x)
	yBuf := uploadVector(t, ctx, queue, y)

	registry := pattern.NewRegistry()
	registry.Register("Saxpy", patterns.NewSaxpyScalar())
	d := dispatch.New(identity.NewCache(), kernelcache.New(1<<20, nil), registry, nil)

	_, _, err := d.Call(dispatch.Request{
		Function: "Saxpy",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Elem:     dtype.RealSingle,
		N:        n,
		Params: pattern.CallParams{
			N:     n,
			IncX:  2,
			IncY:  2,
			Alpha: float32(1),
			X:     xBuf,
			Y:     yBuf,
		},
	})
	require.NoError(t, err)

	got := downloadVector(t, queue, yBuf, len(y))
	for i := 0; i < n; i++ {
		require.InDelta(t, x[i*2], got[i*2], 1e-4, "y[%d]", i*2)
	}
	for i := 0; i < n; i++ {
		require.InDelta(t, 0, got[i*2+1], 1e-4, "untouched y[%d]", i*2+1)
	}
}
