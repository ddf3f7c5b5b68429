package clblas_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas"
	"github.com/opencl-go/clblas/compute"
)

func newHarness(t *testing.T) (compute.Device, compute.Context, compute.CommandQueue) {
	t.Helper()
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	device, err := compute.RegisterDevice(platform, compute.DeviceInfo{
		Vendor: "Simulated", Name: "sim0", MaxWorkGroupSize: 1024, LocalMemSize: 32 * 1024,
	})
	require.NoError(t, err)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	queue, err := compute.CreateCommandQueue(ctx, device, 0)
	require.NoError(t, err)
	return device, ctx, queue
}

func uploadFloats(t *testing.T, ctx compute.Context, queue compute.CommandQueue, values []float32) compute.MemObject {
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

func downloadFloats(t *testing.T, queue compute.CommandQueue, buf compute.MemObject, n int) []float32 {
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

// TestSgemmPublicEntryPointRowMajorShapeCorrectness exercises Sgemm through the package's
// public surface end to end, confirming the same M=N=K shape scenario internal/patterns
// already verifies at the dispatcher level also works through Setup/Sgemm/Teardown.
func TestSgemmPublicEntryPointRowMajorShapeCorrectness(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	const dim = 8
	device, ctx, queue := newHarness(t)

	a := make([]float32, dim*dim)
	b := make([]float32, dim*dim)
	c := make([]float32, dim*dim)
	for i := range a {
		a[i] = float32(i%5) - 1
		b[i] = float32(i%3) + 1
	}
	aBuf := uploadFloats(t, ctx, queue, a)
	bBuf := uploadFloats(t, ctx, queue, b)
	cBuf := uploadFloats(t, ctx, queue, c)

	_, err := clblas.Sgemm(queue, device, ctx,
		clblas.RowMajor, clblas.NoTrans, clblas.NoTrans,
		dim, dim, dim,
		1, aBuf, dim, 0,
		bBuf, dim, 0,
		0, cBuf, dim, 0,
	)
	require.NoError(t, err)

	got := downloadFloats(t, queue, cBuf, dim*dim)
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			var want float32
			for kk := 0; kk < dim; kk++ {
				want += a[row*dim+kk] * b[kk*dim+col]
			}
			require.InDelta(t, want, got[row*dim+col], 1e-4, "C[%d][%d]", row, col)
		}
	}
}

// TestSgemmUsesScratchImagePoolWhenEnabled exercises the scratch-image path end to end:
// with AMD_CLBLAS_GEMM_IMPLEMENTATION=1, Setup wires the scratch-image pool into the
// dispatcher, sgemm-tile's ImgPackMode opts B into it, and the result must still match a
// plain reference computation even though B was staged through a pool-managed image rather
// than bound directly.
func TestSgemmUsesScratchImagePoolWhenEnabled(t *testing.T) {
	t.Setenv("AMD_CLBLAS_GEMM_IMPLEMENTATION", "1")
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	const dim = 8
	device, ctx, queue := newHarness(t)

	a := make([]float32, dim*dim)
	b := make([]float32, dim*dim)
	c := make([]float32, dim*dim)
	for i := range a {
		a[i] = float32(i%5) - 1
		b[i] = float32(i%3) + 1
	}
	aBuf := uploadFloats(t, ctx, queue, a)
	bBuf := uploadFloats(t, ctx, queue, b)
	cBuf := uploadFloats(t, ctx, queue, c)

	_, err := clblas.Sgemm(queue, device, ctx,
		clblas.RowMajor, clblas.NoTrans, clblas.NoTrans,
		dim, dim, dim,
		1, aBuf, dim, 0,
		bBuf, dim, 0,
		0, cBuf, dim, 0,
	)
	require.NoError(t, err)

	got := downloadFloats(t, queue, cBuf, dim*dim)
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			var want float32
			for kk := 0; kk < dim; kk++ {
				want += a[row*dim+kk] * b[kk*dim+col]
			}
			require.InDelta(t, want, got[row*dim+col], 1e-4, "C[%d][%d]", row, col)
		}
	}
}

// TestSgemmRejectsNegativeDimension asserts Sgemm validates its own dimension arguments
// before ever reaching the dispatcher.
func TestSgemmRejectsNegativeDimension(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	device, ctx, queue := newHarness(t)
	var a, b, c compute.MemObject
	_, err := clblas.Sgemm(queue, device, ctx, clblas.RowMajor, clblas.NoTrans, clblas.NoTrans, -1, 4, 4, 1, a, 4, 0, b, 4, 0, 0, c, 4, 0)
	require.ErrorIs(t, err, clblas.ErrInvalidDimension)
}

// TestSgemmRejectsNegativeOffset asserts Sgemm validates offA/offB/offC before ever
// reaching the dispatcher.
func TestSgemmRejectsNegativeOffset(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	device, ctx, queue := newHarness(t)
	var a, b, c compute.MemObject
	_, err := clblas.Sgemm(queue, device, ctx, clblas.RowMajor, clblas.NoTrans, clblas.NoTrans, 4, 4, 4, 1, a, 4, -1, b, 4, 0, 0, c, 4, 0)
	require.ErrorIs(t, err, clblas.ErrInvalidOffset)
}

// TestSgemmPublicEntryPointHonorsOperandOffsets exercises Sgemm against a sub-matrix view:
// A, B, and C each live inside a larger buffer, addressed starting at a non-zero offset,
// confirming the offset reaches the kernel rather than being silently treated as zero.
func TestSgemmPublicEntryPointHonorsOperandOffsets(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	const dim = 8
	const pad = 5
	device, ctx, queue := newHarness(t)

	a := make([]float32, pad+dim*dim)
	b := make([]float32, pad+dim*dim)
	c := make([]float32, pad+dim*dim)
	for i := pad; i < len(a); i++ {
		a[i] = float32((i%5)-1)
		b[i] = float32((i%3)+1)
	}
	aBuf := uploadFloats(t, ctx, queue, a)
	bBuf := uploadFloats(t, ctx, queue, b)
	cBuf := uploadFloats(t, ctx, queue, c)

	_, err := clblas.Sgemm(queue, device, ctx,
		clblas.RowMajor, clblas.NoTrans, clblas.NoTrans,
		dim, dim, dim,
		1, aBuf, dim, pad,
		bBuf, dim, pad,
		0, cBuf, dim, pad,
	)
	require.NoError(t, err)

	got := downloadFloats(t, queue, cBuf, pad+dim*dim)
	for i := 0; i < pad; i++ {
		require.InDelta(t, float32(0), got[i], 1e-4, "padding byte %d must be untouched", i)
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			var want float32
			for kk := 0; kk < dim; kk++ {
				want += a[pad+row*dim+kk] * b[pad+kk*dim+col]
			}
			require.InDelta(t, want, got[pad+row*dim+col], 1e-4, "C[%d][%d]", row, col)
		}
	}
}

// TestDgemmRejectedOnDeviceWithoutNativeDouble asserts Dgemm surfaces
// ErrUnsupportedPrecision through the public entry point on a device that does not report
// native double precision, the same scenario internal/patterns already verifies directly
// against the dispatcher.
func TestDgemmRejectedOnDeviceWithoutNativeDouble(t *testing.T) {
	require.NoError(t, clblas.Setup())
	defer func() { _ = clblas.Teardown() }()

	device, ctx, queue := newHarness(t)
	var a, b, c compute.MemObject
	_, err := clblas.Dgemm(queue, device, ctx, clblas.RowMajor, clblas.NoTrans, clblas.NoTrans, 4, 4, 4, 1, a, 4, 0, b, 4, 0, 0, c, 4, 0)
	require.ErrorIs(t, err, clblas.ErrUnsupportedPrecision)
}
