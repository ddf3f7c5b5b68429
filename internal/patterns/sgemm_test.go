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

func newSgemmHarness(t *testing.T) (compute.Device, compute.Context, compute.CommandQueue) {
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

func uploadMatrix(t *testing.T, ctx compute.Context, queue compute.CommandQueue, rows, cols int, fill func(r, c int) float32) compute.MemObject {
	t.Helper()
	data := make([]byte, rows*cols*4)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			bits := math.Float32bits(fill(r, c))
			data[idx*4+0] = byte(bits)
			data[idx*4+1] = byte(bits >> 8)
			data[idx*4+2] = byte(bits >> 16)
			data[idx*4+3] = byte(bits >> 24)
		}
	}
	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, uintptr(len(data)))
	require.NoError(t, err)
	require.NoError(t, compute.EnqueueWriteBuffer(queue, buf, true, 0, uintptr(len(data)), data, nil, nil))
	return buf
}

func downloadMatrix(t *testing.T, queue compute.CommandQueue, buf compute.MemObject, rows, cols int) [][]float32 {
	t.Helper()
	raw := make([]byte, rows*cols*4)
	require.NoError(t, compute.EnqueueReadBuffer(queue, buf, true, 0, uintptr(len(raw)), raw, nil, nil))
	out := make([][]float32, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float32, cols)
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			bits := uint32(raw[idx*4+0]) | uint32(raw[idx*4+1])<<8 | uint32(raw[idx*4+2])<<16 | uint32(raw[idx*4+3])<<24
			out[r][c] = math.Float32frombits(bits)
		}
	}
	return out
}

func referenceGemm(m, n, k int, a, b func(r, c int) float32, alpha, beta float32, c [][]float32) [][]float32 {
	out := make([][]float32, m)
	for row := 0; row < m; row++ {
		out[row] = make([]float32, n)
		for col := 0; col < n; col++ {
			var acc float32
			for kk := 0; kk < k; kk++ {
				acc += a(row, kk) * b(kk, col)
			}
			out[row][col] = alpha*acc + beta*c[row][col]
		}
	}
	return out
}

// TestSgemmRowMajorNoTransShapeCorrectness exercises the M=N=K=64, row-major, no-transpose,
// alpha=1, beta=0 scenario end to end through the dispatcher, asserting every output entry
// is within 1e-4 of a plain reference computation.
func TestSgemmRowMajorNoTransShapeCorrectness(t *testing.T) {
	const dim = 64
	device, ctx, queue := newSgemmHarness(t)

	aElem := func(r, c int) float32 { return float32(r + 2*c%7) }
	bElem := func(r, c int) float32 { return float32((r*3+c)%5) - 2 }
	a := uploadMatrix(t, ctx, queue, dim, dim, aElem)
	b := uploadMatrix(t, ctx, queue, dim, dim, bElem)
	cInit := make([][]float32, dim)
	for r := range cInit {
		cInit[r] = make([]float32, dim)
	}
	c := uploadMatrix(t, ctx, queue, dim, dim, func(int, int) float32 { return 0 })

	registry := pattern.NewRegistry()
	registry.Register("Sgemm", patterns.NewSgemmTile())
	d := dispatch.New(identity.NewCache(), kernelcache.New(1<<20, nil), registry, nil)

	_, _, err := d.Call(dispatch.Request{
		Function: "Sgemm",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Elem:     dtype.RealSingle,
		N:        dim,
		Extra:    patterns.GemmExtras{RowMajor: true},
		Params: pattern.CallParams{
			Order: pattern.RowMajor,
			M:     dim, N: dim, K: dim,
			LDA: dim, LDB: dim, LDC: dim,
			IncX: 1, IncY: 1,
			Alpha: float32(1), Beta: float32(0),
			A: a, B: b, C: c,
		},
	})
	require.NoError(t, err)

	got := downloadMatrix(t, queue, c, dim, dim)
	want := referenceGemm(dim, dim, dim, aElem, bElem, 1, 0, cInit)
	for r := 0; r < dim; r++ {
		for col := 0; col < dim; col++ {
			require.InDelta(t, want[r][col], got[r][col], 1e-4, "C[%d][%d]", r, col)
		}
	}
}

// TestSgemmCacheHitOnSecondCall asserts the second identical-shape call reuses the cached
// kernel: AvailableSize does not change and the build only happens once.
func TestSgemmCacheHitOnSecondCall(t *testing.T) {
	const dim = 16
	device, ctx, queue := newSgemmHarness(t)

	a := uploadMatrix(t, ctx, queue, dim, dim, func(r, c int) float32 { return 1 })
	b := uploadMatrix(t, ctx, queue, dim, dim, func(r, c int) float32 { return 1 })
	c := uploadMatrix(t, ctx, queue, dim, dim, func(int, int) float32 { return 0 })

	registry := pattern.NewRegistry()
	registry.Register("Sgemm", patterns.NewSgemmTile())
	cache := kernelcache.New(1<<20, nil)
	d := dispatch.New(identity.NewCache(), cache, registry, nil)

	req := dispatch.Request{
		Function: "Sgemm",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Elem:     dtype.RealSingle,
		N:        dim,
		Extra:    patterns.GemmExtras{RowMajor: true},
		Params: pattern.CallParams{
			Order: pattern.RowMajor,
			M:     dim, N: dim, K: dim,
			LDA: dim, LDB: dim, LDC: dim,
			IncX: 1, IncY: 1,
			Alpha: float32(1), Beta: float32(0),
			A: a, B: b, C: c,
		},
	}

	_, _, err := d.Call(req)
	require.NoError(t, err)
	afterFirst := cache.AvailableSize()

	_, _, err = d.Call(req)
	require.NoError(t, err)
	require.Equal(t, afterFirst, cache.AvailableSize())
}

// TestSgemmDoublePrecisionRejectedOnDeviceWithoutNativeDouble exercises the synchronous
// unsupportedPrecision failure mode: no program is built and the cache stays empty.
func TestSgemmDoublePrecisionRejectedOnDeviceWithoutNativeDouble(t *testing.T) {
	device, ctx, queue := newSgemmHarness(t)

	registry := pattern.NewRegistry()
	registry.Register("Dgemm", patterns.NewSgemmTile())
	cache := kernelcache.New(1<<20, nil)
	d := dispatch.New(identity.NewCache(), cache, registry, nil)

	before := cache.AvailableSize()
	_, _, err := d.Call(dispatch.Request{
		Function: "Dgemm",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Elem:     dtype.RealDouble,
		N:        8,
		Params: pattern.CallParams{
			Order: pattern.RowMajor,
			M:     8, N: 8, K: 8,
			LDA: 8, LDB: 8, LDC: 8,
			IncX: 1, IncY: 1,
			Alpha: float32(1), Beta: float32(0),
		},
	})
	require.ErrorIs(t, err, dispatch.ErrUnsupportedPrecision)
	require.Equal(t, before, cache.AvailableSize())
}
