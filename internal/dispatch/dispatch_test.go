package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/dispatch"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/identity"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/pattern"
)

// fakePattern is a minimal, fully-functional Pattern used to exercise the dispatch solution
// sequence end to end against the simulated compute backend.
type fakePattern struct {
	name       string
	entryName  string
	forceFail  bool
	perf       pattern.Performance
}

func (f *fakePattern) Name() string { return f.name }

func (f *fakePattern) GenKernel(dst []byte, _ []pattern.SubproblemDimension, _ pattern.ParallelismGranularity, _ interface{}) (int, error) {
	source := "__kernel void " + f.entryName + "(__global uint* buf) {}"
	if f.forceFail {
		source += " #pragma force_build_failure"
	}
	if dst == nil {
		return len(source), nil
	}
	return copy(dst, source), nil
}

func (f *fakePattern) AssignKargs(params pattern.CallParams, extra interface{}) ([]pattern.KArg, error) {
	buf := extra.(compute.MemObject)
	return []pattern.KArg{{Index: 0, Value: buf}}, nil
}

func (f *fakePattern) IsFitToLDS([]pattern.SubproblemDimension, dtype.ElementType, uint64) bool { return true }

func (f *fakePattern) GetPatternPerf(pattern.Flags, pattern.CallParams) pattern.Performance { return f.perf }

func (f *fakePattern) InnerDecompositionAxis(pattern.CallParams) int { return 0 }

func (f *fakePattern) CalcThreads(out []uint64, _ []pattern.SubproblemDimension, _ pattern.ParallelismGranularity, params pattern.CallParams, _ interface{}) error {
	out[0] = uint64(params.N)
	return nil
}

func (f *fakePattern) ImgPackMode(interface{}, []pattern.SubproblemDimension) (pattern.ImagePacking, bool) {
	return pattern.ImagePacking{}, false
}

func (f *fakePattern) GetFlags() pattern.Flags { return pattern.Flags{Dimensionalities: []int{1}} }

func (f *fakePattern) FixupArgs(*pattern.CallParams, *[]pattern.SubproblemDimension, interface{}) error {
	return nil
}

func (f *fakePattern) GetDefaultDecomp(n int, _ pattern.CallParams) (pattern.ParallelismGranularity, []pattern.SubproblemDimension, error) {
	g, err := pattern.NewParallelismGranularity([]uint64{uint64(n)}, 64, 1, 1024)
	return g, nil, err
}

func (f *fakePattern) CheckCalcDecomp(pattern.DecompMode, *pattern.ParallelismGranularity, *[]pattern.SubproblemDimension, int, dtype.ElementType) error {
	return nil
}

func (f *fakePattern) SetBuildOptions(opts string, _ pattern.CallParams) (string, error) { return opts, nil }

func (f *fakePattern) SelectVectorization(_ pattern.CallParams, vectorLen int) int { return vectorLen }

func (f *fakePattern) ExtrasPredicate() kernelcache.ExtrasPredicate { return nil }

func (f *fakePattern) KernelEntryPoints(interface{}) (map[string]pattern.KernelEntryPoint, error) {
	return map[string]pattern.KernelEntryPoint{
		f.entryName: {
			ArgCount: 1,
			Func: func(c *compute.KernelExecContext) error {
				buf, err := c.Buffer(0)
				if err != nil {
					return err
				}
				for i := range buf {
					buf[i]++
				}
				return nil
			},
		},
	}, nil
}

func newHarness(t *testing.T) (compute.Device, compute.Context, compute.CommandQueue) {
	t.Helper()
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	device, err := compute.RegisterDevice(platform, compute.DeviceInfo{
		Vendor: "Simulated", Name: "sim0", MaxWorkGroupSize: 256, LocalMemSize: 32 * 1024,
	})
	require.NoError(t, err)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	queue, err := compute.CreateCommandQueue(ctx, device, 0)
	require.NoError(t, err)
	return device, ctx, queue
}

func newDispatcher() (*dispatch.Dispatcher, *pattern.Registry) {
	registry := pattern.NewRegistry()
	d := dispatch.New(identity.NewCache(), kernelcache.New(1<<20, nil), registry, nil)
	return d, registry
}

func TestCallBuildsAndLaunchesSuccessfully(t *testing.T) {
	device, ctx, queue := newHarness(t)
	d, registry := newDispatcher()
	registry.Register("Fake", &fakePattern{name: "only", entryName: "only_kernel", perf: pattern.Good})

	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	_, _, err = d.Call(dispatch.Request{
		Function: "Fake",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Params:   pattern.CallParams{N: 4, IncX: 1, IncY: 1},
		Elem:     dtype.RealSingle,
		Extra:    buf,
		N:        4,
	})
	require.NoError(t, err)

	out := make([]byte, 4)
	require.NoError(t, compute.EnqueueReadBuffer(queue, buf, true, 0, 4, out, nil, nil))
	require.Equal(t, []byte{1, 1, 1, 1}, out)
}

func TestCallFallsBackToNextPatternOnBuildFailure(t *testing.T) {
	device, ctx, queue := newHarness(t)
	d, registry := newDispatcher()
	registry.Register("Fallback", &fakePattern{name: "broken", entryName: "broken_kernel", perf: pattern.Best, forceFail: true})
	registry.Register("Fallback", &fakePattern{name: "good", entryName: "good_kernel", perf: pattern.Average})

	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	_, _, err = d.Call(dispatch.Request{
		Function: "Fallback",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Params:   pattern.CallParams{N: 4, IncX: 1, IncY: 1},
		Elem:     dtype.RealSingle,
		Extra:    buf,
		N:        4,
	})
	require.NoError(t, err)

	out := make([]byte, 4)
	require.NoError(t, compute.EnqueueReadBuffer(queue, buf, true, 0, 4, out, nil, nil))
	require.Equal(t, []byte{1, 1, 1, 1}, out)
}

func TestCallReturnsExhaustedErrorWhenEveryPatternFails(t *testing.T) {
	device, ctx, queue := newHarness(t)
	d, registry := newDispatcher()
	registry.Register("AllBroken", &fakePattern{name: "first", entryName: "first_kernel", perf: pattern.Best, forceFail: true})
	registry.Register("AllBroken", &fakePattern{name: "second", entryName: "second_kernel", perf: pattern.Good, forceFail: true})

	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	_, _, err = d.Call(dispatch.Request{
		Function: "AllBroken",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Params:   pattern.CallParams{N: 4, IncX: 1, IncY: 1},
		Elem:     dtype.RealSingle,
		Extra:    buf,
		N:        4,
	})
	require.ErrorIs(t, err, dispatch.ErrPatternsExhausted)
}

func TestCallTerminatesOnValidationFailure(t *testing.T) {
	device, ctx, queue := newHarness(t)
	d, registry := newDispatcher()
	registry.Register("Invalid", &fakePattern{name: "only", entryName: "k", perf: pattern.Good})

	_, _, err := d.Call(dispatch.Request{
		Function: "Invalid",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Params:   pattern.CallParams{N: 4, IncX: 0, IncY: 1},
		Elem:     dtype.RealSingle,
		N:        4,
	})
	require.ErrorIs(t, err, dispatch.ErrInvalidCallParams)
}

func TestCallReturnsErrorForUnregisteredFunction(t *testing.T) {
	device, ctx, queue := newHarness(t)
	d, _ := newDispatcher()

	_, _, err := d.Call(dispatch.Request{
		Function: "Nonexistent",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Params:   pattern.CallParams{IncX: 1, IncY: 1},
	})
	require.ErrorIs(t, err, dispatch.ErrNoPatternRegistered)
}

func TestCallSkipsUnsupportedPatterns(t *testing.T) {
	device, ctx, queue := newHarness(t)
	d, registry := newDispatcher()
	registry.Register("Picky", &fakePattern{name: "never", entryName: "never_kernel", perf: pattern.Unsupported})

	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	_, _, err = d.Call(dispatch.Request{
		Function: "Picky",
		Device:   device,
		Context:  ctx,
		Queue:    queue,
		Params:   pattern.CallParams{N: 4, IncX: 1, IncY: 1},
		Elem:     dtype.RealSingle,
		Extra:    buf,
		N:        4,
	})
	require.ErrorIs(t, err, dispatch.ErrNoPatternSupportsCall)
}
