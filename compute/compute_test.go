package compute_test

import (
	"testing"

	"github.com/opencl-go/clblas/compute"
	"github.com/stretchr/testify/require"
)

func newDevice(t *testing.T, nativeDouble bool) (compute.Platform, compute.Device) {
	t.Helper()
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	device, err := compute.RegisterDevice(platform, compute.DeviceInfo{
		Vendor:                  "Simulated",
		Name:                    "sim0",
		MaxComputeUnits:         8,
		MaxWorkGroupSize:        256,
		LocalMemSize:            32 * 1024,
		MinDataTypeAlignByte:    128,
		AddressBits:             64,
		PreferredVectorWidthDbl: 2,
		NativeDouble:            nativeDouble,
		WavefrontWidth:          64,
		Extensions:              []string{"cl_khr_fp64"},
	})
	require.NoError(t, err)
	return platform, device
}

func TestBufferWriteReadRoundTrip(t *testing.T) {
	_, device := newDevice(t, true)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	queue, err := compute.CreateCommandQueue(ctx, device, 0)
	require.NoError(t, err)

	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 16)
	require.NoError(t, err)

	in := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, compute.EnqueueWriteBuffer(queue, buf, true, 0, uintptr(len(in)), in, nil, nil))

	out := make([]byte, len(in))
	require.NoError(t, compute.EnqueueReadBuffer(queue, buf, true, 0, uintptr(len(out)), out, nil, nil))
	require.Equal(t, in, out)
}

func TestEnqueueWriteBufferOutOfBoundsFails(t *testing.T) {
	_, device := newDevice(t, true)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	queue, err := compute.CreateCommandQueue(ctx, device, 0)
	require.NoError(t, err)
	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	err = compute.EnqueueWriteBuffer(queue, buf, true, 0, 8, make([]byte, 8), nil, nil)
	require.ErrorIs(t, err, compute.ErrInvalidValue)
}

func TestKernelRoundTripWithProfiling(t *testing.T) {
	_, device := newDevice(t, true)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	queue, err := compute.CreateCommandQueue(ctx, device, compute.QueueProfilingEnable)
	require.NoError(t, err)

	program, err := compute.CreateProgramWithSource(ctx, []string{"__kernel void addOne(__global uint* buf) { }"})
	require.NoError(t, err)
	require.NoError(t, compute.BuildProgram(program, []compute.Device{device}, "-DFOO=1"))

	require.NoError(t, compute.AttachKernelImplementation(program, "addOne", 1, func(c *compute.KernelExecContext) error {
		buf, err := c.Buffer(0)
		if err != nil {
			return err
		}
		for i := range buf {
			buf[i]++
		}
		return nil
	}))

	kernel, err := compute.CreateKernel(program, "addOne")
	require.NoError(t, err)

	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)
	require.NoError(t, compute.SetKernelArg(kernel, 0, buf))

	var event compute.Event
	require.NoError(t, compute.EnqueueNDRangeKernel(queue, kernel, []compute.WorkDimension{{GlobalSize: 4}}, nil, &event))

	out := make([]byte, 4)
	require.NoError(t, compute.EnqueueReadBuffer(queue, buf, true, 0, 4, out, nil, nil))
	require.Equal(t, []byte{1, 1, 1, 1}, out)

	start, err := compute.EventProfilingInfo(event, compute.ProfilingCommandStart)
	require.NoError(t, err)
	end, err := compute.EventProfilingInfo(event, compute.ProfilingCommandEnd)
	require.NoError(t, err)
	require.GreaterOrEqual(t, end, start)
}

func TestBuildProgramRejectsInvalidOption(t *testing.T) {
	_, device := newDevice(t, true)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	program, err := compute.CreateProgramWithSource(ctx, []string{"__kernel void k(){}"})
	require.NoError(t, err)
	err = compute.BuildProgram(program, []compute.Device{device}, "NOTANOPTION")
	require.ErrorIs(t, err, compute.ErrInvalidBuildOptions)
}

func TestBuildProgramForcedFailureCapturesLog(t *testing.T) {
	_, device := newDevice(t, true)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	program, err := compute.CreateProgramWithSource(ctx, []string{"__kernel void k(){} #pragma force_build_failure"})
	require.NoError(t, err)
	err = compute.BuildProgram(program, []compute.Device{device}, "")
	require.ErrorIs(t, err, compute.ErrBuildProgramFailure)
	log, err := compute.ProgramBuildLog(program, device)
	require.NoError(t, err)
	require.NotEmpty(t, log)
}
