package launch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/launch"
)

func newKernel(t *testing.T, profiling bool, body compute.KernelFunc, argCount int) (compute.CommandQueue, compute.Kernel, compute.Context) {
	t.Helper()
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	device, err := compute.RegisterDevice(platform, compute.DeviceInfo{Vendor: "Simulated", Name: "sim0", MaxWorkGroupSize: 256})
	require.NoError(t, err)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	var props compute.QueueProperties
	if profiling {
		props = compute.QueueProfilingEnable
	}
	queue, err := compute.CreateCommandQueue(ctx, device, props)
	require.NoError(t, err)

	program, err := compute.CreateProgramWithSource(ctx, []string{"__kernel void k(__global uint* buf){}"})
	require.NoError(t, err)
	require.NoError(t, compute.BuildProgram(program, []compute.Device{device}, ""))
	require.NoError(t, compute.AttachKernelImplementation(program, "k", argCount, body))

	kernel, err := compute.CreateKernel(program, "k")
	require.NoError(t, err)
	return queue, kernel, ctx
}

func TestRunWritesBeforeAndReadsAfterKernel(t *testing.T) {
	queue, kernel, ctx := newKernel(t, false, func(c *compute.KernelExecContext) error {
		buf, err := c.Buffer(0)
		if err != nil {
			return err
		}
		for i := range buf {
			buf[i] *= 2
		}
		return nil
	}, 1)

	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	hostIn := []byte{1, 2, 3, 4}
	hostOut := make([]byte, 4)
	desc := launch.Descriptor{
		Kernel: kernel,
		Queue:  queue,
		Args: []launch.Arg{
			{
				Value: buf,
				Staging: &launch.Staging{
					Buffer:    buf,
					Host:      hostIn,
					Direction: launch.DirectionWrite,
				},
			},
		},
		Global: []uint64{4},
	}
	_, _, err = launch.Run(desc)
	require.NoError(t, err)

	require.NoError(t, compute.EnqueueReadBuffer(queue, buf, true, 0, 4, hostOut, nil, nil))
	require.Equal(t, []byte{2, 4, 6, 8}, hostOut)
}

func TestRunReadsAfterStagedRead(t *testing.T) {
	queue, kernel, ctx := newKernel(t, false, func(c *compute.KernelExecContext) error {
		buf, err := c.Buffer(0)
		if err != nil {
			return err
		}
		for i := range buf {
			buf[i] = byte(i + 10)
		}
		return nil
	}, 1)
	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	hostOut := make([]byte, 4)
	desc := launch.Descriptor{
		Kernel: kernel,
		Queue:  queue,
		Args: []launch.Arg{
			{Value: buf, Staging: &launch.Staging{Buffer: buf, Host: hostOut, Direction: launch.DirectionRead}},
		},
		Global: []uint64{4},
	}
	_, _, err = launch.Run(desc)
	require.NoError(t, err)
	require.Equal(t, []byte{10, 11, 12, 13}, hostOut)
}

func TestRunProfilingReportsNonNegativeDuration(t *testing.T) {
	queue, kernel, _ := newKernel(t, true, func(c *compute.KernelExecContext) error { return nil }, 1)
	desc := launch.Descriptor{
		Kernel:  kernel,
		Queue:   queue,
		Args:    []launch.Arg{{Value: []byte{0, 0, 0, 0}}},
		Global:  []uint64{1},
		Profile: true,
	}
	_, result, err := launch.Run(desc)
	require.NoError(t, err)
	require.True(t, result.Profiled)
}

func TestRunSkipsProfilingWhenQueueLacksIt(t *testing.T) {
	queue, kernel, _ := newKernel(t, false, func(c *compute.KernelExecContext) error { return nil }, 1)
	desc := launch.Descriptor{
		Kernel:  kernel,
		Queue:   queue,
		Args:    []launch.Arg{{Value: []byte{0, 0, 0, 0}}},
		Global:  []uint64{1},
		Profile: true,
	}
	_, result, err := launch.Run(desc)
	require.NoError(t, err)
	require.False(t, result.Profiled)
}

func TestRunArgumentCountMismatchAttributesSetArgsPhase(t *testing.T) {
	queue, kernel, _ := newKernel(t, false, func(c *compute.KernelExecContext) error { return nil }, 1)
	desc := launch.Descriptor{
		Kernel: kernel,
		Queue:  queue,
		Args:   []launch.Arg{{Value: []byte{0, 0, 0, 0}}, {Value: []byte{0, 0, 0, 0}}},
		Global: []uint64{1},
	}
	_, _, err := launch.Run(desc)
	require.Error(t, err)
	var launchErr *launch.Error
	require.ErrorAs(t, err, &launchErr)
	require.Equal(t, launch.PhaseSetArgs, launchErr.Phase)
	require.Equal(t, -1, launchErr.WrongArg)
}

func TestRunInvalidArgValueAttributesIndex(t *testing.T) {
	queue, kernel, _ := newKernel(t, false, func(c *compute.KernelExecContext) error { return nil }, 1)
	desc := launch.Descriptor{
		Kernel: kernel,
		Queue:  queue,
		Args:   []launch.Arg{{Value: 42}}, // int is not a recognized compute.ArgValue kind.
		Global: []uint64{1},
	}
	_, _, err := launch.Run(desc)
	require.Error(t, err)
	var launchErr *launch.Error
	require.ErrorAs(t, err, &launchErr)
	require.Equal(t, launch.PhaseSetArgs, launchErr.Phase)
	require.Equal(t, 0, launchErr.WrongArg)
	require.ErrorIs(t, err, compute.ErrInvalidArgValue)
}

func TestRunWriteFailureAttributesEnqueueWritePhaseAndArgIndex(t *testing.T) {
	queue, kernel, ctx := newKernel(t, false, func(c *compute.KernelExecContext) error { return nil }, 1)
	buf, err := compute.CreateBuffer(ctx, compute.MemReadWrite, 4)
	require.NoError(t, err)

	desc := launch.Descriptor{
		Kernel: kernel,
		Queue:  queue,
		Args: []launch.Arg{
			{
				Value: buf,
				Staging: &launch.Staging{
					Buffer:    buf,
					Host:      make([]byte, 64), // larger than the buffer: EnqueueWriteBuffer must reject it.
					Direction: launch.DirectionWrite,
				},
			},
		},
		Global: []uint64{1},
	}
	_, _, err = launch.Run(desc)
	require.Error(t, err)
	var launchErr *launch.Error
	require.ErrorAs(t, err, &launchErr)
	require.Equal(t, launch.PhaseEnqueueWrite, launchErr.Phase)
	require.Equal(t, 0, launchErr.WrongArg)
}
