package buildengine_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/buildengine"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newDevice(t *testing.T) (compute.Context, compute.Device) {
	t.Helper()
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	device, err := compute.RegisterDevice(platform, compute.DeviceInfo{Vendor: "Simulated", Name: "sim0"})
	require.NoError(t, err)
	ctx, err := compute.CreateContext([]compute.Device{device})
	require.NoError(t, err)
	return ctx, device
}

func TestBuildSucceeds(t *testing.T) {
	ctx, device := newDevice(t)
	program, err := buildengine.Build(testLogger(), ctx, []compute.Device{device}, "kernel void foo() {}", "-DFOO=1")
	require.NoError(t, err)
	require.NotEqual(t, compute.Program{}, program)

	status, err := compute.ProgramBuildStatus(program, device)
	require.NoError(t, err)
	require.Equal(t, compute.BuildSuccessStatus, status)
}

func TestBuildFailureReturnsZeroProgramAndWrappedError(t *testing.T) {
	ctx, device := newDevice(t)
	_, err := buildengine.Build(testLogger(), ctx, []compute.Device{device}, "#pragma force_build_failure", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, compute.ErrBuildProgramFailure))
}

func TestBuildRejectsInvalidOptions(t *testing.T) {
	ctx, device := newDevice(t)
	_, err := buildengine.Build(testLogger(), ctx, []compute.Device{device}, "kernel void foo() {}", "NOTANOPTION")
	require.Error(t, err)
	require.True(t, errors.Is(err, compute.ErrInvalidBuildOptions))
	require.False(t, errors.Is(err, compute.ErrBuildProgramFailure))
}

func TestBuildFromBinaryRoundTrip(t *testing.T) {
	ctx, device := newDevice(t)
	program, err := buildengine.Build(testLogger(), ctx, []compute.Device{device}, "kernel void foo() {}", "")
	require.NoError(t, err)

	bin, err := buildengine.Binary(program)
	require.NoError(t, err)
	require.NotEmpty(t, bin)

	size, err := buildengine.BinarySize(program)
	require.NoError(t, err)
	require.Equal(t, len(bin), size)

	rebuilt, err := buildengine.BuildFromBinary(ctx, []compute.Device{device}, [][]byte{bin})
	require.NoError(t, err)

	status, err := compute.ProgramBuildStatus(rebuilt, device)
	require.NoError(t, err)
	require.Equal(t, compute.BuildSuccessStatus, status)

	rebuiltBin, err := buildengine.Binary(rebuilt)
	require.NoError(t, err)
	require.Equal(t, bin, rebuiltBin)
}
