package imagepool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/imagepool"
)

func newContextWithTwoDevices(t *testing.T) (compute.Context, compute.Device, compute.Device) {
	t.Helper()
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	d1, err := compute.RegisterDevice(platform, compute.DeviceInfo{Vendor: "Simulated", Name: "sim0"})
	require.NoError(t, err)
	d2, err := compute.RegisterDevice(platform, compute.DeviceInfo{Vendor: "Simulated", Name: "sim1"})
	require.NoError(t, err)
	ctx, err := compute.CreateContext([]compute.Device{d1, d2})
	require.NoError(t, err)
	return ctx, d1, d2
}

func TestScratchImageReuseAcrossDevices(t *testing.T) {
	ctx, d1, d2 := newContextWithTwoDevices(t)
	pool := imagepool.New(nil)

	handle, err := pool.Add(ctx, 2048, 2048)
	require.NoError(t, err)

	img1, ok, err := pool.Get(ctx, d1, 2*1024*1024, 1024*1024, 1024)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, handle, img1)

	img2, ok, err := pool.Get(ctx, d2, 2*1024*1024, 1024*1024, 1024)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, handle, img2)
}

func TestScratchImageExclusivePerDeviceUntilPut(t *testing.T) {
	ctx, d1, d2 := newContextWithTwoDevices(t)
	pool := imagepool.New(nil)
	handle, err := pool.Add(ctx, 2048, 2048)
	require.NoError(t, err)

	_, ok, err := pool.Get(ctx, d1, 2*1024*1024, 1024*1024, 1024)
	require.NoError(t, err)
	require.True(t, ok)

	// d1 asking again, without a Put in between, must not get the same image again (there is
	// only one image in the pool, so it must come back empty-handed).
	_, ok, err = pool.Get(ctx, d1, 2*1024*1024, 1024*1024, 1024)
	require.NoError(t, err)
	require.False(t, ok)

	// d2 acquiring and releasing does not free d1's claim.
	img2, ok, err := pool.Get(ctx, d2, 2*1024*1024, 1024*1024, 1024)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, handle, img2)
	require.NoError(t, pool.Put(d2, img2))

	_, ok, err = pool.Get(ctx, d1, 2*1024*1024, 1024*1024, 1024)
	require.NoError(t, err)
	require.False(t, ok, "d1 still holds its own claim and cannot reacquire it")
}

func TestPutThenGetReturnsImageAgain(t *testing.T) {
	ctx, d1, _ := newContextWithTwoDevices(t)
	pool := imagepool.New(nil)
	handle, err := pool.Add(ctx, 1024, 1024)
	require.NoError(t, err)

	got, ok, err := pool.Get(ctx, d1, 1024*1024, 512*1024, 512)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, handle, got)

	require.NoError(t, pool.Put(d1, got))

	got2, ok, err := pool.Get(ctx, d1, 1024*1024, 512*1024, 512)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, handle, got2)
}

func TestBestFitMinimizesAreaDifference(t *testing.T) {
	ctx, d1, _ := newContextWithTwoDevices(t)
	pool := imagepool.New(nil)
	small, err := pool.Add(ctx, 512, 512) // area 262144
	require.NoError(t, err)
	large, err := pool.Add(ctx, 4096, 4096) // area 16777216
	require.NoError(t, err)

	got, ok, err := pool.Get(ctx, d1, 300000, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, small, got)
	require.NotEqual(t, large, got)
}

func TestGetRespectsMinWidthAndMinSize(t *testing.T) {
	ctx, d1, _ := newContextWithTwoDevices(t)
	pool := imagepool.New(nil)
	_, err := pool.Add(ctx, 256, 256)
	require.NoError(t, err)

	_, ok, err := pool.Get(ctx, d1, 100000, 0, 1024)
	require.NoError(t, err)
	require.False(t, ok, "image narrower than minWidth must be rejected")

	_, ok, err = pool.Get(ctx, d1, 100000, 1<<20, 0)
	require.NoError(t, err)
	require.False(t, ok, "image smaller than minSize must be rejected")
}

func TestRemoveDropsImageFromPool(t *testing.T) {
	ctx, d1, _ := newContextWithTwoDevices(t)
	pool := imagepool.New(nil)
	handle, err := pool.Add(ctx, 1024, 1024)
	require.NoError(t, err)
	require.NoError(t, pool.Remove(handle))

	_, ok, err := pool.Get(ctx, d1, 1024*1024, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPutUnknownImageFails(t *testing.T) {
	ctx, d1, _ := newContextWithTwoDevices(t)
	pool := imagepool.New(nil)
	_, err := pool.Add(ctx, 1024, 1024)
	require.NoError(t, err)
	require.ErrorIs(t, pool.Put(d1, compute.MemObject{}), imagepool.ErrNotInPool)
}
