package kernelcache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/kernelcache"
)

func testKey(dim int, subdims ...int32) kernelcache.Key {
	return kernelcache.NewKey(compute.Device{}, compute.Context{}, dim, subdims)
}

func newRecord(key kernelcache.Key, footprint int64, extras interface{}) *kernelcache.Record {
	r := kernelcache.Alloc()
	r.Key = key
	r.Footprint = footprint
	r.Extras = extras
	return r
}

func TestAddFindPutLifecycle(t *testing.T) {
	cache := kernelcache.New(1024, nil)

	destroyed := false
	record := newRecord(testKey(1), 64, nil)
	record.Destructor = func() { destroyed = true }

	require.NoError(t, cache.Add("GEMM", record, nil))
	require.Equal(t, int64(1024-64), cache.AvailableSize())

	found, ok, err := cache.Find("GEMM", record.Key, record.Extras, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Same(t, record, found)

	// Two holds now exist beyond the cache's own: the original Alloc hold and this Find hold.
	cache.Put(found)
	cache.Put(record) // release the original Alloc hold
	require.False(t, destroyed, "cache's own hold should keep the record alive")

	cache.Clean()
	require.True(t, destroyed)
	require.Equal(t, int64(1024), cache.AvailableSize())
}

func TestDuplicateKeyAndExtrasRejected(t *testing.T) {
	cache := kernelcache.New(1024, nil)
	key := testKey(2, 4, 4, 16, 8, 8)

	first := newRecord(key, 16, "level1")
	require.NoError(t, cache.Add("GEMM", first, nil))

	second := newRecord(key, 16, "level1")
	err := cache.Add("GEMM", second, nil)
	require.ErrorIs(t, err, kernelcache.ErrDuplicateRecord)
}

func TestSameKeyDifferentExtrasBothAdmitted(t *testing.T) {
	cache := kernelcache.New(1024, nil)
	key := testKey(2, 4, 4, 16, 8, 8)

	first := newRecord(key, 16, "level1")
	require.NoError(t, cache.Add("GEMM", first, nil))

	second := newRecord(key, 16, "level2")
	require.NoError(t, cache.Add("GEMM", second, nil))
}

func TestFootprintExceedingLimitRejected(t *testing.T) {
	cache := kernelcache.New(100, nil)
	record := newRecord(testKey(1), 200, nil)
	err := cache.Add("GEMM", record, nil)
	require.ErrorIs(t, err, kernelcache.ErrFootprintExceedsLimit)
	require.Equal(t, int64(100), cache.AvailableSize())
}

func TestCacheBoundHeldUnderEviction(t *testing.T) {
	cache := kernelcache.New(100, nil)

	for i := 0; i < 5; i++ {
		record := newRecord(testKey(1, int32(i)), 30, i)
		require.NoError(t, cache.Add("GEMM", record, nil))
		cache.Put(record) // drop the caller's own hold so it becomes evictable
		require.GreaterOrEqual(t, cache.AvailableSize(), int64(0))
	}
	require.GreaterOrEqual(t, cache.AvailableSize(), int64(0))
}

func TestExternallyReferencedRecordSurvivesPressure(t *testing.T) {
	cache := kernelcache.New(64, nil)
	pinnedKey := testKey(1, 1)
	pinned := newRecord(pinnedKey, 32, nil)
	require.NoError(t, cache.Add("GEMM", pinned, nil))
	// pinned keeps its Alloc hold: refs == 2 (cache + caller), not evictable.

	for i := 0; i < 3; i++ {
		record := newRecord(testKey(1, int32(i+10)), 32, i)
		if err := cache.Add("GEMM", record, nil); err == nil {
			cache.Put(record)
		}
	}

	found, ok, err := cache.Find("GEMM", pinnedKey, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)
	cache.Put(found)
}

func TestInvalidSolverIDRejected(t *testing.T) {
	cache := kernelcache.New(1024, nil)
	record := newRecord(kernelcache.Key{}, 16, nil)
	require.ErrorIs(t, cache.Add("", record, nil), kernelcache.ErrInvalidSolverID)

	_, _, err := cache.Find("", kernelcache.Key{}, nil, nil)
	require.ErrorIs(t, err, kernelcache.ErrInvalidSolverID)
}

func TestDestroyRunsEveryDestructorRegardlessOfRefcount(t *testing.T) {
	cache := kernelcache.New(1024, nil)
	count := 0
	for i := 0; i < 3; i++ {
		record := newRecord(testKey(1, int32(i)), 16, i)
		record.Destructor = func() { count++ }
		require.NoError(t, cache.Add("GEMM", record, nil))
		// Deliberately keep the Alloc hold, simulating callers still using their kernels.
	}
	cache.Destroy()
	require.Equal(t, 3, count)
	require.Equal(t, int64(1024), cache.AvailableSize())
}
