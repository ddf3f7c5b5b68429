package dispatch

import (
	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/pattern"
)

// cacheKey flattens a decomposition into the coarse kernelcache.Key used to bucket
// interchangeable kernels. It captures each SubproblemDimension's LDS tile width
// (BlockWidth), the single field most BLAS kernel variants actually differ on; a pattern's
// own extras struct carries whatever finer distinction the key alone cannot (transpose
// flags, memory-object kind, and so on), and the cache compares extras within a key bucket
// before treating two records as the same kernel.
func cacheKey(device compute.Device, context compute.Context, granularity pattern.ParallelismGranularity, subdims []pattern.SubproblemDimension) kernelcache.Key {
	widths := make([]int32, len(subdims))
	for i, d := range subdims {
		widths[i] = int32(d.BlockWidth)
	}
	return kernelcache.NewKey(device, context, granularity.Dimensionality, widths)
}
