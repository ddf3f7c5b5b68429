package patterns

import (
	"fmt"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/pattern"
	"github.com/opencl-go/clblas/internal/template"
)

// saxpyScalar is the single-work-item-per-element strategy for AXPY: no LDS staging, one
// thread per vector element, strided by IncX/IncY. It is the Level-1 counterpart to
// sgemmTile's Level-3 tiling, exercising %VLOAD/%VSTORE instead of the %MAD-only path a
// tile kernel needs.
type saxpyScalar struct{}

// NewSaxpyScalar constructs the single registered strategy for Saxpy.
func NewSaxpyScalar() pattern.Pattern {
	return saxpyScalar{}
}

const saxpyEntryName = "clblas_saxpy_scalar"

const saxpySourceTemplate = `__kernel void ` + saxpyEntryName + `(
    uint n,
    %TYPE alpha,
    __global %TYPE* x, uint incx, uint offx,
    __global %TYPE* y, uint incy, uint offy)
{
    uint gid = get_global_id(0);
    if (gid >= n) return;
    uint ix = offx + gid * incx;
    uint iy = offy + gid * incy;
    %TYPE xv;
    %VLOAD(xv, ix, x)
    %TYPE yv;
    %VLOAD(yv, iy, y)
    %TYPE result;
    %MAD(result, alpha, xv, yv)
    %VSTORE(result, iy, y)
}
`

func (saxpyScalar) Name() string { return "saxpy-scalar" }

func (saxpyScalar) GenKernel(dst []byte, _ []pattern.SubproblemDimension, granularity pattern.ParallelismGranularity, extra interface{}) (int, error) {
	if extra != nil {
		return -1, fmt.Errorf("%w: saxpy-scalar takes no extras, got %T", ErrInvalidExtras, extra)
	}
	engine, err := template.New(dtype.RealSingle, 1, int(granularity.TotalWorkGroupSize()), granularity.WavefrontWidth, nil)
	if err != nil {
		return -1, err
	}
	return engine.Generate(saxpySourceTemplate, dst)
}

func (saxpyScalar) AssignKargs(params pattern.CallParams, extra interface{}) ([]pattern.KArg, error) {
	if extra != nil {
		return nil, fmt.Errorf("%w: saxpy-scalar takes no extras, got %T", ErrInvalidExtras, extra)
	}
	alpha, ok := params.Alpha.(float32)
	if !ok {
		return nil, fmt.Errorf("%w: alpha", ErrInvalidScalarType)
	}
	return []pattern.KArg{
		{Index: 0, Value: encodeUint32(params.N)},
		{Index: 1, Value: encodeFloat32(alpha)},
		{Index: 2, Value: params.X},
		{Index: 3, Value: encodeUint32(params.IncX)},
		{Index: 4, Value: encodeUint32(params.OffA)},
		{Index: 5, Value: params.Y},
		{Index: 6, Value: encodeUint32(params.IncY)},
		{Index: 7, Value: encodeUint32(params.OffB)},
	}, nil
}

func (saxpyScalar) IsFitToLDS([]pattern.SubproblemDimension, dtype.ElementType, uint64) bool {
	return true // no local memory is staged
}

func (saxpyScalar) GetPatternPerf(flags pattern.Flags, params pattern.CallParams) pattern.Performance {
	if !flags.Supports(1) {
		return pattern.Unsupported
	}
	if params.N <= 0 || params.IncX == 0 || params.IncY == 0 {
		return pattern.Unsupported
	}
	return pattern.Best
}

func (saxpyScalar) InnerDecompositionAxis(pattern.CallParams) int { return 0 }

func (saxpyScalar) CalcThreads(out []uint64, _ []pattern.SubproblemDimension, _ pattern.ParallelismGranularity, params pattern.CallParams, extra interface{}) error {
	if len(out) != 1 {
		return fmt.Errorf("patterns: saxpy-scalar requires a 1-dimensional NDRange")
	}
	const wgSize = 64
	out[0] = roundUp(uint64(params.N), wgSize)
	return nil
}

func (saxpyScalar) ImgPackMode(interface{}, []pattern.SubproblemDimension) (pattern.ImagePacking, bool) {
	return pattern.ImagePacking{}, false
}

func (saxpyScalar) GetFlags() pattern.Flags {
	return pattern.Flags{Dimensionalities: []int{1}}
}

func (saxpyScalar) FixupArgs(*pattern.CallParams, *[]pattern.SubproblemDimension, interface{}) error {
	return nil
}

func (saxpyScalar) GetDefaultDecomp(n int, params pattern.CallParams) (pattern.ParallelismGranularity, []pattern.SubproblemDimension, error) {
	const wgSize = 64
	subdim, err := pattern.NewSubproblemDimension(wgSize, 1, wgSize, wgSize, 1)
	if err != nil {
		return pattern.ParallelismGranularity{}, nil, err
	}
	groups := roundUp(uint64(params.N), wgSize) / wgSize
	granularity, err := pattern.NewParallelismGranularity([]uint64{wgSize}, 64, groups, 1024)
	if err != nil {
		return pattern.ParallelismGranularity{}, nil, err
	}
	return granularity, []pattern.SubproblemDimension{subdim}, nil
}

func (saxpyScalar) CheckCalcDecomp(_ pattern.DecompMode, granularity *pattern.ParallelismGranularity, subdims *[]pattern.SubproblemDimension, _ int, _ dtype.ElementType) error {
	if granularity.Dimensionality != 1 {
		return fmt.Errorf("patterns: saxpy-scalar requires a 1-dimensional decomposition")
	}
	if len(*subdims) == 0 {
		return fmt.Errorf("patterns: saxpy-scalar requires a subproblem dimension")
	}
	return nil
}

func (saxpyScalar) SetBuildOptions(buildOptions string, _ pattern.CallParams) (string, error) {
	return buildOptions, nil
}

func (saxpyScalar) SelectVectorization(_ pattern.CallParams, _ int) int { return 1 }

func (saxpyScalar) ExtrasPredicate() kernelcache.ExtrasPredicate { return kernelcache.DefaultExtrasPredicate }

func (saxpyScalar) KernelEntryPoints(extra interface{}) (map[string]pattern.KernelEntryPoint, error) {
	if extra != nil {
		return nil, fmt.Errorf("%w: saxpy-scalar takes no extras, got %T", ErrInvalidExtras, extra)
	}
	return map[string]pattern.KernelEntryPoint{
		saxpyEntryName: {ArgCount: 8, Func: saxpyExec},
	}, nil
}

// saxpyExec computes y[offy + i*incy] = alpha*x[offx + i*incx] + y[offy + i*incy] for
// every i in [0, n), standing in for the compiled kernel the generated source represents.
func saxpyExec(ctx *compute.KernelExecContext) error {
	nRaw, err := ctx.Scalar(0)
	if err != nil {
		return err
	}
	alphaRaw, err := ctx.Scalar(1)
	if err != nil {
		return err
	}
	x, err := ctx.Buffer(2)
	if err != nil {
		return err
	}
	incxRaw, err := ctx.Scalar(3)
	if err != nil {
		return err
	}
	offxRaw, err := ctx.Scalar(4)
	if err != nil {
		return err
	}
	y, err := ctx.Buffer(5)
	if err != nil {
		return err
	}
	incyRaw, err := ctx.Scalar(6)
	if err != nil {
		return err
	}
	offyRaw, err := ctx.Scalar(7)
	if err != nil {
		return err
	}

	n := int(getU32(nRaw))
	alpha := getF32Scalar(alphaRaw)
	incx, offx := int(getU32(incxRaw)), int(getU32(offxRaw))
	incy, offy := int(getU32(incyRaw)), int(getU32(offyRaw))

	for i := 0; i < n; i++ {
		ix := offx + i*incx
		iy := offy + i*incy
		setF32(y, iy, alpha*getF32(x, ix)+getF32(y, iy))
	}
	return nil
}
