package patterns

import (
	"fmt"
	"strconv"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/pattern"
	"github.com/opencl-go/clblas/internal/template"
)

// GemmExtras distinguishes cached GEMM kernel variants beyond the (device, context,
// dimensionality, subdims) kernelcache.Key: the storage order and transpose flags the
// generated source is specialized for. A caller dispatching Sgemm/Dgemm supplies one of
// these as dispatch.Request.Extra.
type GemmExtras struct {
	RowMajor       bool
	TransA, TransB bool
}

func gemmExtras(extra interface{}) (GemmExtras, error) {
	if extra == nil {
		return GemmExtras{RowMajor: true}, nil
	}
	e, ok := extra.(GemmExtras)
	if !ok {
		return GemmExtras{}, fmt.Errorf("%w: expected patterns.GemmExtras, got %T", ErrInvalidExtras, extra)
	}
	return e, nil
}

// gemmExtrasPredicate treats two GemmExtras as interchangeable only when their order and
// transpose flags match exactly; a kernel built for row-major cannot serve a column-major
// call even if the key's subdims happen to coincide.
func gemmExtrasPredicate(stored, query interface{}) int {
	s, sok := stored.(GemmExtras)
	q, qok := query.(GemmExtras)
	if sok && qok && s == q {
		return 0
	}
	return 1
}

// gemmIndexExpr builds the C indexing expression for an operand addressed by (primary,
// secondary) in BLAS-math terms (row/k for A, k/col for B, row/col for C), given the
// generated kernel's storage order and whether this operand is used transposed.
func gemmIndexExpr(primary, secondary, ld string, rowMajor, transposed bool) string {
	if transposed {
		primary, secondary = secondary, primary
	}
	if rowMajor {
		return fmt.Sprintf("(%s) * %s + (%s)", primary, ld, secondary)
	}
	return fmt.Sprintf("(%s) * %s + (%s)", secondary, ld, primary)
}

// sgemmTile is the LDS-blocked tile pattern for single-precision GEMM: one work-group per
// output tile, staging A and B tiles through local memory in %BLOCK-wide steps.
type sgemmTile struct{}

// NewSgemmTile constructs the single registered strategy for Sgemm. A second, unblocked
// fallback pattern belongs alongside it once one is needed for very small or oddly-shaped
// problems; for now this is the only strategy Sgemm ranks.
func NewSgemmTile() pattern.Pattern {
	return sgemmTile{}
}

const sgemmEntryName = "clblas_sgemm_tile"

const sgemmSourceTemplate = `__kernel void ` + sgemmEntryName + `(
    uint M, uint N, uint K,
    %TYPE alpha,
    __global %TYPE* A, uint lda,
    __global %TYPE* B, uint ldb,
    %TYPE beta,
    __global %TYPE* C, uint ldc,
    uint offA, uint offB, uint offC)
{
    uint row = get_global_id(0);
    uint col = get_global_id(1);
    uint lr = get_local_id(0);
    uint lc = get_local_id(1);

    __local %TYPE tileA[%BLOCK][%BLOCK];
    __local %TYPE tileB[%BLOCK][%BLOCK];

    %TYPE acc = 0;
    for (uint kb = 0; kb < K; kb += %BLOCK) {
        uint aK = kb + lc;
        uint bK = kb + lr;
        tileA[lr][lc] = (row < M && aK < K) ? A[%A_INDEX] : 0;
        tileB[lr][lc] = (bK < K && col < N) ? B[%B_INDEX] : 0;
        barrier(CLK_LOCAL_MEM_FENCE);

        for (uint kk = 0; kk < %BLOCK; kk++) {
            %TYPE a = tileA[lr][kk];
            %TYPE b = tileB[kk][lc];
            %MAD(acc, a, b, acc)
        }
        barrier(CLK_LOCAL_MEM_FENCE);
    }

    if (row < M && col < N) {
        %TYPE scaledC = 0;
        %TYPE existing = C[%C_INDEX];
        %MUL(scaledC, beta, existing)
        %TYPE scaledAcc = 0;
        %MUL(scaledAcc, alpha, acc)
        %ADD(scaledC, scaledC, scaledAcc)
        C[%C_INDEX] = scaledC;
    }
}
`

func (sgemmTile) Name() string { return "sgemm-tile" }

func (p sgemmTile) blockWidth(subdims []pattern.SubproblemDimension) int {
	if len(subdims) == 0 {
		return 16
	}
	return subdims[0].BlockWidth
}

func (p sgemmTile) GenKernel(dst []byte, subdims []pattern.SubproblemDimension, granularity pattern.ParallelismGranularity, extra interface{}) (int, error) {
	extras, err := gemmExtras(extra)
	if err != nil {
		return -1, err
	}
	engine, err := template.New(dtype.RealSingle, 1, int(granularity.TotalWorkGroupSize()), granularity.WavefrontWidth, nil)
	if err != nil {
		return -1, err
	}
	block := p.blockWidth(subdims)
	engine.Put("%BLOCK", strconv.Itoa(block))
	engine.Put("%A_INDEX", "offA + ("+gemmIndexExpr("row", "aK", "lda", extras.RowMajor, extras.TransA)+")")
	engine.Put("%B_INDEX", "offB + ("+gemmIndexExpr("bK", "col", "ldb", extras.RowMajor, extras.TransB)+")")
	engine.Put("%C_INDEX", "offC + ("+gemmIndexExpr("row", "col", "ldc", extras.RowMajor, false)+")")

	n, err := engine.Generate(sgemmSourceTemplate, dst)
	if err != nil {
		return -1, err
	}
	return n, nil
}

func (sgemmTile) AssignKargs(params pattern.CallParams, extra interface{}) ([]pattern.KArg, error) {
	if _, err := gemmExtras(extra); err != nil {
		return nil, err
	}
	alpha, ok := params.Alpha.(float32)
	if !ok {
		return nil, fmt.Errorf("%w: alpha", ErrInvalidScalarType)
	}
	beta, ok := params.Beta.(float32)
	if !ok {
		return nil, fmt.Errorf("%w: beta", ErrInvalidScalarType)
	}
	return []pattern.KArg{
		{Index: 0, Value: encodeUint32(params.M)},
		{Index: 1, Value: encodeUint32(params.N)},
		{Index: 2, Value: encodeUint32(params.K)},
		{Index: 3, Value: encodeFloat32(alpha)},
		{Index: 4, Value: params.A},
		{Index: 5, Value: encodeUint32(params.LDA)},
		{Index: 6, Value: params.B},
		{Index: 7, Value: encodeUint32(params.LDB)},
		{Index: 8, Value: encodeFloat32(beta)},
		{Index: 9, Value: params.C},
		{Index: 10, Value: encodeUint32(params.LDC)},
		{Index: 11, Value: encodeUint32(params.OffA)},
		{Index: 12, Value: encodeUint32(params.OffB)},
		{Index: 13, Value: encodeUint32(params.OffC)},
	}, nil
}

func (sgemmTile) IsFitToLDS(subdims []pattern.SubproblemDimension, elem dtype.ElementType, ldsSize uint64) bool {
	desc, err := dtype.Describe(elem)
	if err != nil || len(subdims) == 0 {
		return false
	}
	block := uint64(subdims[0].BlockWidth)
	required := 2 * block * block * uint64(desc.ByteWidth) // tileA + tileB
	return required <= ldsSize
}

func (sgemmTile) GetPatternPerf(flags pattern.Flags, params pattern.CallParams) pattern.Performance {
	if !flags.Supports(2) {
		return pattern.Unsupported
	}
	if params.M <= 0 || params.N <= 0 || params.K <= 0 {
		return pattern.Unsupported
	}
	return pattern.Best
}

func (sgemmTile) InnerDecompositionAxis(pattern.CallParams) int { return 1 }

func (sgemmTile) CalcThreads(out []uint64, subdims []pattern.SubproblemDimension, granularity pattern.ParallelismGranularity, params pattern.CallParams, extra interface{}) error {
	if len(out) != 2 || len(subdims) == 0 {
		return fmt.Errorf("patterns: sgemm-tile requires a 2-dimensional NDRange")
	}
	block := uint64(subdims[0].BlockWidth)
	out[0] = roundUp(uint64(params.M), block)
	out[1] = roundUp(uint64(params.N), block)
	return nil
}

func roundUp(n, multiple uint64) uint64 {
	if multiple == 0 {
		return n
	}
	if rem := n % multiple; rem != 0 {
		return n + (multiple - rem)
	}
	return n
}

// ImgPackMode opts B into the scratch-image path: the reference library image-packs GEMM's
// B operand to trade a buffer fetch for a cached texture read on devices where that is
// faster. The dispatcher only ever acts on this when a library-context instance has wired a
// scratch-image pool in, so no further gating belongs here (spec's single-capability-bit
// redesign note).
func (sgemmTile) ImgPackMode(interface{}, []pattern.SubproblemDimension) (pattern.ImagePacking, bool) {
	return pattern.ImagePacking{DataID: pattern.ImagePackDataB, OutputRate: 1, OutputOrder: 0}, true
}

func (sgemmTile) GetFlags() pattern.Flags {
	return pattern.Flags{Dimensionalities: []int{2}}
}

func (sgemmTile) FixupArgs(*pattern.CallParams, *[]pattern.SubproblemDimension, interface{}) error {
	return nil
}

func (p sgemmTile) GetDefaultDecomp(n int, params pattern.CallParams) (pattern.ParallelismGranularity, []pattern.SubproblemDimension, error) {
	const block = 16
	subdim, err := pattern.NewSubproblemDimension(block, block, block, block, block)
	if err != nil {
		return pattern.ParallelismGranularity{}, nil, err
	}
	groupsM := roundUp(uint64(params.M), block) / block
	groupsN := roundUp(uint64(params.N), block) / block
	granularity, err := pattern.NewParallelismGranularity(
		[]uint64{block, block}, 64, groupsM*groupsN, 1024)
	if err != nil {
		return pattern.ParallelismGranularity{}, nil, err
	}
	return granularity, []pattern.SubproblemDimension{subdim}, nil
}

func (sgemmTile) CheckCalcDecomp(mode pattern.DecompMode, granularity *pattern.ParallelismGranularity, subdims *[]pattern.SubproblemDimension, n int, elem dtype.ElementType) error {
	if granularity.Dimensionality != 2 {
		return fmt.Errorf("patterns: sgemm-tile requires a 2-dimensional decomposition")
	}
	if len(*subdims) == 0 {
		return fmt.Errorf("patterns: sgemm-tile requires a subproblem dimension")
	}
	return nil
}

func (sgemmTile) SetBuildOptions(buildOptions string, params pattern.CallParams) (string, error) {
	return buildOptions, nil
}

func (sgemmTile) SelectVectorization(_ pattern.CallParams, _ int) int { return 1 }

func (sgemmTile) ExtrasPredicate() kernelcache.ExtrasPredicate { return gemmExtrasPredicate }

func (sgemmTile) KernelEntryPoints(extra interface{}) (map[string]pattern.KernelEntryPoint, error) {
	extras, err := gemmExtras(extra)
	if err != nil {
		return nil, err
	}
	return map[string]pattern.KernelEntryPoint{
		sgemmEntryName: {
			ArgCount: 14,
			Func:     sgemmExec(extras),
		},
	}, nil
}

// sgemmExec returns the kernel implementation computing C = alpha*op(A)*op(B) + beta*C for
// the storage order and transpose flags baked into extras, operating directly on raw
// device-memory views (standing in for the compiled kernel the generated source above
// represents).
func sgemmExec(extras GemmExtras) compute.KernelFunc {
	return func(ctx *compute.KernelExecContext) error {
		mRaw, err := ctx.Scalar(0)
		if err != nil {
			return err
		}
		nRaw, err := ctx.Scalar(1)
		if err != nil {
			return err
		}
		kRaw, err := ctx.Scalar(2)
		if err != nil {
			return err
		}
		alphaRaw, err := ctx.Scalar(3)
		if err != nil {
			return err
		}
		a, err := ctx.Buffer(4)
		if err != nil {
			return err
		}
		ldaRaw, err := ctx.Scalar(5)
		if err != nil {
			return err
		}
		b, err := ctx.Buffer(6)
		if err != nil {
			return err
		}
		ldbRaw, err := ctx.Scalar(7)
		if err != nil {
			return err
		}
		betaRaw, err := ctx.Scalar(8)
		if err != nil {
			return err
		}
		c, err := ctx.Buffer(9)
		if err != nil {
			return err
		}
		ldcRaw, err := ctx.Scalar(10)
		if err != nil {
			return err
		}
		offARaw, err := ctx.Scalar(11)
		if err != nil {
			return err
		}
		offBRaw, err := ctx.Scalar(12)
		if err != nil {
			return err
		}
		offCRaw, err := ctx.Scalar(13)
		if err != nil {
			return err
		}

		m, n, k := int(getU32(mRaw)), int(getU32(nRaw)), int(getU32(kRaw))
		lda, ldb, ldc := int(getU32(ldaRaw)), int(getU32(ldbRaw)), int(getU32(ldcRaw))
		offA, offB, offC := int(getU32(offARaw)), int(getU32(offBRaw)), int(getU32(offCRaw))
		alpha, beta := getF32Scalar(alphaRaw), getF32Scalar(betaRaw)

		for row := 0; row < m; row++ {
			for col := 0; col < n; col++ {
				var acc float32
				for kk := 0; kk < k; kk++ {
					acc += getF32(a, offA+gemmIndex(row, kk, lda, extras.RowMajor, extras.TransA)) *
						getF32(b, offB+gemmIndex(kk, col, ldb, extras.RowMajor, extras.TransB))
				}
				cIdx := offC + gemmIndex(row, col, ldc, extras.RowMajor, false)
				setF32(c, cIdx, alpha*acc+beta*getF32(c, cIdx))
			}
		}
		return nil
	}
}

// gemmIndex is gemmIndexExpr's runtime counterpart: it computes the same flattened offset
// the generated kernel's %A_INDEX/%B_INDEX/%C_INDEX expressions describe, for operands
// addressed by (primary, secondary) in BLAS-math terms.
func gemmIndex(primary, secondary, ld int, rowMajor, transposed bool) int {
	if transposed {
		primary, secondary = secondary, primary
	}
	if rowMajor {
		return primary*ld + secondary
	}
	return secondary*ld + primary
}
