package pattern

import (
	"sort"
	"sync"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/launch"
)

// Pattern is one strategy for executing a BLAS function: a kernel-source generator paired
// with the decomposition, argument-binding, and capability-reporting logic that strategy
// needs. A BLAS function typically registers several patterns (e.g. an LDS-blocked tile
// pattern and a simple one-thread-per-output fallback); Registry.Rank orders them by
// GetPatternPerf for a given call so the dispatcher (component C10) can try the best-rated
// one first and fall back down the list on failure.
//
// Implementations share one "extras" value per BLAS function: a small struct describing
// whatever the generated kernel source depends on beyond the (device, context,
// dimensionality, subdims) kernelcache.Key already captures (e.g. transpose flags, a
// work-per-thread tile shape). The kernel cache compares extras with ExtrasPredicate, or
// byte-for-byte via kernelcache.DefaultExtrasPredicate if a pattern returns nil.
type Pattern interface {
	// Name identifies the pattern for logging and cache solver-id namespacing.
	Name() string

	// GenKernel writes the generated OpenCL C source for subdims/granularity/extra into
	// dst and returns the number of bytes written. As with template.Engine.Generate,
	// calling GenKernel with dst == nil computes and returns the required size without
	// mutating any persistent dedup state.
	GenKernel(dst []byte, subdims []SubproblemDimension, granularity ParallelismGranularity, extra interface{}) (int, error)

	// AssignKargs produces the ordered kernel argument list for params/extra.
	AssignKargs(params CallParams, extra interface{}) ([]KArg, error)

	// IsFitToLDS reports whether subdims' tile fits within a device's ldsSize local
	// memory, for elem-typed operands.
	IsFitToLDS(subdims []SubproblemDimension, elem dtype.ElementType, ldsSize uint64) bool

	// GetPatternPerf rates how well this pattern is expected to perform for params given
	// the BLAS function's static flags. Unsupported excludes it from Rank entirely.
	GetPatternPerf(flags Flags, params CallParams) Performance

	// InnerDecompositionAxis names which of params' dimensions (by index, pattern-defined)
	// the work-group's inner (fastest-varying) axis should decompose.
	InnerDecompositionAxis(params CallParams) int

	// CalcThreads fills out with the global NDRange size implied by subdims/granularity for
	// params/extra.
	CalcThreads(out []uint64, subdims []SubproblemDimension, granularity ParallelismGranularity, params CallParams, extra interface{}) error

	// ImgPackMode reports how subdims' tile should be packed into a scratch image, or
	// ok == false if this pattern never uses image-backed operands.
	ImgPackMode(extra interface{}, subdims []SubproblemDimension) (packing ImagePacking, ok bool)

	// GetFlags reports this pattern's static capabilities.
	GetFlags() Flags

	// FixupArgs adjusts params and subdims in place for quirks this pattern needs
	// accounted for before decomposition (e.g. swapping M/N for a transposed operand).
	FixupArgs(params *CallParams, subdims *[]SubproblemDimension, extra interface{}) error

	// GetDefaultDecomp produces this pattern's preferred granularity and subdims for a
	// problem of size n, when the caller did not request an explicit decomposition.
	GetDefaultDecomp(n int, params CallParams) (ParallelismGranularity, []SubproblemDimension, error)

	// CheckCalcDecomp validates (mode == DecompValidate) or computes in place
	// (mode == DecompCompute) granularity/subdims for a problem of size n and element
	// type elem.
	CheckCalcDecomp(mode DecompMode, granularity *ParallelismGranularity, subdims *[]SubproblemDimension, n int, elem dtype.ElementType) error

	// SetBuildOptions appends any pattern-specific -D defines this kernel's source needs
	// to the build options string already assembled for params.
	SetBuildOptions(buildOptions string, params CallParams) (string, error)

	// SelectVectorization picks the vector width (in elements) to template the kernel
	// with, given the device's native vectorLen and params' shape.
	SelectVectorization(params CallParams, vectorLen int) int

	// ExtrasPredicate returns the comparison the kernel cache should use for this
	// pattern's extras values, or nil to use kernelcache.DefaultExtrasPredicate.
	ExtrasPredicate() kernelcache.ExtrasPredicate

	// KernelEntryPoints returns, keyed by entry point name, the Go closures that stand in
	// for what a real device compiler would have produced from this pattern's generated
	// source for extra. The dispatcher attaches each one to the built Program via
	// compute.AttachKernelImplementation immediately after a successful build, before the
	// kernel is cached or launched.
	KernelEntryPoints(extra interface{}) (map[string]KernelEntryPoint, error)
}

// KernelEntryPoint is one named kernel a Pattern's generated source declares: its argument
// count (as AttachKernelImplementation and compute.CreateKernel need) and the Go
// implementation standing in for its compiled body.
type KernelEntryPoint struct {
	ArgCount int
	Func     compute.KernelFunc
}

// KArg is one positional kernel argument AssignKargs produces: the zero-based argument
// index, the value to bind there, and an optional host staging buffer the launch engine
// (component C11) must copy to and/or from the device around kernel execution.
type KArg struct {
	Index   uint32
	Value   compute.ArgValue
	Staging *launch.Staging
}

// Registry holds the ordered set of patterns registered for each BLAS function name.
type Registry struct {
	mu         sync.RWMutex
	byFunction map[string][]Pattern
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byFunction: make(map[string][]Pattern)}
}

// Register adds pattern as a candidate strategy for function. Patterns are tried in Rank
// order, which is stable on registration order among equally-rated patterns, so callers
// should register their most specialized/fastest pattern first among ties.
func (r *Registry) Register(function string, p Pattern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byFunction[function] = append(r.byFunction[function], p)
}

// Patterns returns the patterns registered for function, in registration order, regardless
// of their fitness for any particular call.
func (r *Registry) Patterns(function string) []Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Pattern, len(r.byFunction[function]))
	copy(out, r.byFunction[function])
	return out
}

// Rank returns function's registered patterns capable of handling params (GetPatternPerf !=
// Unsupported), ordered best-performing first. Patterns of equal rating keep their relative
// registration order.
func (r *Registry) Rank(function string, params CallParams) []Pattern {
	r.mu.RLock()
	candidates := r.byFunction[function]
	r.mu.RUnlock()

	type scored struct {
		pattern Pattern
		perf    Performance
		order   int
	}
	var ranked []scored
	for i, p := range candidates {
		perf := p.GetPatternPerf(p.GetFlags(), params)
		if perf == Unsupported {
			continue
		}
		ranked = append(ranked, scored{pattern: p, perf: perf, order: i})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].perf != ranked[j].perf {
			return ranked[i].perf > ranked[j].perf
		}
		return ranked[i].order < ranked[j].order
	})
	out := make([]Pattern, len(ranked))
	for i, s := range ranked {
		out[i] = s.pattern
	}
	return out
}
