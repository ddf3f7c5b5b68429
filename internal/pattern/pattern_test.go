package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/pattern"
)

// fakePattern is a minimal Pattern stand-in used to exercise Registry ranking without any
// real kernel-generation logic.
type fakePattern struct {
	name string
	perf pattern.Performance
	// minN gates Unsupported for small problems, to let tests exercise per-call rating.
	minN int
}

func (f *fakePattern) Name() string { return f.name }

func (f *fakePattern) GenKernel([]byte, []pattern.SubproblemDimension, pattern.ParallelismGranularity, interface{}) (int, error) {
	return 0, nil
}

func (f *fakePattern) AssignKargs(pattern.CallParams, interface{}) ([]pattern.KArg, error) {
	return nil, nil
}

func (f *fakePattern) IsFitToLDS([]pattern.SubproblemDimension, dtype.ElementType, uint64) bool {
	return true
}

func (f *fakePattern) GetPatternPerf(_ pattern.Flags, params pattern.CallParams) pattern.Performance {
	if params.N < f.minN {
		return pattern.Unsupported
	}
	return f.perf
}

func (f *fakePattern) InnerDecompositionAxis(pattern.CallParams) int { return 0 }

func (f *fakePattern) CalcThreads([]uint64, []pattern.SubproblemDimension, pattern.ParallelismGranularity, pattern.CallParams, interface{}) error {
	return nil
}

func (f *fakePattern) ImgPackMode(interface{}, []pattern.SubproblemDimension) (pattern.ImagePacking, bool) {
	return pattern.ImagePacking{}, false
}

func (f *fakePattern) GetFlags() pattern.Flags {
	return pattern.Flags{Dimensionalities: []int{2}}
}

func (f *fakePattern) FixupArgs(*pattern.CallParams, *[]pattern.SubproblemDimension, interface{}) error {
	return nil
}

func (f *fakePattern) GetDefaultDecomp(n int, _ pattern.CallParams) (pattern.ParallelismGranularity, []pattern.SubproblemDimension, error) {
	g, err := pattern.NewParallelismGranularity([]uint64{16, 16}, 64, uint64(n), 1024)
	return g, nil, err
}

func (f *fakePattern) CheckCalcDecomp(pattern.DecompMode, *pattern.ParallelismGranularity, *[]pattern.SubproblemDimension, int, dtype.ElementType) error {
	return nil
}

func (f *fakePattern) SetBuildOptions(opts string, _ pattern.CallParams) (string, error) {
	return opts, nil
}

func (f *fakePattern) SelectVectorization(_ pattern.CallParams, vectorLen int) int { return vectorLen }

func (f *fakePattern) ExtrasPredicate() kernelcache.ExtrasPredicate { return nil }

func (f *fakePattern) KernelEntryPoints(interface{}) (map[string]pattern.KernelEntryPoint, error) {
	return nil, nil
}

func TestRegistryRankOrdersByPerformanceDescending(t *testing.T) {
	reg := pattern.NewRegistry()
	reg.Register("Sgemm", &fakePattern{name: "poor", perf: pattern.Poor})
	reg.Register("Sgemm", &fakePattern{name: "best", perf: pattern.Best})
	reg.Register("Sgemm", &fakePattern{name: "average", perf: pattern.Average})

	ranked := reg.Rank("Sgemm", pattern.CallParams{N: 100})
	require.Len(t, ranked, 3)
	require.Equal(t, "best", ranked[0].Name())
	require.Equal(t, "average", ranked[1].Name())
	require.Equal(t, "poor", ranked[2].Name())
}

func TestRegistryRankExcludesUnsupported(t *testing.T) {
	reg := pattern.NewRegistry()
	reg.Register("Sgemv", &fakePattern{name: "small-only", perf: pattern.Best, minN: 1000})
	reg.Register("Sgemv", &fakePattern{name: "always", perf: pattern.Average})

	ranked := reg.Rank("Sgemv", pattern.CallParams{N: 10})
	require.Len(t, ranked, 1)
	require.Equal(t, "always", ranked[0].Name())
}

func TestRegistryRankStableOnTies(t *testing.T) {
	reg := pattern.NewRegistry()
	reg.Register("Saxpy", &fakePattern{name: "first", perf: pattern.Good})
	reg.Register("Saxpy", &fakePattern{name: "second", perf: pattern.Good})

	ranked := reg.Rank("Saxpy", pattern.CallParams{N: 1})
	require.Len(t, ranked, 2)
	require.Equal(t, "first", ranked[0].Name())
	require.Equal(t, "second", ranked[1].Name())
}

func TestRegistryPatternsIsRegistrationOrderRegardlessOfFitness(t *testing.T) {
	reg := pattern.NewRegistry()
	reg.Register("Sdot", &fakePattern{name: "a", perf: pattern.Poor})
	reg.Register("Sdot", &fakePattern{name: "b", perf: pattern.Best, minN: 999999})

	all := reg.Patterns("Sdot")
	require.Len(t, all, 2)
	require.Equal(t, "a", all[0].Name())
	require.Equal(t, "b", all[1].Name())
}

func TestNewSubproblemDimensionValidatesItemCoverage(t *testing.T) {
	_, err := pattern.NewSubproblemDimension(8, 8, 64, 24, 16)
	require.NoError(t, err)

	_, err = pattern.NewSubproblemDimension(8, 8, 64, 20, 16)
	require.ErrorIs(t, err, pattern.ErrInvalidSubproblemDimension)

	_, err = pattern.NewSubproblemDimension(0, 8, 64, 8, 8)
	require.ErrorIs(t, err, pattern.ErrInvalidSubproblemDimension)
}

func TestNewParallelismGranularityRejectsOversizedWorkGroup(t *testing.T) {
	g, err := pattern.NewParallelismGranularity([]uint64{16, 16}, 64, 4, 256)
	require.NoError(t, err)
	require.Equal(t, uint64(256), g.TotalWorkGroupSize())

	_, err = pattern.NewParallelismGranularity([]uint64{32, 32}, 64, 4, 256)
	require.ErrorIs(t, err, pattern.ErrInvalidGranularity)

	_, err = pattern.NewParallelismGranularity([]uint64{1, 1, 1, 1}, 64, 4, 256)
	require.ErrorIs(t, err, pattern.ErrInvalidGranularity)
}

func TestFlagsSupports(t *testing.T) {
	f := pattern.Flags{Dimensionalities: []int{1, 2}}
	require.True(t, f.Supports(1))
	require.True(t, f.Supports(2))
	require.False(t, f.Supports(3))
}
