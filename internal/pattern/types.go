package pattern

import "fmt"

// SubproblemDimension describes one axis of the tile a pattern's kernel processes per
// work-group: X and Y name the work-group's thread grid, BlockWidth the LDS tile's leading
// dimension, and ItemX/ItemY how many elements of the problem each thread covers along that
// axis. Values are validated at construction so a malformed decomposition can never reach
// kernel generation (spec §4.6 Supplemented features: first-class structs with invariant
// checks at construction).
type SubproblemDimension struct {
	X, Y             int
	BlockWidth       int
	ItemX, ItemY     int
}

// ErrInvalidSubproblemDimension is returned by NewSubproblemDimension for a dimension whose
// per-thread coverage does not evenly tile the work-group's thread grid.
var ErrInvalidSubproblemDimension = fmt.Errorf("pattern: invalid subproblem dimension")

// NewSubproblemDimension validates and constructs a SubproblemDimension. ItemX and ItemY
// must each be a positive multiple of X and Y respectively, so the tile a work-group covers
// is an exact multiple of its thread grid.
func NewSubproblemDimension(x, y, blockWidth, itemX, itemY int) (SubproblemDimension, error) {
	if x <= 0 || y <= 0 || blockWidth <= 0 || itemX <= 0 || itemY <= 0 {
		return SubproblemDimension{}, fmt.Errorf("%w: non-positive field", ErrInvalidSubproblemDimension)
	}
	if itemX%x != 0 || itemY%y != 0 {
		return SubproblemDimension{}, fmt.Errorf("%w: item coverage %dx%d is not a multiple of thread grid %dx%d",
			ErrInvalidSubproblemDimension, itemX, itemY, x, y)
	}
	return SubproblemDimension{X: x, Y: y, BlockWidth: blockWidth, ItemX: itemX, ItemY: itemY}, nil
}

// ThreadsPerGroup returns the number of work-items a work-group configured to this
// dimension's X/Y grid contains.
func (d SubproblemDimension) ThreadsPerGroup() int {
	return d.X * d.Y
}

// ParallelismGranularity describes the work-group/NDRange shape a pattern launches: up to
// three work-group sizes, the dimensionality actually in use, the device's native
// wavefront/warp width (for occupancy and reduction-stride decisions), and the total number
// of work-groups the decomposition requires.
type ParallelismGranularity struct {
	WorkGroupSizes   [3]uint64
	Dimensionality   int
	WavefrontWidth   uint32
	NumGroups        uint64
	MaxWorkGroupSize uintptr
}

// ErrInvalidGranularity is returned by NewParallelismGranularity when the requested
// work-group shape cannot be launched on a device limited to MaxWorkGroupSize threads.
var ErrInvalidGranularity = fmt.Errorf("pattern: invalid parallelism granularity")

// NewParallelismGranularity validates and constructs a ParallelismGranularity. sizes must
// have at most 3 entries; their product must not exceed maxWorkGroupSize.
func NewParallelismGranularity(sizes []uint64, wavefrontWidth uint32, numGroups uint64, maxWorkGroupSize uintptr) (ParallelismGranularity, error) {
	if len(sizes) == 0 || len(sizes) > 3 {
		return ParallelismGranularity{}, fmt.Errorf("%w: dimensionality %d out of range 1..3", ErrInvalidGranularity, len(sizes))
	}
	var g ParallelismGranularity
	product := uint64(1)
	for i, s := range sizes {
		if s == 0 {
			return ParallelismGranularity{}, fmt.Errorf("%w: zero-sized work-group axis %d", ErrInvalidGranularity, i)
		}
		g.WorkGroupSizes[i] = s
		product *= s
	}
	if uintptr(product) > maxWorkGroupSize {
		return ParallelismGranularity{}, fmt.Errorf("%w: work-group size %d exceeds device limit %d",
			ErrInvalidGranularity, product, maxWorkGroupSize)
	}
	g.Dimensionality = len(sizes)
	g.WavefrontWidth = wavefrontWidth
	g.NumGroups = numGroups
	g.MaxWorkGroupSize = maxWorkGroupSize
	return g, nil
}

// TotalWorkGroupSize returns the product of the in-use WorkGroupSizes entries.
func (g ParallelismGranularity) TotalWorkGroupSize() uint64 {
	total := uint64(1)
	for i := 0; i < g.Dimensionality; i++ {
		total *= g.WorkGroupSizes[i]
	}
	return total
}

// Performance ranks how well a pattern is expected to run given a particular call's shape
// and device flags. Patterns reporting Unsupported are excluded from Registry.Rank
// entirely; the rest are ordered Best first.
type Performance int

// Recognized Performance values, ordered worst to best except for Unsupported which is
// excluded from ranking regardless of its numeric position.
const (
	Unsupported Performance = iota
	Poor
	Average
	Good
	Best
)

func (p Performance) String() string {
	switch p {
	case Unsupported:
		return "unsupported"
	case Poor:
		return "poor"
	case Average:
		return "average"
	case Good:
		return "good"
	case Best:
		return "best"
	default:
		return fmt.Sprintf("Performance(%d)", int(p))
	}
}

// DecompMode selects what CheckCalcDecomp does with the caller-provided granularity and
// subdims: Validate checks an explicit, caller-specified decomposition for fitness: Compute
// fills in a decomposition the pattern chooses itself.
type DecompMode int

// Recognized DecompMode values.
const (
	DecompValidate DecompMode = iota
	DecompCompute
)

// Flags summarizes a pattern's static capabilities, independent of any one call's shape:
// which problem dimensionalities it handles and whether it requires image-backed operands.
type Flags struct {
	Dimensionalities []int
	ImageBacked      bool
}

// Supports reports whether dim is one of Flags' supported dimensionalities.
func (f Flags) Supports(dim int) bool {
	for _, d := range f.Dimensionalities {
		if d == dim {
			return true
		}
	}
	return false
}

// ImagePacking describes how ImgPackMode wants a subdimension's tile packed into a scratch
// image: which data operand it applies to, the number of scalar elements packed per image
// texel (the "rate"), and the axis order elements are packed in.
type ImagePacking struct {
	DataID      int
	OutputRate  int
	OutputOrder int
}

// DataID values a Pattern's ImgPackMode may return, naming which CallParams operand the
// packing applies to. Only one operand is ever packed per call: the dispatcher stages
// exactly the operand DataID names through a scratch image before binding kernel arguments.
const (
	ImagePackDataA = iota
	ImagePackDataB
	ImagePackDataC
)
