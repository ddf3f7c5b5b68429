package dispatch

import (
	stderrors "errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/buildengine"
	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/eventsbuf"
	"github.com/opencl-go/clblas/internal/identity"
	"github.com/opencl-go/clblas/internal/imagepool"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/launch"
	"github.com/opencl-go/clblas/internal/pattern"
)

// Dispatcher runs the solution sequence (spec §4.7) for BLAS calls: it owns no per-call
// state of its own, only the shared caches and registry every call consults. Images and
// Events are optional: a caller that never sets them gets a dispatcher that never stages a
// scratch image and never records a completion event, exactly as if those process-wide
// resources did not exist.
type Dispatcher struct {
	Identity *identity.Cache
	Cache    *kernelcache.Cache
	Registry *pattern.Registry
	Log      *logrus.Logger
	Images   *imagepool.Pool
	Events   *eventsbuf.Buffer
}

// New constructs a Dispatcher. If log is nil, a discarding logger is used.
func New(identityCache *identity.Cache, cache *kernelcache.Cache, registry *pattern.Registry, log *logrus.Logger) *Dispatcher {
	if log == nil {
		log = logrus.New()
		log.SetOutput(discardWriter{})
	}
	return &Dispatcher{Identity: identityCache, Cache: cache, Registry: registry, Log: log}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Decomposition is a caller-chosen granularity/subdims pair, validated (not computed) via a
// pattern's CheckCalcDecomp in DecompValidate mode.
type Decomposition struct {
	Granularity pattern.ParallelismGranularity
	Subdims     []pattern.SubproblemDimension
}

// Request is everything Call needs beyond the shared caches: which BLAS function to run, on
// which device/context/queue, with what call shape and element type, that function's
// pattern-family-specific extras, the axis size pattern decomposition is keyed on, and an
// optional caller-chosen explicit decomposition (nil to accept each pattern's own default).
type Request struct {
	Function string
	Device   compute.Device
	Context  compute.Context
	Queue    compute.CommandQueue
	Params   pattern.CallParams
	Elem     dtype.ElementType
	Extra    interface{}
	N        int
	Explicit *Decomposition
	Async    bool
	Profile  bool
}

// Call runs the full solution sequence for req and returns the completion event and launch
// result. Validation failures are terminal. Pattern generation/build failures cascade to the
// next ranked pattern; exhausting every candidate returns ErrPatternsExhausted wrapping one
// *multierror.Error entry per attempt. Launch failures are never cascaded: they are returned
// synchronously as a *launch.Error.
func (d *Dispatcher) Call(req Request) (compute.Event, launch.Result, error) {
	if err := Validate(req.Params); err != nil {
		return compute.Event{}, launch.Result{}, err
	}

	devIdentity, err := d.Identity.Lookup(req.Device)
	if err != nil {
		return compute.Event{}, launch.Result{}, fmt.Errorf("dispatch: identify device: %w", err)
	}
	elemDesc, err := dtype.Describe(req.Elem)
	if err != nil {
		return compute.Event{}, launch.Result{}, err
	}
	if elemDesc.IsDouble && !devIdentity.NativeDouble {
		return compute.Event{}, launch.Result{}, fmt.Errorf("%w: %s", ErrUnsupportedPrecision, req.Elem)
	}

	registered := d.Registry.Patterns(req.Function)
	if len(registered) == 0 {
		return compute.Event{}, launch.Result{}, fmt.Errorf("%w: %s", ErrNoPatternRegistered, req.Function)
	}
	ranked := d.Registry.Rank(req.Function, req.Params)
	if len(ranked) == 0 {
		return compute.Event{}, launch.Result{}, fmt.Errorf("%w: %s", ErrNoPatternSupportsCall, req.Function)
	}

	var attempts *multierror.Error
	for _, p := range ranked {
		event, result, err := d.attempt(p, devIdentity, req)
		if err == nil {
			d.recordEvent(event)
			return event, result, nil
		}
		var launchErr *launch.Error
		if stderrors.As(err, &launchErr) {
			return compute.Event{}, launch.Result{}, err
		}
		attempts = multierror.Append(attempts, fmt.Errorf("%s: %w", p.Name(), err))
		d.Log.WithFields(logrus.Fields{
			"function": req.Function,
			"pattern":  p.Name(),
		}).Warn("pattern failed, falling back: " + err.Error())
	}
	return compute.Event{}, launch.Result{}, fmt.Errorf("%w: %w", ErrPatternsExhausted, attempts.ErrorOrNil())
}

// attempt runs the decompose -> find-or-build -> bind -> launch sequence for one pattern.
// Any error it returns other than a *launch.Error is cascade-eligible: the caller should try
// the next ranked pattern.
func (d *Dispatcher) attempt(p pattern.Pattern, devIdentity identity.Identity, req Request) (compute.Event, launch.Result, error) {
	granularity, subdims, err := d.decompose(p, req)
	if err != nil {
		return compute.Event{}, launch.Result{}, fmt.Errorf("decompose: %w", err)
	}
	if err := p.FixupArgs(&req.Params, &subdims, req.Extra); err != nil {
		return compute.Event{}, launch.Result{}, fmt.Errorf("fixup args: %w", err)
	}
	if !p.IsFitToLDS(subdims, req.Elem, devIdentity.LDSByteCapacity) {
		return compute.Event{}, launch.Result{}, fmt.Errorf("%s: decomposition exceeds device LDS capacity", p.Name())
	}

	if packing, ok := p.ImgPackMode(req.Extra, subdims); ok && d.Images != nil {
		image, release, err := d.stageOperandImage(req, packing)
		if err != nil {
			return compute.Event{}, launch.Result{}, fmt.Errorf("stage scratch image: %w", err)
		}
		defer release()
		switch packing.DataID {
		case pattern.ImagePackDataA:
			req.Params.A = image
		case pattern.ImagePackDataB:
			req.Params.B = image
		case pattern.ImagePackDataC:
			req.Params.C = image
		}
	}

	key := cacheKey(req.Device, req.Context, granularity, subdims)
	solverID := req.Function + ":" + p.Name()

	record, found, err := d.Cache.Find(solverID, key, req.Extra, p.ExtrasPredicate())
	if err != nil {
		return compute.Event{}, launch.Result{}, fmt.Errorf("cache find: %w", err)
	}
	if !found {
		record, err = d.buildAndCache(p, req, key, solverID, subdims, granularity)
		if err != nil {
			return compute.Event{}, launch.Result{}, err
		}
	}
	defer d.Cache.Put(record)

	kernel, err := compute.CreateKernel(record.Program, record.KernelName)
	if err != nil {
		return compute.Event{}, launch.Result{}, fmt.Errorf("create kernel: %w", err)
	}
	defer compute.ReleaseKernel(kernel)

	kargs, err := p.AssignKargs(req.Params, req.Extra)
	if err != nil {
		return compute.Event{}, launch.Result{}, fmt.Errorf("assign kargs: %w", err)
	}
	global := make([]uint64, granularity.Dimensionality)
	if err := p.CalcThreads(global, subdims, granularity, req.Params, req.Extra); err != nil {
		return compute.Event{}, launch.Result{}, fmt.Errorf("calc threads: %w", err)
	}

	args := make([]launch.Arg, len(kargs))
	for _, ka := range kargs {
		args[ka.Index] = launch.Arg{Value: ka.Value, Staging: ka.Staging}
	}

	event, result, err := launch.Run(launch.Descriptor{
		Kernel:   kernel,
		Queue:    req.Queue,
		Args:     args,
		Global:   global,
		Local:    granularity.WorkGroupSizes[:granularity.Dimensionality],
		WaitList: req.Params.WaitList,
		Async:    req.Async,
		Profile:  req.Profile,
	})
	if err != nil {
		return compute.Event{}, launch.Result{}, err
	}
	return event, result, nil
}

// operandFor returns the CallParams operand a packing's DataID names.
func operandFor(params pattern.CallParams, dataID int) compute.MemObject {
	switch dataID {
	case pattern.ImagePackDataA:
		return params.A
	case pattern.ImagePackDataC:
		return params.C
	default:
		return params.B
	}
}

// stageOperandImage copies the device bytes backing the operand packing names into a
// pool-managed scratch image sized to hold them, returning the image to substitute as that
// operand's kernel argument and a release func to return the image to the pool once the
// launch completes. It leaves the original operand untouched; the caller decides whether to
// swap it in.
func (d *Dispatcher) stageOperandImage(req Request, packing pattern.ImagePacking) (compute.MemObject, func(), error) {
	operand := operandFor(req.Params, packing.DataID)
	size, err := compute.MemObjectSize(operand)
	if err != nil {
		return compute.MemObject{}, nil, err
	}
	width := uintptr(req.Params.LDB)
	if width == 0 {
		width = 1
	}
	height := (size + width*4 - 1) / (width * 4)
	if height == 0 {
		height = 1
	}

	image, found, err := d.Images.Get(req.Context, req.Device, width*height, width*height, width)
	if err != nil {
		return compute.MemObject{}, nil, err
	}
	if !found {
		image, err = d.Images.Add(req.Context, width, height)
		if err != nil {
			return compute.MemObject{}, nil, err
		}
		image, found, err = d.Images.Get(req.Context, req.Device, width*height, width*height, width)
		if err != nil {
			return compute.MemObject{}, nil, err
		}
		if !found {
			return compute.MemObject{}, nil, fmt.Errorf("dispatch: scratch image unavailable immediately after Add")
		}
	}

	staged := make([]byte, size)
	if err := compute.EnqueueReadBuffer(req.Queue, operand, true, 0, size, staged, nil, nil); err != nil {
		_ = d.Images.Put(req.Device, image)
		return compute.MemObject{}, nil, err
	}
	if err := compute.EnqueueWriteBuffer(req.Queue, image, true, 0, size, staged, nil, nil); err != nil {
		_ = d.Images.Put(req.Device, image)
		return compute.MemObject{}, nil, err
	}
	release := func() { _ = d.Images.Put(req.Device, image) }
	return image, release, nil
}

// recordEvent appends event to the decompose-events buffer if one is attached. It is a
// no-op when Events is nil, which is the case for any Dispatcher that never opted into the
// process-wide events buffer.
func (d *Dispatcher) recordEvent(event compute.Event) {
	if d.Events == nil {
		return
	}
	d.Events.Set(d.Events.Alloc(), event)
}

func (d *Dispatcher) decompose(p pattern.Pattern, req Request) (pattern.ParallelismGranularity, []pattern.SubproblemDimension, error) {
	if req.Explicit != nil {
		granularity := req.Explicit.Granularity
		subdims := req.Explicit.Subdims
		if err := p.CheckCalcDecomp(pattern.DecompValidate, &granularity, &subdims, req.N, req.Elem); err != nil {
			return pattern.ParallelismGranularity{}, nil, err
		}
		return granularity, subdims, nil
	}
	return p.GetDefaultDecomp(req.N, req.Params)
}

// buildAndCache generates, builds, and attaches kernel implementations for p's solution to
// req/subdims/granularity, then inserts the result into the cache under solverID/key. It
// never mutates the cache on any failure path.
func (d *Dispatcher) buildAndCache(
	p pattern.Pattern,
	req Request,
	key kernelcache.Key,
	solverID string,
	subdims []pattern.SubproblemDimension,
	granularity pattern.ParallelismGranularity,
) (*kernelcache.Record, error) {
	size, err := p.GenKernel(nil, subdims, granularity, req.Extra)
	if err != nil {
		return nil, fmt.Errorf("size-probe kernel source: %w", err)
	}
	src := make([]byte, size)
	n, err := p.GenKernel(src, subdims, granularity, req.Extra)
	if err != nil {
		return nil, fmt.Errorf("generate kernel source: %w", err)
	}
	source := string(src[:n])

	options, err := p.SetBuildOptions("", req.Params)
	if err != nil {
		return nil, fmt.Errorf("set build options: %w", err)
	}

	program, err := buildengine.Build(d.Log, req.Context, []compute.Device{req.Device}, source, options)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}

	entryPoints, err := p.KernelEntryPoints(req.Extra)
	if err != nil {
		compute.ReleaseProgram(program)
		return nil, fmt.Errorf("kernel entry points: %w", err)
	}
	if len(entryPoints) != 1 {
		compute.ReleaseProgram(program)
		return nil, fmt.Errorf("%w: %s declared %d", ErrMultipleEntryPoints, p.Name(), len(entryPoints))
	}
	var entryName string
	for name, impl := range entryPoints {
		entryName = name
		if err := compute.AttachKernelImplementation(program, name, impl.ArgCount, impl.Func); err != nil {
			compute.ReleaseProgram(program)
			return nil, fmt.Errorf("attach kernel implementation: %w", err)
		}
	}

	record := kernelcache.Alloc()
	record.Key = key
	record.Extras = req.Extra
	record.Program = program
	record.KernelName = entryName
	record.Footprint = int64(len(source))
	record.Destructor = func() {
		compute.ReleaseProgram(program)
	}

	if err := d.Cache.Add(solverID, record, p.ExtrasPredicate()); err != nil {
		compute.ReleaseProgram(program)
		return nil, fmt.Errorf("add to cache: %w", err)
	}
	return record, nil
}
