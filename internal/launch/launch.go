package launch

import (
	"fmt"

	"github.com/opencl-go/clblas/compute"
)

// Phase names the compute-API call a launch failed at, for precise error attribution (spec
// §4.7 failure model, §4.8 step 7).
type Phase int

// Recognized Phase values.
const (
	PhaseSetArgs Phase = iota
	PhaseEnqueueWrite
	PhaseEnqueueKernel
	PhaseProfiling
	PhaseEnqueueRead
)

func (p Phase) String() string {
	switch p {
	case PhaseSetArgs:
		return "setArgs"
	case PhaseEnqueueWrite:
		return "enqueueWrite"
	case PhaseEnqueueKernel:
		return "enqueueKernel"
	case PhaseProfiling:
		return "profiling"
	case PhaseEnqueueRead:
		return "enqueueRead"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Error pinpoints exactly where a Launch call failed. WrongArg is -1 for phases that are
// not attributable to a single argument (enqueueKernel, profiling).
type Error struct {
	Phase    Phase
	WrongArg int
	Err      error
}

func (e *Error) Error() string {
	if e.WrongArg < 0 {
		return fmt.Sprintf("launch: %s: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("launch: %s (arg %d): %v", e.Phase, e.WrongArg, e.Err)
}

// Unwrap exposes the underlying compute-API error for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Direction says which way a Staging buffer moves relative to kernel execution.
type Direction int

// Recognized Direction values.
const (
	DirectionNone Direction = iota
	DirectionWrite
	DirectionRead
	DirectionWriteRead
)

// Staging describes a host buffer that must be copied to (and/or read back from) a device
// MemObject argument around kernel execution.
type Staging struct {
	Buffer    compute.MemObject
	Host      []byte
	Offset    uintptr
	Direction Direction
}

// WritesBefore reports whether this staging needs a write enqueued before the kernel runs.
func (s *Staging) WritesBefore() bool {
	return s != nil && (s.Direction == DirectionWrite || s.Direction == DirectionWriteRead)
}

// ReadsAfter reports whether this staging needs a read enqueued after the kernel runs.
func (s *Staging) ReadsAfter() bool {
	return s != nil && (s.Direction == DirectionRead || s.Direction == DirectionWriteRead)
}

// Arg is one kernel argument: the value SetKernelArg binds, and an optional host staging
// buffer to shuttle data across the call.
type Arg struct {
	Value   compute.ArgValue
	Staging *Staging
}

// Descriptor is everything Launch needs to run one kernel invocation. It carries no BLAS
// semantics: Args, Global, and Local are already fully resolved by the caller (the
// dispatcher, component C10).
type Descriptor struct {
	Kernel   compute.Kernel
	Queue    compute.CommandQueue
	Args     []Arg
	Global   []uint64
	Local    []uint64
	WaitList []compute.Event
	Async    bool
	Profile  bool
}

// Result carries what Launch observed beyond the completion event: the kernel's measured
// execution time, when profiling was requested and supported.
type Result struct {
	Profiled            bool
	ExecutionNanoseconds uint64
}

// Run executes desc: binds arguments in order (staging any host-to-device writes as it
// goes), enqueues the kernel over the requested geometry, optionally waits for and profiles
// it, then stages any device-to-host reads. On any failure it returns a non-nil *Error
// naming the phase and, where applicable, the offending argument index.
func Run(desc Descriptor) (compute.Event, Result, error) {
	numArgs, err := compute.KernelNumArgs(desc.Kernel)
	if err != nil {
		return compute.Event{}, Result{}, &Error{Phase: PhaseSetArgs, WrongArg: -1, Err: err}
	}
	if int(numArgs) != len(desc.Args) {
		return compute.Event{}, Result{}, &Error{
			Phase:    PhaseSetArgs,
			WrongArg: -1,
			Err:      fmt.Errorf("launch: kernel declares %d arguments, got %d", numArgs, len(desc.Args)),
		}
	}

	for i, arg := range desc.Args {
		if err := compute.SetKernelArg(desc.Kernel, uint32(i), arg.Value); err != nil {
			return compute.Event{}, Result{}, &Error{Phase: PhaseSetArgs, WrongArg: i, Err: err}
		}
		if arg.Staging.WritesBefore() {
			size := uintptr(len(arg.Staging.Host))
			err := compute.EnqueueWriteBuffer(desc.Queue, arg.Staging.Buffer, true, arg.Staging.Offset, size, arg.Staging.Host, nil, nil)
			if err != nil {
				return compute.Event{}, Result{}, &Error{Phase: PhaseEnqueueWrite, WrongArg: i, Err: err}
			}
		}
	}

	dims := make([]compute.WorkDimension, len(desc.Global))
	for i, g := range desc.Global {
		d := compute.WorkDimension{GlobalSize: g}
		if i < len(desc.Local) {
			d.LocalSize = desc.Local[i]
		}
		dims[i] = d
	}

	var kernelEvent compute.Event
	if err := compute.EnqueueNDRangeKernel(desc.Queue, desc.Kernel, dims, desc.WaitList, &kernelEvent); err != nil {
		return compute.Event{}, Result{}, &Error{Phase: PhaseEnqueueKernel, WrongArg: -1, Err: err}
	}

	if !desc.Async {
		if err := compute.WaitForEvents([]compute.Event{kernelEvent}); err != nil {
			return compute.Event{}, Result{}, &Error{Phase: PhaseEnqueueKernel, WrongArg: -1, Err: err}
		}
	}

	var result Result
	if desc.Profile {
		hasProfiling, err := compute.CommandQueueHasProfiling(desc.Queue)
		if err != nil {
			return compute.Event{}, Result{}, &Error{Phase: PhaseProfiling, WrongArg: -1, Err: err}
		}
		if hasProfiling {
			start, err := compute.EventProfilingInfo(kernelEvent, compute.ProfilingCommandStart)
			if err != nil {
				return compute.Event{}, Result{}, &Error{Phase: PhaseProfiling, WrongArg: -1, Err: err}
			}
			end, err := compute.EventProfilingInfo(kernelEvent, compute.ProfilingCommandEnd)
			if err != nil {
				return compute.Event{}, Result{}, &Error{Phase: PhaseProfiling, WrongArg: -1, Err: err}
			}
			result.Profiled = true
			result.ExecutionNanoseconds = end - start
		}
	}

	for i, arg := range desc.Args {
		if !arg.Staging.ReadsAfter() {
			continue
		}
		size := uintptr(len(arg.Staging.Host))
		err := compute.EnqueueReadBuffer(desc.Queue, arg.Staging.Buffer, true, arg.Staging.Offset, size, arg.Staging.Host, nil, nil)
		if err != nil {
			return compute.Event{}, Result{}, &Error{Phase: PhaseEnqueueRead, WrongArg: i, Err: err}
		}
	}

	return kernelEvent, result, nil
}
