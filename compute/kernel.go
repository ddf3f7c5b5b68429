package compute

import "github.com/google/uuid"

// LocalMemory is a kernel argument value that reserves size bytes of per-work-group local
// storage, mirroring a __local pointer argument whose size is set at SetKernelArg time.
type LocalMemory uintptr

// ArgValue is the value bound to a kernel argument: raw scalar bytes, a MemObject (buffer
// or image), or a LocalMemory reservation.
type ArgValue interface{}

// KernelExecContext is handed to a KernelFunc when its kernel is enqueued. It exposes the
// bound arguments and launch geometry without requiring the implementation to know about
// compute-API handles.
type KernelExecContext struct {
	kernel Kernel
	Global []uint64
	Local  []uint64
}

// Scalar returns the raw bytes bound to a scalar argument.
func (c *KernelExecContext) Scalar(index uint32) ([]byte, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	k, ok := reg.kernels[c.kernel]
	if !ok {
		return nil, ErrInvalidKernel
	}
	b, ok := k.args[index]
	if !ok || b.kind != argKindScalar {
		return nil, ErrInvalidArgIndex
	}
	return b.bytes, nil
}

// Buffer returns a mutable view over the device storage bound to a MemObject argument.
func (c *KernelExecContext) Buffer(index uint32) ([]byte, error) {
	reg.mu.RLock()
	kernelRec, ok := reg.kernels[c.kernel]
	reg.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidKernel
	}
	binding, ok := kernelRec.args[index]
	if !ok || binding.kind != argKindMem {
		return nil, ErrInvalidArgIndex
	}
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	memRec, ok := reg.mem[binding.mem]
	if !ok {
		return nil, ErrInvalidMemObject
	}
	return memRec.data, nil
}

// KernelFunc is the native Go implementation attached to a kernel's entry point name,
// standing in for what a real device compiler would produce from kernel source.
type KernelFunc func(ctx *KernelExecContext) error

type argKind int

const (
	argKindScalar argKind = iota
	argKindMem
	argKindLocal
)

type argBinding struct {
	kind  argKind
	bytes []byte
	mem   MemObject
	local uintptr
}

type kernelRecord struct {
	program  Program
	name     string
	argCount int
	args     map[uint32]argBinding
	refs     int
}

// CreateKernel creates a kernel object bound to the named entry point of a built program.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clCreateKernel.html
func CreateKernel(program Program, name string) (Kernel, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	progRec, ok := reg.programs[program]
	if !ok {
		return Kernel{}, ErrInvalidProgram
	}
	impl, ok := progRec.impls[name]
	if !ok {
		return Kernel{}, ErrInvalidKernelName
	}
	k := Kernel(uuid.New())
	reg.kernels[k] = &kernelRecord{
		program:  program,
		name:     name,
		argCount: impl.argCount,
		args:     make(map[uint32]argBinding),
		refs:     1,
	}
	return k, nil
}

// RetainKernel increments the kernel reference count.
func RetainKernel(kernel Kernel) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.kernels[kernel]
	if !ok {
		return ErrInvalidKernel
	}
	rec.refs++
	return nil
}

// ReleaseKernel decrements the kernel reference count, destroying it at zero.
func ReleaseKernel(kernel Kernel) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.kernels[kernel]
	if !ok {
		return ErrInvalidKernel
	}
	rec.refs--
	if rec.refs <= 0 {
		delete(reg.kernels, kernel)
	}
	return nil
}

// KernelNumArgs returns the number of arguments declared for the kernel's entry point.
func KernelNumArgs(kernel Kernel) (uint32, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rec, ok := reg.kernels[kernel]
	if !ok {
		return 0, ErrInvalidKernel
	}
	return uint32(rec.argCount), nil
}

// SetKernelArg sets the argument value for a specific argument of a kernel.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clSetKernelArg.html
func SetKernelArg(kernel Kernel, index uint32, value ArgValue) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.kernels[kernel]
	if !ok {
		return ErrInvalidKernel
	}
	if int(index) >= rec.argCount {
		return ErrInvalidArgIndex
	}
	switch v := value.(type) {
	case []byte:
		rec.args[index] = argBinding{kind: argKindScalar, bytes: append([]byte(nil), v...)}
	case MemObject:
		if _, ok := reg.mem[v]; !ok {
			return ErrInvalidMemObject
		}
		rec.args[index] = argBinding{kind: argKindMem, mem: v}
	case LocalMemory:
		rec.args[index] = argBinding{kind: argKindLocal, local: uintptr(v)}
	default:
		return ErrInvalidArgValue
	}
	return nil
}

// WorkDimension describes the parameters within one dimension of a work group.
type WorkDimension struct {
	GlobalOffset uint64
	GlobalSize   uint64
	LocalSize    uint64
}

// EnqueueNDRangeKernel enqueues a command to execute a kernel over an index space.
//
// The simulated backend executes synchronously: by the time this call returns, the kernel's
// attached Go implementation has already run and any error it produced is returned directly
// (a real async backend would instead surface it only via the returned event).
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clEnqueueNDRangeKernel.html
func EnqueueNDRangeKernel(queue CommandQueue, kernel Kernel, dims []WorkDimension, waitList []Event, event *Event) error {
	if len(dims) == 0 || len(dims) > 3 {
		return ErrInvalidWorkDimension
	}
	if err := WaitForEvents(waitList); err != nil {
		return err
	}
	reg.mu.RLock()
	queueRec, ok := reg.queues[queue]
	if !ok {
		reg.mu.RUnlock()
		return ErrInvalidCommandQueue
	}
	kernelRec, ok := reg.kernels[kernel]
	if !ok {
		reg.mu.RUnlock()
		return ErrInvalidKernel
	}
	if len(kernelRec.args) != kernelRec.argCount {
		reg.mu.RUnlock()
		return ErrInvalidKernelArgs
	}
	progRec := reg.programs[kernelRec.program]
	impl, ok := progRec.impls[kernelRec.name]
	profiling := queueRec.props&QueueProfilingEnable != 0
	global := make([]uint64, len(dims))
	local := make([]uint64, len(dims))
	for i, d := range dims {
		if d.GlobalSize == 0 {
			reg.mu.RUnlock()
			return ErrInvalidGlobalWorkSize
		}
		if d.LocalSize != 0 && d.GlobalSize%d.LocalSize != 0 {
			reg.mu.RUnlock()
			return ErrInvalidWorkGroupSize
		}
		global[i] = d.GlobalSize
		local[i] = d.LocalSize
	}
	reg.mu.RUnlock()
	if !ok {
		return ErrInvalidProgramExecutable
	}
	execCtx := &KernelExecContext{kernel: kernel, Global: global, Local: local}
	start := monotonicNow()
	runErr := impl.fn(execCtx)
	end := monotonicNow()
	ev := newEvent()
	evRec := &eventRecord{status: EventComplete, err: runErr}
	if runErr != nil {
		evRec.status = EventError
	}
	if profiling {
		evRec.profiled = true
		evRec.start = start
		evRec.end = end
	}
	reg.mu.Lock()
	reg.events[ev] = evRec
	reg.mu.Unlock()
	if event != nil {
		*event = ev
	}
	return runErr
}
