package compute

import "github.com/google/uuid"

// MemFlags is a bitfield describing how a memory object will be accessed.
type MemFlags uint32

// Recognized MemFlags values.
const (
	MemReadWrite MemFlags = 1 << 0
	MemReadOnly  MemFlags = 1 << 1
	MemWriteOnly MemFlags = 1 << 2
)

type memKind int

const (
	memKindBuffer memKind = iota
	memKindImage
)

type memRecord struct {
	context Context
	kind    memKind
	size    uintptr
	width   uintptr
	height  uintptr
	flags   MemFlags
	data    []byte
	refs    int
}

// CreateBuffer creates a linear device buffer of the given size.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clCreateBuffer.html
func CreateBuffer(context Context, flags MemFlags, size uintptr) (MemObject, error) {
	if size == 0 {
		return MemObject{}, ErrInvalidBufferSize
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.contexts[context]; !ok {
		return MemObject{}, ErrInvalidContext
	}
	m := MemObject(uuid.New())
	reg.mem[m] = &memRecord{context: context, kind: memKindBuffer, size: size, flags: flags, data: make([]byte, size), refs: 1}
	return m, nil
}

// RetainMemObject increments the mem-object reference count.
func RetainMemObject(mem MemObject) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.mem[mem]
	if !ok {
		return ErrInvalidMemObject
	}
	rec.refs++
	return nil
}

// ReleaseMemObject decrements the mem-object reference count, destroying it at zero.
func ReleaseMemObject(mem MemObject) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.mem[mem]
	if !ok {
		return ErrInvalidMemObject
	}
	rec.refs--
	if rec.refs <= 0 {
		delete(reg.mem, mem)
	}
	return nil
}

// MemObjectSize returns the byte size of a memory object's storage.
func MemObjectSize(mem MemObject) (uintptr, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rec, ok := reg.mem[mem]
	if !ok {
		return 0, ErrInvalidMemObject
	}
	return rec.size, nil
}

// EnqueueWriteBuffer enqueues a command to write to a buffer object from host memory.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clEnqueueWriteBuffer.html
func EnqueueWriteBuffer(queue CommandQueue, buf MemObject, _ bool, offset, size uintptr, data []byte, waitList []Event, event *Event) error {
	if err := WaitForEvents(waitList); err != nil {
		return err
	}
	if uintptr(len(data)) < size {
		return ErrInvalidValue
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.queues[queue]; !ok {
		return ErrInvalidCommandQueue
	}
	rec, ok := reg.mem[buf]
	if !ok {
		return ErrInvalidMemObject
	}
	if offset+size > rec.size {
		return ErrInvalidValue
	}
	copy(rec.data[offset:offset+size], data[:size])
	if event != nil {
		ev := newEvent()
		reg.events[ev] = &eventRecord{status: EventComplete}
		*event = ev
	}
	return nil
}

// EnqueueReadBuffer enqueues a command to read from a buffer object to host memory.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clEnqueueReadBuffer.html
func EnqueueReadBuffer(queue CommandQueue, buf MemObject, _ bool, offset, size uintptr, data []byte, waitList []Event, event *Event) error {
	if err := WaitForEvents(waitList); err != nil {
		return err
	}
	if uintptr(len(data)) < size {
		return ErrInvalidValue
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.queues[queue]; !ok {
		return ErrInvalidCommandQueue
	}
	rec, ok := reg.mem[buf]
	if !ok {
		return ErrInvalidMemObject
	}
	if offset+size > rec.size {
		return ErrInvalidValue
	}
	copy(data[:size], rec.data[offset:offset+size])
	if event != nil {
		ev := newEvent()
		reg.events[ev] = &eventRecord{status: EventComplete}
		*event = ev
	}
	return nil
}
