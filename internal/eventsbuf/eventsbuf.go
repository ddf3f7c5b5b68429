// Package eventsbuf implements the process-wide decompose-events buffer: a mutex-guarded
// store that only grows, in fixed-size steps, until Teardown discards it. A call that
// decomposes into more than one kernel launch registers each sub-launch's completion event
// here instead of allocating its own slice per call, mirroring the reference library's
// decomposeEventsAlloc/decomposeEventsTeardown pair.
package eventsbuf

import (
	"sync"

	"github.com/opencl-go/clblas/compute"
)

// allocationStep is the fixed number of slots the buffer grows by whenever it runs out of
// room, mirroring the reference implementation's ALLOCATION_STEP of 100.
const allocationStep = 100

// Buffer is the process-wide decompose-events buffer (spec §5/§9 "Global mutable state").
// It is safe for concurrent use by multiple host threads.
type Buffer struct {
	mu     sync.Mutex
	events []compute.Event
	count  int
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// Alloc reserves the next slot, growing the backing storage by allocationStep first if none
// remain, and returns the reserved slot's index for a following Set.
func (b *Buffer) Alloc() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count == len(b.events) {
		grown := make([]compute.Event, len(b.events)+allocationStep)
		copy(grown, b.events)
		b.events = grown
	}
	index := b.count
	b.count++
	return index
}

// Set records ev at the slot index returned by a prior Alloc.
func (b *Buffer) Set(index int, ev compute.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[index] = ev
}

// Len reports how many slots have been allocated so far.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Events returns every event allocated so far, in allocation order.
func (b *Buffer) Events() []compute.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]compute.Event, b.count)
	copy(out, b.events[:b.count])
	return out
}

// Teardown releases the backing storage and resets the buffer to empty, mirroring
// decomposeEventsTeardown's free-and-zero behavior. The buffer may be reused afterward; the
// next Alloc grows it from zero again.
func (b *Buffer) Teardown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
	b.count = 0
}
