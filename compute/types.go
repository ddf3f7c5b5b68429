package compute

import (
	"fmt"

	"github.com/google/uuid"
)

// Platform references a compute-API platform (an implementation/vendor root).
type Platform uuid.UUID

// String provides a readable presentation of the platform identifier.
func (p Platform) String() string { return fmt.Sprintf("platform:%s", uuid.UUID(p)) }

// Device references an accelerator device, immutable across its lifetime.
type Device uuid.UUID

// String provides a readable presentation of the device identifier.
func (d Device) String() string { return fmt.Sprintf("device:%s", uuid.UUID(d)) }

// Context references a compute-API context bound to one or more devices.
type Context uuid.UUID

// String provides a readable presentation of the context identifier.
func (c Context) String() string { return fmt.Sprintf("context:%s", uuid.UUID(c)) }

// CommandQueue references an in-order or out-of-order queue of enqueued commands.
type CommandQueue uuid.UUID

// String provides a readable presentation of the queue identifier.
func (q CommandQueue) String() string { return fmt.Sprintf("queue:%s", uuid.UUID(q)) }

// Program references compiled (or compilable) kernel source for a context.
type Program uuid.UUID

// String provides a readable presentation of the program identifier.
func (p Program) String() string { return fmt.Sprintf("program:%s", uuid.UUID(p)) }

// Kernel references a named entry point within a built Program, with bound arguments.
type Kernel uuid.UUID

// String provides a readable presentation of the kernel identifier.
func (k Kernel) String() string { return fmt.Sprintf("kernel:%s", uuid.UUID(k)) }

// MemObject references a device memory allocation: a linear buffer or a 2D image.
type MemObject uuid.UUID

// String provides a readable presentation of the mem-object identifier.
func (m MemObject) String() string { return fmt.Sprintf("mem:%s", uuid.UUID(m)) }

// Event references the completion state of one enqueued command.
type Event uuid.UUID

// String provides a readable presentation of the event identifier.
func (e Event) String() string { return fmt.Sprintf("event:%s", uuid.UUID(e)) }

// Bool mirrors the compute-API tri-valued boolean used in info queries.
type Bool uint32

// Recognized Bool values.
const (
	False Bool = 0
	True  Bool = 1
)
