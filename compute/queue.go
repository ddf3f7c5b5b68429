package compute

import "github.com/google/uuid"

// QueueProperties is a bitfield of command-queue behaviors.
type QueueProperties uint32

// Recognized QueueProperties values.
const (
	QueueOutOfOrderExecModeEnable QueueProperties = 1 << 0
	QueueProfilingEnable          QueueProperties = 1 << 1
)

// CreateCommandQueue creates a command queue for a specific device in a context.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clCreateCommandQueue.html
func CreateCommandQueue(context Context, device Device, props QueueProperties) (CommandQueue, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ctxRec, ok := reg.contexts[context]
	if !ok {
		return CommandQueue{}, ErrInvalidContext
	}
	found := false
	for _, d := range ctxRec.devices {
		if d == device {
			found = true
			break
		}
	}
	if !found {
		return CommandQueue{}, ErrInvalidDevice
	}
	q := CommandQueue(uuid.New())
	reg.queues[q] = &queueRecord{context: context, device: device, props: props, refs: 1}
	return q, nil
}

// RetainCommandQueue increments the queue reference count.
func RetainCommandQueue(queue CommandQueue) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.queues[queue]
	if !ok {
		return ErrInvalidCommandQueue
	}
	rec.refs++
	return nil
}

// ReleaseCommandQueue decrements the queue reference count, destroying it at zero.
func ReleaseCommandQueue(queue CommandQueue) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.queues[queue]
	if !ok {
		return ErrInvalidCommandQueue
	}
	rec.refs--
	if rec.refs <= 0 {
		delete(reg.queues, queue)
	}
	return nil
}

// CommandQueueDevice returns the device a queue was created against.
func CommandQueueDevice(queue CommandQueue) (Device, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rec, ok := reg.queues[queue]
	if !ok {
		return Device{}, ErrInvalidCommandQueue
	}
	return rec.device, nil
}

// CommandQueueHasProfiling reports whether the queue was created with QueueProfilingEnable.
func CommandQueueHasProfiling(queue CommandQueue) (bool, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rec, ok := reg.queues[queue]
	if !ok {
		return false, ErrInvalidCommandQueue
	}
	return rec.props&QueueProfilingEnable != 0, nil
}

// Flush is a no-op in the simulated backend: every enqueue call below executes synchronously
// against its event. It exists so callers written against a real queue compile unchanged.
func Flush(CommandQueue) error { return nil }

// Finish blocks until all commands previously enqueued to queue have completed. Since every
// enqueue in this backend already runs synchronously, Finish always returns immediately.
func Finish(CommandQueue) error { return nil }
