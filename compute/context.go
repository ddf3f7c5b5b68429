package compute

import "github.com/google/uuid"

// CreateContext creates a context spanning the given devices.
//
// See also: https://registry.khronos.org/OpenCL/sdk/3.0/docs/man/html/clCreateContext.html
func CreateContext(devices []Device) (Context, error) {
	if len(devices) == 0 {
		return Context{}, ErrInvalidValue
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for _, d := range devices {
		if _, ok := reg.devices[d]; !ok {
			return Context{}, ErrInvalidDevice
		}
	}
	c := Context(uuid.New())
	cp := make([]Device, len(devices))
	copy(cp, devices)
	reg.contexts[c] = &contextRecord{devices: cp, refs: 1}
	return c, nil
}

// RetainContext increments the context reference count.
func RetainContext(context Context) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.contexts[context]
	if !ok {
		return ErrInvalidContext
	}
	rec.refs++
	return nil
}

// ReleaseContext decrements the context reference count, destroying it at zero.
func ReleaseContext(context Context) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	rec, ok := reg.contexts[context]
	if !ok {
		return ErrInvalidContext
	}
	rec.refs--
	if rec.refs <= 0 {
		delete(reg.contexts, context)
	}
	return nil
}

// ContextDevices returns the devices a context was created with.
func ContextDevices(context Context) ([]Device, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rec, ok := reg.contexts[context]
	if !ok {
		return nil, ErrInvalidContext
	}
	out := make([]Device, len(rec.devices))
	copy(out, rec.devices)
	return out, nil
}
