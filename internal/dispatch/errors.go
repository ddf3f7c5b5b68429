package dispatch

import "fmt"

// ErrInvalidCallParams is returned by Validate (and therefore Call, terminally and
// synchronously) when a call's dimensions, leading dimensions, increments, or offsets
// violate the BLAS contract.
var ErrInvalidCallParams = fmt.Errorf("dispatch: invalid call parameters")

// ErrNoPatternRegistered is returned by Call when no pattern at all is registered for the
// requested function name.
var ErrNoPatternRegistered = fmt.Errorf("dispatch: no pattern registered for function")

// ErrNoPatternSupportsCall is returned by Call when patterns are registered for the function
// but every one of them reported Unsupported for this particular call's shape.
var ErrNoPatternSupportsCall = fmt.Errorf("dispatch: no registered pattern supports this call")

// ErrPatternsExhausted is returned by Call when every ranked pattern failed to generate or
// build a kernel; it wraps a *multierror.Error with one entry per attempted pattern.
var ErrPatternsExhausted = fmt.Errorf("dispatch: all candidate patterns failed to produce a kernel")

// ErrMultipleEntryPoints is returned when a pattern's KernelEntryPoints returns more than
// one named kernel; this dispatcher only knows how to launch a single entry point per call.
var ErrMultipleEntryPoints = fmt.Errorf("dispatch: pattern declares more than one kernel entry point")

// ErrUnsupportedPrecision is returned by Call, terminally and synchronously, when req.Elem
// requires native double precision and the target device does not report it. No program is
// built and the kernel cache is left untouched.
var ErrUnsupportedPrecision = fmt.Errorf("dispatch: device does not support this element type's precision")
