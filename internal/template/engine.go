package template

import (
	"strings"

	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/genguard"
)

// Engine expands a kernel template for a fixed (element type, vector width, work-group size)
// binding. One Engine corresponds to one program's worth of generation: its guard
// deduplicates helper-function emission across every call to Generate made against it.
type Engine struct {
	elem           dtype.ElementType
	desc           dtype.Descriptor
	vecWidth       int
	wgSize         int
	wavefrontWidth uint32
	values         map[string]string

	guard            *genguard.Guard
	guardPatternSize int
}

// New constructs an engine for elem at the given vector width and work-group size. A
// vecWidth of 1 disables the "V" suffix on vector placeholders. If guard is nil, the engine
// creates a private one comparing patterns in full.
func New(elem dtype.ElementType, vecWidth, wgSize int, wavefrontWidth uint32, guard *genguard.Guard) (*Engine, error) {
	desc, err := dtype.Describe(elem)
	if err != nil {
		return nil, err
	}
	if vecWidth < 1 {
		vecWidth = 1
	}
	patternSize := 0
	if guard == nil {
		guard = genguard.New(patternSize)
	}
	return &Engine{
		elem:             elem,
		desc:             desc,
		vecWidth:         vecWidth,
		wgSize:           wgSize,
		wavefrontWidth:   wavefrontWidth,
		values:           make(map[string]string),
		guard:            guard,
		guardPatternSize: patternSize,
	}, nil
}

// Put records a textual substitution for key, overriding any built-in placeholder of the
// same name.
func (e *Engine) Put(key, value string) {
	e.values[key] = value
}

// expand runs the full placeholder-then-macro expansion pipeline against the given guard,
// returning the concatenation of any newly emitted helper definitions and the expanded body.
func (e *Engine) expand(src string, guard *genguard.Guard) (string, error) {
	resolved := e.substitutePlaceholders(src)
	body, helpers, err := e.expandMacros(resolved, guard)
	if err != nil {
		return "", err
	}
	if len(helpers) == 0 {
		return body, nil
	}
	return strings.Join(helpers, "\n") + body, nil
}

// Generate expands src and writes the result into dst.
//
// If dst is nil, Generate runs in size-probe mode: it computes the required size against a
// throw-away guard (so no helper emission is actually recorded) and returns that size without
// mutating engine state, matching the "freshly generated, null output buffer" contract.
//
// If dst is non-nil and too small to hold the expansion, Generate returns (-1, ErrOverflow)
// without copying any bytes.
func (e *Engine) Generate(src string, dst []byte) (int, error) {
	if dst == nil {
		probe := genguard.New(e.guardPatternSize)
		out, err := e.expand(src, probe)
		if err != nil {
			return -1, err
		}
		return len(out), nil
	}

	out, err := e.expand(src, e.guard)
	if err != nil {
		return -1, err
	}
	if len(dst) < len(out) {
		return -1, ErrOverflow
	}
	n := copy(dst, out)
	return n, nil
}

// Spit is a convenience wrapper over Generate that allocates its own destination buffer and
// returns the expanded source as a string.
func (e *Engine) Spit(src string) (string, error) {
	n, err := e.Generate(src, nil)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := e.Generate(src, buf); err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
