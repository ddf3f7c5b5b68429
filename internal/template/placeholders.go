package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opencl-go/clblas/internal/dtype"
)

func vectorName(baseName string, width int) string {
	if width <= 1 {
		return baseName
	}
	return fmt.Sprintf("%s%d", baseName, width)
}

// builtinPlaceholders computes the fixed set of type-derived placeholders for the element
// type and vector width this engine was constructed with (spec §4.1's %TYPE family).
func (e *Engine) builtinPlaceholders() map[string]string {
	half, _ := dtype.Describe(dtype.HalfWord(e.elem))
	quarter, _ := dtype.Describe(dtype.QuarterWord(e.elem))
	halfQuarter, _ := dtype.Describe(dtype.HalfQuarterWord(e.elem))
	return map[string]string{
		"%TYPE":            e.desc.CName,
		"%TYPE%V":          vectorName(e.desc.CName, e.vecWidth),
		"%PTYPE":           "__global " + e.desc.CName + "*",
		"%HALFWORD":        half.CName,
		"%QUARTERWORD":     quarter.CName,
		"%HALFQUARTERWORD": halfQuarter.CName,
	}
}

// substitutePlaceholders resolves built-in and user-registered (Put) placeholders in src.
// Keys are applied longest-first so a prefix key (e.g. %TYPE) cannot corrupt a longer key
// that contains it as a prefix (e.g. %TYPE%V).
func (e *Engine) substitutePlaceholders(src string) string {
	combined := e.builtinPlaceholders()
	for k, v := range e.values {
		combined[k] = v
	}
	keys := make([]string, 0, len(combined))
	for k := range combined {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	out := src
	for _, k := range keys {
		out = strings.ReplaceAll(out, k, combined[k])
	}
	return out
}
