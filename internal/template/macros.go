package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/opencl-go/clblas/internal/genguard"
)

var macroPattern = regexp.MustCompile(`%([A-Z_]+)\(([^()]*)\)`)

func splitArgs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func requireArity(name string, args []string, want int) error {
	if len(args) != want {
		return &ErrMacroArity{Name: name, Want: want, Got: len(args)}
	}
	return nil
}

// expandMacros resolves every %NAME(args) macro call in src. It returns the expanded text
// plus the source of any helper function newly emitted while doing so (guard misses only;
// a guard hit contributes nothing since its definition was already returned on a prior call).
func (e *Engine) expandMacros(src string, guard *genguard.Guard) (string, []string, error) {
	var helpers []string
	var firstErr error

	out := macroPattern.ReplaceAllStringFunc(src, func(m string) string {
		if firstErr != nil {
			return m
		}
		sub := macroPattern.FindStringSubmatch(m)
		name, argsRaw := sub[1], sub[2]
		args := splitArgs(argsRaw)
		expansion, helper, err := e.expandMacro(name, args, guard)
		if err != nil {
			firstErr = err
			return m
		}
		if helper != "" {
			helpers = append(helpers, helper)
		}
		return expansion
	})
	if firstErr != nil {
		return "", nil, firstErr
	}
	return out, helpers, nil
}

func (e *Engine) expandMacro(name string, args []string, guard *genguard.Guard) (expansion string, helper string, err error) {
	cname := e.desc.CName
	complex := e.desc.IsComplex

	switch name {
	case "MUL":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		dst, a, b := args[0], args[1], args[2]
		if !complex {
			return fmt.Sprintf("%s = %s * %s;", dst, a, b), "", nil
		}
		fn, src, err := e.complexMulHelper(guard)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s = %s(%s, %s);", dst, fn, a, b), src, nil

	case "DIV":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		dst, a, b := args[0], args[1], args[2]
		if !complex {
			return fmt.Sprintf("%s = %s / %s;", dst, a, b), "", nil
		}
		fn, src, err := e.complexDivHelper(guard)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s = %s(%s, %s);", dst, fn, a, b), src, nil

	case "MAD":
		if err := requireArity(name, args, 4); err != nil {
			return "", "", err
		}
		dst, a, b, c := args[0], args[1], args[2], args[3]
		if !complex {
			return fmt.Sprintf("%s = mad(%s, %s, %s);", dst, a, b, c), "", nil
		}
		fn, src, err := e.complexMulHelper(guard)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s = %s(%s, %s) + %s;", dst, fn, a, b, c), src, nil

	case "ADD":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s = %s + %s;", args[0], args[1], args[2]), "", nil

	case "SUB":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s = %s - %s;", args[0], args[1], args[2]), "", nil

	case "CONJ":
		if err := requireArity(name, args, 2); err != nil {
			return "", "", err
		}
		dst, a := args[0], args[1]
		if !complex {
			return fmt.Sprintf("%s = %s;", dst, a), "", nil
		}
		return fmt.Sprintf("%s = (%s)(%s.x, -%s.y);", dst, cname, a, a), "", nil

	case "CLEAR_IMAG":
		if err := requireArity(name, args, 2); err != nil {
			return "", "", err
		}
		dst, a := args[0], args[1]
		if !complex {
			return fmt.Sprintf("%s = %s;", dst, a), "", nil
		}
		return fmt.Sprintf("%s = (%s)(%s.x, 0);", dst, cname, a), "", nil

	case "JOIN":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		dst, re, im := args[0], args[1], args[2]
		if !complex {
			return fmt.Sprintf("%s = %s;", dst, re), "", nil
		}
		return fmt.Sprintf("%s = (%s)(%s, %s);", dst, cname, re, im), "", nil

	case "VLOAD":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		dst, offset, ptr := args[0], args[1], args[2]
		if e.vecWidth <= 1 {
			return fmt.Sprintf("%s = (%s)[%s];", dst, ptr, offset), "", nil
		}
		return fmt.Sprintf("%s = vload%d(%s, %s);", dst, e.vecWidth, offset, ptr), "", nil

	case "VSTORE":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		val, offset, ptr := args[0], args[1], args[2]
		if e.vecWidth <= 1 {
			return fmt.Sprintf("(%s)[%s] = %s;", ptr, offset, val), "", nil
		}
		return fmt.Sprintf("vstore%d(%s, %s, %s);", e.vecWidth, val, offset, ptr), "", nil

	case "ALIGNED":
		if err := requireArity(name, args, 1); err != nil {
			return "", "", err
		}
		return fmt.Sprintf("((__global %s*)(%s))", cname, args[0]), "", nil

	case "REDUCE":
		if err := requireArity(name, args, 3); err != nil {
			return "", "", err
		}
		op, err := parseReduceOp(args[0])
		if err != nil {
			return "", "", err
		}
		dst, src := args[1], args[2]
		fn, helperSrc, err := e.reductionHelper(guard, op)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s = %s(clblas_reduce_scratch, %s);", dst, fn, src), helperSrc, nil

	case "VMAD_REDUCE":
		if err := requireArity(name, args, 5); err != nil {
			return "", "", err
		}
		op, err := parseReduceOp(args[0])
		if err != nil {
			return "", "", err
		}
		dst, a, b, c := args[1], args[2], args[3], args[4]
		fn, helperSrc, err := e.reductionHelper(guard, op)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("%s = %s(clblas_reduce_scratch, mad(%s, %s, %s));", dst, fn, a, b, c), helperSrc, nil

	default:
		return "", "", &ErrUnknownMacro{Name: name}
	}
}
