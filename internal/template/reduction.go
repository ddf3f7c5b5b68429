package template

import (
	"fmt"
	"strings"

	"github.com/opencl-go/clblas/internal/genguard"
)

// reduceOp is a work-group-wide reduction operator recognized by %REDUCE / %VMAD_REDUCE.
type reduceOp string

const (
	reduceSum   reduceOp = "sum"
	reduceMax   reduceOp = "max"
	reduceMin   reduceOp = "min"
	reduceHypot reduceOp = "hypot"
	reduceSSQ   reduceOp = "ssq"
)

func parseReduceOp(s string) (reduceOp, error) {
	switch reduceOp(strings.ToLower(s)) {
	case reduceSum, reduceMax, reduceMin, reduceHypot, reduceSSQ:
		return reduceOp(strings.ToLower(s)), nil
	default:
		return "", &ErrUnknownReduceOp{Op: s}
	}
}

// combineExpr returns the C expression combining two partial values "a" and "b" for op.
func (op reduceOp) combineExpr(a, b, cname string) string {
	switch op {
	case reduceSum, reduceSSQ:
		return fmt.Sprintf("%s + %s", a, b)
	case reduceMax:
		return fmt.Sprintf("max(%s, %s)", a, b)
	case reduceMin:
		return fmt.Sprintf("min(%s, %s)", a, b)
	case reduceHypot:
		return fmt.Sprintf("hypot(%s, %s)", a, b)
	default:
		return fmt.Sprintf("%s + %s", a, b)
	}
}

// reductionHelper emits a work-group-wide tree reduction over local memory, parameterized by
// operator, element type, wavefront width and work-group size (spec §4.1's "reduction
// framework").
func (e *Engine) reductionHelper(guard *genguard.Guard, op reduceOp) (name string, source string, err error) {
	pattern := []byte(fmt.Sprintf("reduce:%s:%s:%d:%d", op, e.desc.CName, e.wavefrontWidth, e.wgSize))
	return guard.FindGenerateFunction(pattern, func() (string, string, error) {
		fn := fmt.Sprintf("clblas_reduce_%s_%s", op, e.desc.CName)
		cname := e.desc.CName
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s(__local %s *scratch, %s value) {\n", cname, fn, cname, cname)
		b.WriteString("    size_t lid = get_local_id(0);\n")
		fmt.Fprintf(&b, "    scratch[lid] = %s;\n", reductionSeed(op, "value"))
		b.WriteString("    barrier(CLK_LOCAL_MEM_FENCE);\n")
		fmt.Fprintf(&b, "    for (size_t offset = %d / 2; offset > 0; offset >>= 1) {\n", e.wgSize)
		b.WriteString("        if (lid < offset) {\n")
		fmt.Fprintf(&b, "            scratch[lid] = %s;\n", op.combineExpr("scratch[lid]", "scratch[lid + offset]", cname))
		b.WriteString("        }\n")
		b.WriteString("        barrier(CLK_LOCAL_MEM_FENCE);\n")
		b.WriteString("    }\n")
		b.WriteString("    return scratch[0];\n")
		b.WriteString("}\n")
		return fn, b.String(), nil
	})
}

func reductionSeed(op reduceOp, value string) string {
	if op == reduceSSQ {
		return fmt.Sprintf("%s * %s", value, value)
	}
	return value
}
