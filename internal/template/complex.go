package template

import (
	"fmt"

	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/genguard"
)

// complexMulHelper emits (via guard, so repeated requests for the same element type within
// one generated program reuse the definition) the standard 4-multiply complex product:
// (a.x*b.x - a.y*b.y, a.x*b.y + a.y*b.x).
func (e *Engine) complexMulHelper(guard *genguard.Guard) (name string, source string, err error) {
	pattern := []byte("mul:" + e.desc.CName)
	return guard.FindGenerateFunction(pattern, func() (string, string, error) {
		fn := "clblas_mul_" + e.desc.CName
		src := fmt.Sprintf(
			"%s %s(%s a, %s b) {\n"+
				"    return (%s)(a.x*b.x - a.y*b.y, a.x*b.y + a.y*b.x);\n"+
				"}\n",
			e.desc.CName, fn, e.desc.CName, e.desc.CName, e.desc.CName)
		return fn, src, nil
	})
}

// complexDivHelper emits the standard 4-multiply-2-divide complex quotient.
func (e *Engine) complexDivHelper(guard *genguard.Guard) (name string, source string, err error) {
	pattern := []byte("div:" + e.desc.CName)
	return guard.FindGenerateFunction(pattern, func() (string, string, error) {
		fn := "clblas_div_" + e.desc.CName
		half, err := dtype.Describe(dtype.HalfWord(e.elem))
		if err != nil {
			return "", "", err
		}
		src := fmt.Sprintf(
			"%s %s(%s a, %s b) {\n"+
				"    %s denom = b.x*b.x + b.y*b.y;\n"+
				"    return (%s)((a.x*b.x + a.y*b.y) / denom, (a.y*b.x - a.x*b.y) / denom);\n"+
				"}\n",
			e.desc.CName, fn, e.desc.CName, e.desc.CName, half.CName, e.desc.CName)
		return fn, src, nil
	})
}
