package template_test

import (
	"strings"
	"testing"

	"github.com/opencl-go/clblas/internal/dtype"
	"github.com/opencl-go/clblas/internal/genguard"
	"github.com/opencl-go/clblas/internal/template"
)

func TestBuiltinPlaceholders(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealSingle, 4, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Spit("%TYPE%V acc = (%TYPE%V)(0); %TYPE scalar;")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if !strings.Contains(out, "float4 acc = (float4)(0); float scalar;") {
		t.Fatalf("unexpected expansion: %q", out)
	}
}

func TestVectorWidthOneDisablesSuffix(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealDouble, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Spit("%TYPE%V x;")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if out != "double x;" {
		t.Fatalf("expected plain scalar type, got %q", out)
	}
}

func TestUserPutOverridesPlaceholder(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealSingle, 4, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Put("%M", "64")
	out, err := e.Spit("size_t m = %M;")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if out != "size_t m = 64;" {
		t.Fatalf("unexpected expansion: %q", out)
	}
}

func TestRealMacrosExpandToPlainOperators(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealSingle, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Spit("%MUL(c, a, b) %ADD(c, c, d)")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if !strings.Contains(out, "c = a * b;") || !strings.Contains(out, "c = c + d;") {
		t.Fatalf("unexpected expansion: %q", out)
	}
}

func TestComplexMulEmitsHelperOnce(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.ComplexSingle, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Spit("%MUL(c, a, b) %MUL(d, e, f)")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if strings.Count(out, "float2 clblas_mul_float2(") != 1 {
		t.Fatalf("expected exactly one helper definition, got:\n%s", out)
	}
	if !strings.Contains(out, "c = clblas_mul_float2(a, b);") {
		t.Fatalf("missing first call site: %q", out)
	}
	if !strings.Contains(out, "d = clblas_mul_float2(e, f);") {
		t.Fatalf("missing second call site: %q", out)
	}
}

func TestComplexDivEmitsHelper(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.ComplexDouble, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Spit("%DIV(q, a, b)")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if !strings.Contains(out, "clblas_div_double2") {
		t.Fatalf("expected div helper, got %q", out)
	}
}

func TestConjAndClearImagRealVsComplex(t *testing.T) {
	t.Parallel()
	real, err := template.New(dtype.RealSingle, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := real.Spit("%CONJ(b, a)")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if out != "b = a;" {
		t.Fatalf("real CONJ should be a no-op copy, got %q", out)
	}

	cplx, err := template.New(dtype.ComplexSingle, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err = cplx.Spit("%CONJ(b, a)")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if !strings.Contains(out, "-a.y") {
		t.Fatalf("complex CONJ should negate imaginary part, got %q", out)
	}
}

func TestReduceEmitsHelperAndCallSite(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealSingle, 1, 128, 64, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Spit("%REDUCE(sum, total, partial)")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if !strings.Contains(out, "clblas_reduce_sum_float") {
		t.Fatalf("expected reduction helper, got %q", out)
	}
	if !strings.Contains(out, "total = clblas_reduce_sum_float(clblas_reduce_scratch, partial);") {
		t.Fatalf("missing reduce call site: %q", out)
	}
}

func TestUnknownReduceOpFails(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealSingle, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := e.Spit("%REDUCE(bogus, a, b)"); err == nil {
		t.Fatalf("expected error for unknown reduction op")
	}
}

func TestUnknownMacroFails(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealSingle, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := e.Spit("%NOPE(a, b)"); err == nil {
		t.Fatalf("expected error for unknown macro")
	}
}

func TestGenerateSizeProbeDoesNotMutateGuard(t *testing.T) {
	t.Parallel()
	guard := genguard.New(0)
	e, err := template.New(dtype.ComplexSingle, 1, 64, 32, guard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n, err := e.Generate("%MUL(c, a, b)", nil)
	if err != nil {
		t.Fatalf("probe Generate: %v", err)
	}
	if n <= 0 {
		t.Fatalf("expected positive probe size, got %d", n)
	}
	if guard.Len() != 0 {
		t.Fatalf("size-probe mode must not register helpers, guard.Len() = %d", guard.Len())
	}

	buf := make([]byte, n)
	if _, err := e.Generate("%MUL(c, a, b)", buf); err != nil {
		t.Fatalf("materializing Generate: %v", err)
	}
	if guard.Len() != 1 {
		t.Fatalf("expected helper registered after real emission, guard.Len() = %d", guard.Len())
	}
}

func TestGenerateOverflowReturnsNegative(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.RealSingle, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tiny := make([]byte, 1)
	n, err := e.Generate("%TYPE acc;", tiny)
	if err != template.ErrOverflow {
		t.Fatalf("expected ErrOverflow, got n=%d err=%v", n, err)
	}
	if n != -1 {
		t.Fatalf("expected -1 on overflow, got %d", n)
	}
}

func TestHalfWordPlaceholders(t *testing.T) {
	t.Parallel()
	e, err := template.New(dtype.ComplexDouble, 1, 64, 32, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := e.Spit("%HALFWORD h; %QUARTERWORD q; %HALFQUARTERWORD hq;")
	if err != nil {
		t.Fatalf("Spit: %v", err)
	}
	if out != "double h; float q; float hq;" {
		t.Fatalf("unexpected narrowing expansion: %q", out)
	}
}
