package genguard_test

import (
	"testing"

	"github.com/opencl-go/clblas/internal/genguard"
)

func TestFindGenerateFunctionDeduplicates(t *testing.T) {
	t.Parallel()
	g := genguard.New(0)
	calls := 0
	gen := func() (string, string, error) {
		calls++
		return "helper_mul", "float helper_mul(float a, float b) { return a*b; }", nil
	}

	name1, src1, err := g.FindGenerateFunction([]byte("mul:float"), gen)
	if err != nil {
		t.Fatalf("FindGenerateFunction: %v", err)
	}
	if name1 != "helper_mul" || src1 == "" {
		t.Fatalf("expected a fresh emission with source, got name=%q src=%q", name1, src1)
	}

	name2, src2, err := g.FindGenerateFunction([]byte("mul:float"), gen)
	if err != nil {
		t.Fatalf("second FindGenerateFunction: %v", err)
	}
	if name2 != name1 {
		t.Fatalf("expected same name on repeat, got %q vs %q", name2, name1)
	}
	if src2 != "" {
		t.Fatalf("expected no source on a cache hit, got %q", src2)
	}
	if calls != 1 {
		t.Fatalf("generator invoked %d times, want 1", calls)
	}
}

func TestFindGenerateFunctionDistinctPatterns(t *testing.T) {
	t.Parallel()
	g := genguard.New(0)
	_, _, err := g.FindGenerateFunction([]byte("mul:float"), func() (string, string, error) {
		return "helper_mul_float", "...", nil
	})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	_, _, err = g.FindGenerateFunction([]byte("mul:double"), func() (string, string, error) {
		return "helper_mul_double", "...", nil
	})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
}

func TestPatternSizeTruncation(t *testing.T) {
	t.Parallel()
	g := genguard.New(3)
	calls := 0
	gen := func() (string, string, error) {
		calls++
		return "helper", "...", nil
	}
	if _, _, err := g.FindGenerateFunction([]byte("mulA"), gen); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, _, err := g.FindGenerateFunction([]byte("mulB"), gen); err != nil {
		t.Fatalf("second: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected truncated patterns to collide, generator called %d times", calls)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	g := genguard.New(0)
	if _, _, err := g.FindGenerateFunction([]byte("x"), func() (string, string, error) {
		return "helper_x", "...", nil
	}); err != nil {
		t.Fatalf("FindGenerateFunction: %v", err)
	}
	g.Reset()
	if g.Len() != 0 {
		t.Fatalf("expected empty guard after Reset, got %d", g.Len())
	}
}
