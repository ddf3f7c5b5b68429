package dtype_test

import (
	"testing"

	"github.com/opencl-go/clblas/internal/dtype"
)

func TestDescribe(t *testing.T) {
	t.Parallel()
	tt := []struct {
		name      string
		elem      dtype.ElementType
		wantBytes int
		wantDbl   bool
		wantCplx  bool
	}{
		{"real-single", dtype.RealSingle, 4, false, false},
		{"real-double", dtype.RealDouble, 8, true, false},
		{"complex-single", dtype.ComplexSingle, 8, false, true},
		{"complex-double", dtype.ComplexDouble, 16, true, true},
	}
	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := dtype.Describe(tc.elem)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.ByteWidth != tc.wantBytes {
				t.Errorf("ByteWidth = %d, want %d", d.ByteWidth, tc.wantBytes)
			}
			if d.IsDouble != tc.wantDbl {
				t.Errorf("IsDouble = %v, want %v", d.IsDouble, tc.wantDbl)
			}
			if d.IsComplex != tc.wantCplx {
				t.Errorf("IsComplex = %v, want %v", d.IsComplex, tc.wantCplx)
			}
		})
	}
}

func TestDescribeUnknown(t *testing.T) {
	t.Parallel()
	if _, err := dtype.Describe(dtype.ElementType(99)); err == nil {
		t.Fatalf("expected error for unknown element type")
	}
}
