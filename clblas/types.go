package clblas

import "github.com/opencl-go/clblas/internal/pattern"

// Order selects row-major or column-major storage for a call's matrix operands.
type Order int

// Recognized Order values.
const (
	RowMajor Order = iota
	ColumnMajor
)

func (o Order) toPattern() (pattern.Order, error) {
	switch o {
	case RowMajor:
		return pattern.RowMajor, nil
	case ColumnMajor:
		return pattern.ColumnMajor, nil
	default:
		return 0, ErrInvalidOrder
	}
}

// Transpose selects whether a matrix operand is used as-is, transposed, or conjugate
// transposed.
type Transpose int

// Recognized Transpose values.
const (
	NoTrans Transpose = iota
	Trans
	ConjTrans
)

func (t Transpose) toPattern() pattern.Transpose {
	switch t {
	case Trans:
		return pattern.Trans
	case ConjTrans:
		return pattern.ConjTrans
	default:
		return pattern.NoTrans
	}
}
