// Package dtype maps the logical BLAS element types to the byte widths, vector widths, and
// precision flags the kernel generator and solver patterns need (spec §3 "Element type",
// component C2).
package dtype

import "fmt"

// ElementType identifies one of the element types the BLAS surface supports.
type ElementType int

// Recognized ElementType values.
const (
	RealSingle ElementType = iota
	RealDouble
	ComplexSingle
	ComplexDouble
	UnsignedIndex
)

// String names the element type, matching the suffix convention used across the BLAS
// surface (S, D, C, Z).
func (t ElementType) String() string {
	switch t {
	case RealSingle:
		return "S"
	case RealDouble:
		return "D"
	case ComplexSingle:
		return "C"
	case ComplexDouble:
		return "Z"
	case UnsignedIndex:
		return "U"
	default:
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
}

// Descriptor captures everything downstream components need to know about an ElementType.
type Descriptor struct {
	// ByteWidth is the size, in bytes, of one scalar element.
	ByteWidth int
	// BaseVectorWidth is the widest vector the element type supports loading/storing as a
	// single vectorized access (before any per-kernel vector-width selection narrows it).
	BaseVectorWidth int
	// IsDouble gates device capability checks: devices without native double support
	// cannot run a kernel parameterized with a double-precision Descriptor.
	IsDouble bool
	// IsComplex gates emission of the complex mul/div helper functions in the template
	// engine (spec §4.1).
	IsComplex bool
	// CName is the element's name as it appears in generated kernel source.
	CName string
}

var descriptors = map[ElementType]Descriptor{
	RealSingle:    {ByteWidth: 4, BaseVectorWidth: 4, IsDouble: false, IsComplex: false, CName: "float"},
	RealDouble:    {ByteWidth: 8, BaseVectorWidth: 4, IsDouble: true, IsComplex: false, CName: "double"},
	ComplexSingle: {ByteWidth: 8, BaseVectorWidth: 2, IsDouble: false, IsComplex: true, CName: "float2"},
	ComplexDouble: {ByteWidth: 16, BaseVectorWidth: 2, IsDouble: true, IsComplex: true, CName: "double2"},
	UnsignedIndex: {ByteWidth: 4, BaseVectorWidth: 4, IsDouble: false, IsComplex: false, CName: "uint"},
}

// ErrUnknownElementType is returned by Describe for a value outside the recognized range.
var ErrUnknownElementType = fmt.Errorf("unknown element type")

// Describe returns the Descriptor for t.
func Describe(t ElementType) (Descriptor, error) {
	d, ok := descriptors[t]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrUnknownElementType, int(t))
	}
	return d, nil
}

// HalfWord returns the element type used to express %HALFWORD in the template engine: the
// real element type with half the component width (float2 -> float, double2 -> double).
// Real scalar types have no half-word narrowing and return themselves.
func HalfWord(t ElementType) ElementType {
	switch t {
	case ComplexSingle:
		return RealSingle
	case ComplexDouble:
		return RealDouble
	default:
		return t
	}
}

// QuarterWord returns the element type used to express %QUARTERWORD: one step narrower than
// HalfWord, floored at RealSingle since no narrower scalar type exists in this type system.
func QuarterWord(t ElementType) ElementType {
	half := HalfWord(t)
	if half == RealDouble {
		return RealSingle
	}
	return half
}

// HalfQuarterWord returns the element type used to express %HALFQUARTERWORD, the narrowest
// derived type the template engine exposes. It is floored at RealSingle the same way
// QuarterWord is.
func HalfQuarterWord(t ElementType) ElementType {
	return QuarterWord(t)
}
