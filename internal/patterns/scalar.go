package patterns

import (
	"encoding/binary"
	"math"
)

// encodeUint32 marshals v as the raw little-endian bytes a generated kernel's "uint" scalar
// argument expects (spec §9 initSizeKarg note: kernel-side size_t-shaped arguments are
// carried at uint width, not host size_t width).
func encodeUint32(v int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))
	return buf
}

// encodeFloat32 marshals v as the raw little-endian bytes a generated kernel's "float"
// scalar argument expects.
func encodeFloat32(v float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
	return buf
}

// encodeFloat64 marshals v as the raw little-endian bytes a generated kernel's "double"
// scalar argument expects.
func encodeFloat64(v float64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
	return buf
}

// getF32 reads the float32 at element index i of a raw device-memory view.
func getF32(buf []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : i*4+4]))
}

// setF32 writes v at element index i of a raw device-memory view.
func setF32(buf []byte, i int, v float32) {
	binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
}

// getU32 reads the uint32 scalar bound at a kernel argument's raw bytes.
func getU32(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

// getF32Scalar reads the float32 scalar bound at a kernel argument's raw bytes.
func getF32Scalar(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

// getF64 reads the float64 at element index i of a raw device-memory view.
func getF64(buf []byte, i int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8 : i*8+8]))
}

// setF64 writes v at element index i of a raw device-memory view.
func setF64(buf []byte, i int, v float64) {
	binary.LittleEndian.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
}

// getF64Scalar reads the float64 scalar bound at a kernel argument's raw bytes.
func getF64Scalar(buf []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}
