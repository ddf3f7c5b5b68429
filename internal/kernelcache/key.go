package kernelcache

import "github.com/opencl-go/clblas/compute"

// MaxSubdims bounds the subproblem-dimension tuple carried in a Key (spec §3: "subproblem
// dimensions up to MAX_SUBDIMS").
const MaxSubdims = 5

// Key identifies an interchangeable kernel shape: the device and context it was built for,
// its work dimensionality, and its subproblem decomposition. Two records sharing a Key are
// interchangeable only when their extras also compare equal under the bucket's predicate.
type Key struct {
	Device         compute.Device
	Context        compute.Context
	Dimensionality int
	NumSubdims     int
	Subdims        [MaxSubdims]int32
}

// NewKey builds a Key from a subdims slice, which must not exceed MaxSubdims entries.
func NewKey(device compute.Device, context compute.Context, dimensionality int, subdims []int32) Key {
	k := Key{Device: device, Context: context, Dimensionality: dimensionality}
	n := len(subdims)
	if n > MaxSubdims {
		n = MaxSubdims
	}
	k.NumSubdims = n
	copy(k.Subdims[:n], subdims[:n])
	return k
}
