// Package identity normalizes an accelerator device into the fixed-shape fingerprint the
// solver-selection and decomposition logic consult (spec §3 "Device identity", component C3).
package identity

import (
	"strings"
	"sync"

	"github.com/opencl-go/clblas/compute"
)

// Identity is the immutable capability fingerprint of one device.
type Identity struct {
	Vendor            string
	Chip              string
	Family            string
	WavefrontWidth    uint32
	MaxWorkGroupSize  uintptr
	LDSByteCapacity   uint64
	MinAlignBytes     uint32
	AddressBits       uint32
	NativeDouble      bool
	MaxComputeUnits   uint32
	PreferredVecWidth uint32
}

// familiesByChipPrefix maps a case-insensitive device-name prefix to a device family name.
// Real accelerator product lines are named in generations; this mirrors the reference
// implementation's approach of classifying a device by a known-chip-name table rather than
// a capability query, since "family" affects tuning defaults, not correctness.
var familiesByChipPrefix = []struct {
	prefix string
	family string
}{
	{"gfx9", "vega"},
	{"gfx10", "rdna2"},
	{"gfx11", "rdna3"},
	{"tahiti", "southern-islands"},
	{"hawaii", "hawaii"},
	{"sim", "generic"},
}

func familyOf(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range familiesByChipPrefix {
		if strings.HasPrefix(lower, entry.prefix) {
			return entry.family
		}
	}
	return "unknown"
}

func probe(device compute.Device) (Identity, error) {
	info, err := compute.GetDeviceInfo(device)
	if err != nil {
		return Identity{}, err
	}
	wavefront := info.WavefrontWidth
	if wavefront == 0 {
		wavefront = 32
	}
	return Identity{
		Vendor:            info.Vendor,
		Chip:              info.Name,
		Family:            familyOf(info.Name),
		WavefrontWidth:    wavefront,
		MaxWorkGroupSize:  info.MaxWorkGroupSize,
		LDSByteCapacity:   info.LocalMemSize,
		MinAlignBytes:     info.MinDataTypeAlignByte,
		AddressBits:       info.AddressBits,
		NativeDouble:      info.NativeDouble,
		MaxComputeUnits:   info.MaxComputeUnits,
		PreferredVecWidth: info.PreferredVectorWidthDbl,
	}, nil
}

// Cache memoizes device identity probes per device handle, since the underlying info query
// is assumed to be comparatively expensive and the identity never changes once probed
// (spec §3: "treated as immutable for the device handle").
type Cache struct {
	mu    sync.Mutex
	byDev map[compute.Device]Identity
}

// NewCache creates an empty identity cache.
func NewCache() *Cache {
	return &Cache{byDev: make(map[compute.Device]Identity)}
}

// Lookup returns the identity for device, probing and caching it on first use.
func (c *Cache) Lookup(device compute.Device) (Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.byDev[device]; ok {
		return id, nil
	}
	id, err := probe(device)
	if err != nil {
		return Identity{}, err
	}
	c.byDev[device] = id
	return id, nil
}
