package identity_test

import (
	"testing"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/identity"
)

func newDevice(t *testing.T, info compute.DeviceInfo) compute.Device {
	t.Helper()
	compute.ResetForTest()
	platform := compute.RegisterPlatform()
	device, err := compute.RegisterDevice(platform, info)
	if err != nil {
		t.Fatalf("RegisterDevice: %v", err)
	}
	return device
}

func TestLookupProbesAndMemoizes(t *testing.T) {
	device := newDevice(t, compute.DeviceInfo{
		Vendor:                  "Simulated",
		Name:                    "gfx1030",
		MaxComputeUnits:         60,
		MaxWorkGroupSize:        1024,
		LocalMemSize:            65536,
		MinDataTypeAlignByte:    128,
		AddressBits:             64,
		PreferredVectorWidthDbl: 2,
		NativeDouble:            true,
		WavefrontWidth:          32,
	})
	cache := identity.NewCache()

	first, err := cache.Lookup(device)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if first.Family != "rdna2" {
		t.Errorf("Family = %q, want rdna2", first.Family)
	}
	if first.Chip != "gfx1030" {
		t.Errorf("Chip = %q, want gfx1030", first.Chip)
	}
	if !first.NativeDouble {
		t.Errorf("expected NativeDouble true")
	}

	second, err := cache.Lookup(device)
	if err != nil {
		t.Fatalf("second Lookup: %v", err)
	}
	if second != first {
		t.Errorf("second lookup returned different identity: %+v vs %+v", second, first)
	}
}

func TestLookupDefaultsWavefrontWidth(t *testing.T) {
	device := newDevice(t, compute.DeviceInfo{
		Vendor: "Simulated",
		Name:   "unknownchip",
	})
	cache := identity.NewCache()

	id, err := cache.Lookup(device)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if id.WavefrontWidth != 32 {
		t.Errorf("WavefrontWidth = %d, want default 32", id.WavefrontWidth)
	}
	if id.Family != "unknown" {
		t.Errorf("Family = %q, want unknown", id.Family)
	}
}

func TestLookupUnregisteredDeviceFails(t *testing.T) {
	compute.ResetForTest()
	cache := identity.NewCache()
	if _, err := cache.Lookup(compute.Device{}); err == nil {
		t.Fatalf("expected error for unregistered device")
	}
}

func TestFamilyOfPrefixMatching(t *testing.T) {
	tt := []struct {
		name   string
		chip   string
		family string
	}{
		{"vega", "gfx900", "vega"},
		{"rdna3-case-insensitive", "GFX1100", "rdna3"},
		{"southern-islands", "tahitiXT", "southern-islands"},
		{"hawaii", "hawaii", "hawaii"},
		{"simulated-generic", "sim0", "generic"},
		{"unmatched", "nvidia-gv100", "unknown"},
	}
	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			device := newDevice(t, compute.DeviceInfo{Vendor: "Simulated", Name: tc.chip})
			cache := identity.NewCache()
			id, err := cache.Lookup(device)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if id.Family != tc.family {
				t.Errorf("Family = %q, want %q", id.Family, tc.family)
			}
		})
	}
}
