package compute

import (
	"sync"

	"github.com/google/uuid"
)

// DeviceInfo holds the static capability set of a simulated device. Fields mirror the
// subset of compute-API device queries the dispatch pipeline actually consults
// (spec §6's "Device-info queries" list).
type DeviceInfo struct {
	Vendor                  string
	Name                    string
	MaxComputeUnits         uint32
	MaxWorkGroupSize        uintptr
	LocalMemSize            uint64
	MinDataTypeAlignByte    uint32
	AddressBits             uint32
	PreferredVectorWidthDbl uint32
	NativeDouble            bool
	WavefrontWidth          uint32
	Extensions              []string
}

type deviceRecord struct {
	platform Platform
	info     DeviceInfo
}

type contextRecord struct {
	devices []Device
	refs    int
}

type queueRecord struct {
	context Context
	device  Device
	props   QueueProperties
	refs    int
}

type registry struct {
	mu        sync.RWMutex
	platforms map[Platform]bool
	devices   map[Device]*deviceRecord
	contexts  map[Context]*contextRecord
	queues    map[CommandQueue]*queueRecord
	programs  map[Program]*programRecord
	kernels   map[Kernel]*kernelRecord
	mem       map[MemObject]*memRecord
	events    map[Event]*eventRecord
}

func newRegistry() *registry {
	return &registry{
		platforms: make(map[Platform]bool),
		devices:   make(map[Device]*deviceRecord),
		contexts:  make(map[Context]*contextRecord),
		queues:    make(map[CommandQueue]*queueRecord),
		programs:  make(map[Program]*programRecord),
		kernels:   make(map[Kernel]*kernelRecord),
		mem:       make(map[MemObject]*memRecord),
		events:    make(map[Event]*eventRecord),
	}
}

var reg = newRegistry()

// ResetForTest discards all registered platforms, devices and resources. It exists because
// this package simulates a single process-wide accelerator fabric the way a real ICD loader
// would be process-wide; tests need a clean fabric between cases.
func ResetForTest() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg = newRegistry()
}

// RegisterPlatform adds a simulated platform to the fabric and returns its handle.
func RegisterPlatform() Platform {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	p := Platform(uuid.New())
	reg.platforms[p] = true
	return p
}

// RegisterDevice attaches a simulated device with the given capabilities to a platform.
func RegisterDevice(platform Platform, info DeviceInfo) (Device, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if !reg.platforms[platform] {
		return Device{}, ErrInvalidPlatform
	}
	d := Device(uuid.New())
	reg.devices[d] = &deviceRecord{platform: platform, info: info}
	return d, nil
}
