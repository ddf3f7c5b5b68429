package imagepool

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opencl-go/clblas/compute"
)

// ErrNotInPool is returned by Put and Remove for an image handle the pool does not know
// about.
var ErrNotInPool = fmt.Errorf("imagepool: image not in pool")

// ErrNotInUseByDevice is returned by Put when device does not currently hold a claim on
// image.
var ErrNotInUseByDevice = fmt.Errorf("imagepool: image not in use by device")

type record struct {
	image   compute.MemObject
	context compute.Context
	width   uintptr
	height  uintptr
	users   map[compute.Device]bool
}

func (r *record) area() uintptr { return r.width * r.height }

// Pool is a process-wide collection of shared scratch images, keyed by the (context, device)
// a caller requests them for.
type Pool struct {
	mu      sync.Mutex
	records map[compute.MemObject]*record
	log     *logrus.Logger
}

// New creates an empty pool. If log is nil, a logger that discards output is used.
func New(log *logrus.Logger) *Pool {
	if log == nil {
		log = logrus.New()
		log.SetOutput(discardWriter{})
	}
	return &Pool{records: make(map[compute.MemObject]*record), log: log}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Add creates a new fixed RGBA/uint32-format scratch image of the given dimensions on
// context and attaches it to the pool, returning a handle for later Remove.
func (p *Pool) Add(context compute.Context, width, height uintptr) (compute.MemObject, error) {
	image, err := compute.CreateImage2D(context, compute.MemReadWrite, width, height)
	if err != nil {
		return compute.MemObject{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records[image] = &record{
		image:   image,
		context: context,
		width:   width,
		height:  height,
		users:   make(map[compute.Device]bool),
	}
	return image, nil
}

// Get finds the image best matching the caller's requirement on (context, device): the
// unused-by-device image meeting width >= minWidth and area >= minSize, minimizing
// |area - bestSize|. On success the image is marked in-use by device and its reference count
// is incremented; the caller must Put it when done. Get returns ok == false if no image
// qualifies.
func (p *Pool) Get(context compute.Context, device compute.Device, bestSize, minSize, minWidth uintptr) (compute.MemObject, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var best *record
	var bestDiff uintptr
	for _, r := range p.records {
		if r.context != context {
			continue
		}
		if r.users[device] {
			continue
		}
		if r.width < minWidth {
			continue
		}
		area := r.area()
		if area < minSize {
			continue
		}
		diff := diffUintptr(area, bestSize)
		if best == nil || diff < bestDiff {
			best, bestDiff = r, diff
		}
	}
	if best == nil {
		return compute.MemObject{}, false, nil
	}
	if err := compute.RetainMemObject(best.image); err != nil {
		return compute.MemObject{}, false, err
	}
	best.users[device] = true
	p.log.WithFields(logrus.Fields{
		"device": device.String(),
		"width":  best.width,
		"height": best.height,
	}).Debug("scratch image reused")
	return best.image, true, nil
}

func diffUintptr(a, b uintptr) uintptr {
	if a > b {
		return a - b
	}
	return b - a
}

// Put releases device's claim on image.
func (p *Pool) Put(device compute.Device, image compute.MemObject) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.records[image]
	if !ok {
		return ErrNotInPool
	}
	if !r.users[device] {
		return ErrNotInUseByDevice
	}
	delete(r.users, device)
	return compute.ReleaseMemObject(image)
}

// Remove removes image from the pool. The caller is assumed to still own any outstanding
// use it already holds; Remove only releases the pool's own original creation reference.
func (p *Pool) Remove(image compute.MemObject) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.records[image]; !ok {
		return ErrNotInPool
	}
	delete(p.records, image)
	return compute.ReleaseMemObject(image)
}
