package clblas

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opencl-go/clblas/internal/dispatch"
	"github.com/opencl-go/clblas/internal/eventsbuf"
	"github.com/opencl-go/clblas/internal/identity"
	"github.com/opencl-go/clblas/internal/imagepool"
	"github.com/opencl-go/clblas/internal/kernelcache"
	"github.com/opencl-go/clblas/internal/pattern"
	"github.com/opencl-go/clblas/internal/patterns"
)

// defaultKernelCacheBytes bounds the compiled-kernel footprint the cache retains before
// evicting records, oldest-inserted first, that nothing outside the cache still holds.
const defaultKernelCacheBytes = 64 << 20

// library is the single library-context object spec §9's "Global mutable state" design
// note calls for: every shared cache and pool Setup/Teardown govern lives here rather than
// in bare package-level state, so the reentrancy the spec asks for is a property of this
// struct, not an accident of how many global vars happen to exist.
type library struct {
	config     Config
	dispatcher *dispatch.Dispatcher
	images     *imagepool.Pool
	events     *eventsbuf.Buffer
	log        *logrus.Logger
}

var (
	instanceMu sync.Mutex
	instance   *library
)

// Setup initializes the process-wide library instance: it reads Config from the
// environment, constructs the kernel cache, scratch-image pool, decompose-events buffer,
// and pattern registry, and registers every pattern this package ships. The scratch-image
// pool is only wired into the dispatcher when Config.ScratchImagesEnabled is set; otherwise
// no pattern's ImgPackMode is ever consulted, matching spec's single-capability-bit
// redesign note. It returns ErrAlreadyInitialized if called again before an intervening
// Teardown.
func Setup() error {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance != nil {
		return ErrAlreadyInitialized
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	registry := pattern.NewRegistry()
	registry.Register("Sgemm", patterns.NewSgemmTile())
	registry.Register("Dgemm", patterns.NewDgemmTile())
	registry.Register("Saxpy", patterns.NewSaxpyScalar())

	config := loadConfig()
	images := imagepool.New(log)
	events := eventsbuf.New()
	dispatcher := dispatch.New(identity.NewCache(), kernelcache.New(defaultKernelCacheBytes, nil), registry, log)
	dispatcher.Events = events
	if config.ScratchImagesEnabled {
		dispatcher.Images = images
	}

	instance = &library{
		config:     config,
		dispatcher: dispatcher,
		images:     images,
		events:     events,
		log:        log,
	}
	return nil
}

// Teardown releases the process-wide library instance, including its kernel cache,
// scratch-image pool, and decompose-events buffer. It returns ErrNotInitialized if called
// without a prior successful Setup. After it returns, every routine in this package again
// returns ErrNotInitialized until the next Setup.
func Teardown() error {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		return ErrNotInitialized
	}
	instance.events.Teardown()
	instance = nil
	return nil
}

// current returns the active instance, or ErrNotInitialized if Setup has not been called
// (or Teardown has since been called without a following Setup).
func current() (*library, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		return nil, ErrNotInitialized
	}
	return instance, nil
}
