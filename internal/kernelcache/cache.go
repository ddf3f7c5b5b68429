package kernelcache

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/opencl-go/clblas/compute"
	"github.com/opencl-go/clblas/internal/list"
)

// ErrFootprintExceedsLimit is returned by Add when a record's own footprint is larger than
// the cache's total size limit; no amount of eviction could make room for it.
var ErrFootprintExceedsLimit = fmt.Errorf("kernelcache: record footprint exceeds cache limit")

// ErrDuplicateRecord is returned by Add when a record with an equal (key, extras) already
// exists for the solver-id.
var ErrDuplicateRecord = fmt.Errorf("kernelcache: record already cached for this key and extras")

// ErrInvalidSolverID is returned by Add and Find for an empty solver-id.
var ErrInvalidSolverID = fmt.Errorf("kernelcache: invalid solver-id")

// ExtrasPredicate compares two patterns' extras blobs, returning 0 when they should be
// treated as interchangeable within a key bucket. The kernel cache uses this, not bare key
// equality, to decide whether two records with the same Key are actually the same kernel.
type ExtrasPredicate func(stored, query interface{}) int

// DefaultExtrasPredicate treats two extras values as equivalent exactly when they are
// deeply equal. Patterns whose extras carry a looser notion of equivalence (e.g. "same
// memory level, regardless of minor tuning fields") should supply their own predicate
// instead of relying on this one.
func DefaultExtrasPredicate(stored, query interface{}) int {
	if reflect.DeepEqual(stored, query) {
		return 0
	}
	return 1
}

// Record is one cached, built kernel. It holds its compiled program strongly until
// destroyed. KernelName is opaque to the cache itself (never read by Add/Find/evict); it is
// carried purely so a caller can recreate a compute.Kernel for the cached Program without
// needing a second index keyed by Program.
type Record struct {
	SolverID     string
	Key          Key
	Extras       interface{}
	Program      compute.Program
	KernelName   string
	Footprint    int64
	SourceAbsent bool
	Destructor   func()

	refs       int
	resident   bool
	bucketElem list.Element[*Record]
	orderElem  list.Element[*Record]
}

// Alloc creates an empty record with one hold, owned by the caller. Fill in its fields
// before passing it to Add.
func Alloc() *Record {
	return &Record{refs: 1}
}

// Cache deduplicates built kernels across BLAS calls under a global byte-size budget.
type Cache struct {
	mu      sync.Mutex
	limit   int64
	used    int64
	buckets map[string]*list.List[*Record]
	order   *list.List[*Record]
	metrics *metrics
}

// New creates a cache bounded to limit bytes. If reg is non-nil, cache metrics are
// registered against it.
func New(limit int64, reg prometheus.Registerer) *Cache {
	return &Cache{
		limit:   limit,
		buckets: make(map[string]*list.List[*Record]),
		order:   list.New[*Record](),
		metrics: newMetrics(reg),
	}
}

func (c *Cache) bucket(solverID string) *list.List[*Record] {
	b, ok := c.buckets[solverID]
	if !ok {
		b = list.New[*Record]()
		c.buckets[solverID] = b
	}
	return b
}

// Add inserts record under solverID, evicting unreferenced records as needed to stay within
// the cache's byte-size limit. It fails if solverID is empty, record's footprint alone
// exceeds the limit, or an equivalent record (same Key, extras equal under predicate) is
// already cached.
func (c *Cache) Add(solverID string, record *Record, predicate ExtrasPredicate) error {
	if solverID == "" {
		return ErrInvalidSolverID
	}
	if predicate == nil {
		predicate = DefaultExtrasPredicate
	}
	if record.Footprint > c.limit {
		return ErrFootprintExceedsLimit
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.bucket(solverID)
	if _, found := bucket.Find(func(r *Record) bool {
		return r.Key == record.Key && predicate(r.Extras, record.Extras) == 0
	}); found {
		return ErrDuplicateRecord
	}

	for c.used+record.Footprint > c.limit {
		if !c.evictOneLocked() {
			return ErrFootprintExceedsLimit
		}
	}

	record.SolverID = solverID
	record.refs++ // the cache's own hold, on top of the caller's Alloc hold.
	record.resident = true
	record.bucketElem = bucket.PushBack(record)
	record.orderElem = c.order.PushBack(record)
	c.used += record.Footprint

	if c.metrics != nil {
		c.metrics.inserts.Inc()
		c.metrics.size.Set(float64(c.used))
	}
	return nil
}

// evictOneLocked removes the oldest unreferenced (refs == 1, meaning only the cache itself
// holds it) record across all solver-id buckets. It reports whether it found one.
func (c *Cache) evictOneLocked() bool {
	elem, ok := c.order.Find(func(r *Record) bool { return r.refs == 1 })
	if !ok {
		return false
	}
	record := c.order.Value(elem)
	c.destroyLocked(record)
	if c.metrics != nil {
		c.metrics.evictions.Inc()
	}
	return true
}

// destroyLocked removes record from its bucket and the global order, releases its footprint,
// and runs its destructor. Callers must hold c.mu.
func (c *Cache) destroyLocked(record *Record) {
	if bucket, ok := c.buckets[record.SolverID]; ok {
		bucket.Remove(record.bucketElem)
	}
	c.order.Remove(record.orderElem)
	record.resident = false
	c.used -= record.Footprint
	if c.metrics != nil {
		c.metrics.size.Set(float64(c.used))
	}
	if record.Destructor != nil {
		record.Destructor()
	}
}

// Find looks up a record by (solverID, key, extras), using predicate (DefaultExtrasPredicate
// if nil) to compare extras within the key's bucket. On a hit it increments the record's
// reference count; the caller must Put it when done.
func (c *Cache) Find(solverID string, key Key, extras interface{}, predicate ExtrasPredicate) (*Record, bool, error) {
	if solverID == "" {
		return nil, false, ErrInvalidSolverID
	}
	if predicate == nil {
		predicate = DefaultExtrasPredicate
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.buckets[solverID]
	if !ok {
		if c.metrics != nil {
			c.metrics.misses.Inc()
		}
		return nil, false, nil
	}
	elem, found := bucket.Find(func(r *Record) bool {
		return r.Key == key && predicate(r.Extras, extras) == 0
	})
	if !found {
		if c.metrics != nil {
			c.metrics.misses.Inc()
		}
		return nil, false, nil
	}
	record := bucket.Value(elem)
	record.refs++
	if c.metrics != nil {
		c.metrics.hits.Inc()
	}
	return record, true, nil
}

// Get increments record's reference count for a caller that already holds a valid reference
// to it by other means (e.g. it just Found it and is sharing the handle further).
func (c *Cache) Get(record *Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	record.refs++
}

// Put releases one hold on record. When the hold count reaches zero, record is removed from
// the cache (if still resident) and destroyed.
func (c *Cache) Put(record *Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	record.refs--
	if record.refs > 0 {
		return
	}
	if record.resident {
		c.destroyLocked(record)
		return
	}
	if record.Destructor != nil {
		record.Destructor()
	}
}

// AvailableSize returns the number of bytes still free under the cache's limit.
func (c *Cache) AvailableSize() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.limit - c.used
}

// Clean evicts every currently-unreferenced record (refs == 1, cache-only), regardless of
// whether the cache is under memory pressure.
func (c *Cache) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.evictOneLocked() {
	}
}

// Destroy forcibly tears down every record in the cache regardless of reference count, runs
// each destructor, and leaves the cache empty. It is meant for library teardown, not routine
// maintenance.
func (c *Cache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Each(func(r *Record) bool {
		r.resident = false
		if r.Destructor != nil {
			r.Destructor()
		}
		return true
	})
	c.buckets = make(map[string]*list.List[*Record])
	c.order = list.New[*Record]()
	c.used = 0
	if c.metrics != nil {
		c.metrics.size.Set(0)
	}
}
