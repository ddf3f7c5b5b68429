// Package kernelcache deduplicates built kernels across BLAS calls and bounds the total
// memory they occupy (spec §4.4, component C7).
//
// A Record's reference count covers two kinds of holder uniformly: the cache's own hold
// while the record is resident, and every external holder obtained via Find or Get. Alloc
// gives the caller one hold; a successful Add gives the cache its own hold on top of that, so
// immediately after insertion a record has two holds. The caller must Put its own hold when
// done with its immediate use, the same as it would after any Find/Get — leaving the cache's
// hold as the sole survivor, which is exactly the "reference count exactly 1" eviction
// candidate the spec describes.
package kernelcache
