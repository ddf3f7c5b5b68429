package kernelcache

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	size      prometheus.Gauge
	hits      prometheus.Counter
	misses    prometheus.Counter
	inserts   prometheus.Counter
	evictions prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clblas_kernel_cache_bytes",
			Help: "Current total footprint of cached kernel records, in bytes.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clblas_kernel_cache_hits_total",
			Help: "Number of kernel cache lookups that found an existing record.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clblas_kernel_cache_misses_total",
			Help: "Number of kernel cache lookups that found no matching record.",
		}),
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clblas_kernel_cache_inserts_total",
			Help: "Number of kernel records inserted into the cache.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clblas_kernel_cache_evictions_total",
			Help: "Number of kernel records evicted, either to make room for an insert or by Clean.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.size, m.hits, m.misses, m.inserts, m.evictions)
	}
	return m
}
