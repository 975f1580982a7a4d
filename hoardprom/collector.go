// Package hoardprom exposes hoard cache statistics as Prometheus
// metrics.
//
// The cache itself is single-threaded, but its counters are atomic, so
// the collector can be scraped from the Prometheus handler goroutine
// without synchronizing with cache operations.
package hoardprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hoard-go/hoard"
)

// Source is the part of the cache surface the collector reads. Every
// *hoard.Cache satisfies it.
type Source interface {
	Stats() hoard.Snapshot
	Capacity() int
}

// Collector implements prometheus.Collector over a cache's statistics
// snapshot. Register one collector per cache, distinguishing caches
// with const labels:
//
//	reg.MustRegister(hoardprom.NewCollector(cache, hoardprom.Opts{
//		ConstLabels: prometheus.Labels{"cache": "sessions"},
//	}))
type Collector struct {
	src Source

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	entries   *prometheus.Desc
	capacity  *prometheus.Desc
}

// Opts configures a Collector.
type Opts struct {
	// Namespace is prepended to every metric name. Defaults to "hoard".
	Namespace string

	// ConstLabels are attached to every metric.
	ConstLabels prometheus.Labels
}

// NewCollector creates a Collector reading from src.
func NewCollector(src Source, opts Opts) *Collector {
	ns := opts.Namespace
	if ns == "" {
		ns = "hoard"
	}

	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(ns, "cache", name),
			help, nil, opts.ConstLabels,
		)
	}

	return &Collector{
		src:       src,
		hits:      desc("hits_total", "Number of cache hits."),
		misses:    desc("misses_total", "Number of cache misses."),
		evictions: desc("evictions_total", "Number of automatic evictions."),
		entries:   desc("entries", "Current number of live entries."),
		capacity:  desc("capacity", "Fixed capacity of the cache."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.entries
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(snap.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(snap.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(snap.Evictions))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(snap.Entries))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.src.Capacity()))
}

var _ prometheus.Collector = (*Collector)(nil)
