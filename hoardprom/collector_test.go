package hoardprom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoard-go/hoard"
)

func gatherValues(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range mfs {
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			values[mf.GetName()] = m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			values[mf.GetName()] = m.GetGauge().GetValue()
		}
	}
	return values
}

func TestCollector(t *testing.T) {
	cache, err := hoard.New[string, int](2)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(cache, Opts{})))

	cache.Set("a", 1)
	cache.Get("a") // hit
	cache.Get("b") // miss
	cache.Set("b", 2)
	cache.Set("c", 3) // eviction

	values := gatherValues(t, reg)

	assert.Equal(t, 1.0, values["hoard_cache_hits_total"])
	assert.Equal(t, 1.0, values["hoard_cache_misses_total"])
	assert.Equal(t, 1.0, values["hoard_cache_evictions_total"])
	assert.Equal(t, 2.0, values["hoard_cache_entries"])
	assert.Equal(t, 2.0, values["hoard_cache_capacity"])
}

func TestCollectorNamespace(t *testing.T) {
	cache, err := hoard.New[string, int](10)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(cache, Opts{Namespace: "app"})))

	values := gatherValues(t, reg)

	assert.Contains(t, values, "app_cache_hits_total")
	assert.NotContains(t, values, "hoard_cache_hits_total")
}

func TestCollectorConstLabels(t *testing.T) {
	sessions, err := hoard.New[string, int](10)
	require.NoError(t, err)
	users, err := hoard.New[string, int](10)
	require.NoError(t, err)

	// two caches on one registry, distinguished by label
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(sessions, Opts{
		ConstLabels: prometheus.Labels{"cache": "sessions"},
	})))
	require.NoError(t, reg.Register(NewCollector(users, Opts{
		ConstLabels: prometheus.Labels{"cache": "users"},
	})))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)

	for _, mf := range mfs {
		assert.Len(t, mf.GetMetric(), 2, "one series per cache for %s", mf.GetName())
	}
}
