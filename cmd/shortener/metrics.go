package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shortener"

type Metrics struct {
	registry    *prometheus.Registry
	shortened   prometheus.Counter
	redirects   *prometheus.CounterVec
	invalidKeys prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		shortened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "urls_shortened_total",
			Help:      "Number of successful shorten requests.",
		}),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "key_lookups_total",
			Help:      "Number of key lookups by outcome.",
		}, []string{"outcome"}),
		invalidKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_keys_total",
			Help:      "Number of keys rejected by the base62 decoder.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Number of lookups served from the LRU cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Number of lookups that went to the repository.",
		}),
	}
	m.registry.MustRegister(m.shortened, m.redirects, m.invalidKeys, m.cacheHits, m.cacheMisses)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
