// Package metrics exposes a deprecations registry as a Prometheus collector.
//
// The collector is read-only and optional: the core deprecations package does
// not depend on it, and registering it has no effect on dedup or dispatch
// behavior. Values are computed from a registry snapshot at scrape time.
package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/DavidPrevot/deprecations"
)

// Collector reports deprecation-notice counts from a single registry.
type Collector struct {
	registry *deprecations.Registry
	unique   *prom.Desc
	occur    *prom.Desc
}

var _ prom.Collector = (*Collector)(nil)

// NewCollector builds a collector over reg. A nil reg means the process
// default registry.
func NewCollector(reg *deprecations.Registry) *Collector {
	if reg == nil {
		reg = deprecations.Default()
	}
	return &Collector{
		registry: reg,
		unique: prom.NewDesc(
			prom.BuildFQName("deprecations", "", "unique_notices"),
			"Distinct deprecation notices observed or pre-registered.",
			nil, nil,
		),
		occur: prom.NewDesc(
			prom.BuildFQName("deprecations", "", "notice_occurrences_total"),
			"Occurrences of each deprecation notice by link.",
			[]string{"link"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prom.Desc) {
	ch <- c.unique
	ch <- c.occur
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prom.Metric) {
	snapshot := c.registry.TriggeredDeprecations()
	ch <- prom.MustNewConstMetric(c.unique, prom.GaugeValue, float64(len(snapshot)))
	for link, count := range snapshot {
		ch <- prom.MustNewConstMetric(c.occur, prom.CounterValue, float64(count), link)
	}
}
