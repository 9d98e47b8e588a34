package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a StatsSource as Prometheus gauges labelled graph=<name>.
// Stats are read once per scrape.
type Collector struct {
	src   StatsSource
	name  string
	descs []*prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector for src. Register it with
// prometheus.Registerer.Register or MustRegister.
func NewCollector(name string, src StatsSource) (*Collector, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	descs := make([]*prometheus.Desc, len(gauges))
	for i, gg := range gauges {
		descs[i] = prometheus.NewDesc(MetricPrefix+gg.name, gg.help, []string{"graph"}, nil)
	}

	return &Collector{src: src, name: name, descs: descs}, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	for i, gg := range gauges {
		ch <- prometheus.MustNewConstMetric(c.descs[i], prometheus.GaugeValue, float64(gg.read(st)), c.name)
	}
}
