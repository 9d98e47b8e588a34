// Package telemetry exports graph occupancy (live and free slots, buffer
// capacity) to metrics backends.
//
// Two exporters read the same StatsSource at collection time:
//
//   - RegisterMetrics registers OpenTelemetry observable gauges on a meter.
//   - Collector is a prometheus.Collector for a prometheus.Registerer.
//
// Collection happens on the exporter's goroutine. A *core.Graph that is
// mutated concurrently must be wrapped in a *guard.Graph first.
package telemetry
