package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricPrefix prefixes every exported metric name.
const MetricPrefix = "slotgraph_"

// ErrNilSource indicates a nil StatsSource.
var ErrNilSource = errors.New("telemetry: nil stats source")

// RegisterMetrics registers one Int64ObservableGauge per occupancy series on
// meter, all fed by a single callback that snapshots src once per
// collection. Every observation carries the attribute graph=name.
//
// Unregister the returned registration to stop observing src.
func RegisterMetrics(meter metric.Meter, name string, src StatsSource) (metric.Registration, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	instruments := make([]metric.Int64ObservableGauge, len(gauges))
	observables := make([]metric.Observable, len(gauges))
	for i, gg := range gauges {
		inst, err := meter.Int64ObservableGauge(
			MetricPrefix+gg.name,
			metric.WithDescription(gg.help),
		)
		if err != nil {
			return nil, fmt.Errorf("telemetry: gauge %s: %w", gg.name, err)
		}
		instruments[i] = inst
		observables[i] = inst
	}
	attrs := metric.WithAttributes(attribute.String("graph", name))

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		st := src.Stats()
		for i, gg := range gauges {
			o.ObserveInt64(instruments[i], int64(gg.read(st)), attrs)
		}
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: register callback: %w", err)
	}

	return reg, nil
}
