// Package metrics records the result of an avg-line-width run as
// Prometheus gauges and writes them in the node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/benhoyt/linejunk/linewidth"
)

// LineWidth holds the gauges for one run. Each LineWidth has its own
// registry, so several can exist in one process (in tests, for example).
type LineWidth struct {
	Lines prometheus.Gauge
	Chars prometheus.Gauge
	Mean  prometheus.Gauge

	registry *prometheus.Registry
}

// NewLineWidth creates the gauges on a fresh registry. The mode label
// records whether widths were counted in characters or bytes.
func NewLineWidth(mode linewidth.Mode) *LineWidth {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"mode": mode.String()}
	return &LineWidth{
		Lines: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name:        "avg_line_width_lines",
			Help:        "Number of input lines counted",
			ConstLabels: labels,
		}),
		Chars: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name:        "avg_line_width_chars",
			Help:        "Total width of the counted lines, including terminators",
			ConstLabels: labels,
		}),
		Mean: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name:        "avg_line_width_mean",
			Help:        "Average line width (0 if there were no lines)",
			ConstLabels: labels,
		}),
		registry: registry,
	}
}

// Set records stats in the gauges.
func (m *LineWidth) Set(stats linewidth.Stats) {
	m.Lines.Set(float64(stats.Lines))
	m.Chars.Set(float64(stats.Width))
	mean, _ := stats.Mean()
	m.Mean.Set(mean)
}

// Registry returns the registry the gauges are registered on.
func (m *LineWidth) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes the gauges to path in the text exposition format. The
// file is written to a temporary name and renamed, so a collector never
// sees a partial file.
func (m *LineWidth) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}
