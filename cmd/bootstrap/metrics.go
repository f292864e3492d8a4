package bootstrap

import (
	"expense-matching/internal/infra/metrics"
	"expense-matching/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

type MetricsResult struct {
	fx.Out

	Recorder metrics.Recorder
	Gatherer prometheus.Gatherer
}

// NewMetrics returns a noop recorder and a nil gatherer when metrics are off,
// which keeps /metrics unmounted.
func NewMetrics(cfg config.Config) MetricsResult {
	if !cfg.Metrics.Enabled {
		return MetricsResult{Recorder: metrics.NewNoop()}
	}

	reg := prometheus.NewRegistry()
	return MetricsResult{
		Recorder: metrics.NewPrometheus(reg),
		Gatherer: reg,
	}
}
