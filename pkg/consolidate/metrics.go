package consolidate

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/fyrsmithlabs/memtide/pkg/consolidate"

// Metrics holds consolidation pipeline metrics. Instruments come from the
// global OTel meter provider; without a host-configured SDK they are no-ops,
// so the library itself never produces telemetry traffic.
type Metrics struct {
	meter            metric.Meter
	logger           *zap.Logger
	phaseDuration    metric.Float64Histogram
	recordsChanged   metric.Int64Counter
	summarizerErrors metric.Int64Counter
}

// NewMetrics creates a Metrics instance for the consolidation pipeline.
func NewMetrics(logger *zap.Logger) *Metrics {
	m := &Metrics{
		meter:  otel.Meter(instrumentationName),
		logger: logger,
	}
	m.init()
	return m
}

func (m *Metrics) init() {
	var err error

	m.phaseDuration, err = m.meter.Float64Histogram(
		"memtide.consolidate.phase_duration_seconds",
		metric.WithDescription("Duration of each consolidation phase (decay, dedupe, cluster, merge, archive) in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0),
	)
	if err != nil {
		m.logger.Warn("failed to create phase duration histogram", zap.Error(err))
	}

	m.recordsChanged, err = m.meter.Int64Counter(
		"memtide.consolidate.records_changed_total",
		metric.WithDescription("Records changed per phase: tiers advanced, duplicates removed, records merged away, contents truncated"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		m.logger.Warn("failed to create records changed counter", zap.Error(err))
	}

	m.summarizerErrors, err = m.meter.Int64Counter(
		"memtide.consolidate.summarizer_errors_total",
		metric.WithDescription("Summarizer calls that failed or returned an unusable result, leaving a cluster unmerged"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.logger.Warn("failed to create summarizer errors counter", zap.Error(err))
	}
}

// recordPhase records one phase's duration and change count.
func (m *Metrics) recordPhase(ctx context.Context, phase string, duration time.Duration, changed int) {
	attrs := metric.WithAttributes(attribute.String("phase", phase))
	if m.phaseDuration != nil {
		m.phaseDuration.Record(ctx, duration.Seconds(), attrs)
	}
	if m.recordsChanged != nil && changed > 0 {
		m.recordsChanged.Add(ctx, int64(changed), attrs)
	}
}

// recordSummarizerError counts a recovered summarization failure.
func (m *Metrics) recordSummarizerError(ctx context.Context) {
	if m.summarizerErrors != nil {
		m.summarizerErrors.Add(ctx, 1)
	}
}
