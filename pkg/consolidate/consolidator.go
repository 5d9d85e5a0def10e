package consolidate

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Consolidator runs the consolidation pipeline. It is safe for concurrent
// use: each Consolidate call clones its input into an owned working set and
// shares no mutable state with other calls.
type Consolidator struct {
	cfg        settings
	logger     *zap.Logger
	metrics    *Metrics
	summarizer Summarizer
	now        func() time.Time
}

// Option configures a Consolidator.
type Option func(*Consolidator)

// WithConfig overrides the default pipeline configuration. Unset Config
// fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Consolidator) {
		c.cfg = cfg.resolve()
	}
}

// WithSummarizer enables the cluster and merge phases. Without a
// summarizer the pipeline runs decay, dedupe and archive only.
func WithSummarizer(s Summarizer) Option {
	return func(c *Consolidator) {
		c.summarizer = s
	}
}

// WithClock overrides the time source used for decay ages and report
// timestamps. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Consolidator) {
		c.now = now
	}
}

// WithMetrics replaces the default Metrics instance.
func WithMetrics(m *Metrics) Option {
	return func(c *Consolidator) {
		c.metrics = m
	}
}

// New creates a Consolidator with default configuration.
func New(logger *zap.Logger, opts ...Option) (*Consolidator, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}

	c := &Consolidator{
		cfg:    Config{}.resolve(),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(logger)
	}
	return c, nil
}

// Consolidate runs the full pipeline over a snapshot of records and returns
// the transformed collection with a before/after report.
//
// The input slice and its records are only read, never written: the
// pipeline works on a cloned collection and replaces changed records with
// fresh values. Empty input is valid and yields an all-zero report.
//
// The context is passed to the Summarizer; a caller wanting bounded merge
// latency should enforce a deadline there. No other phase blocks.
func (c *Consolidator) Consolidate(ctx context.Context, records []Record) ([]Record, Report) {
	started := time.Now()
	now := c.now()

	c.logger.Info("consolidation started",
		zap.Int("records", len(records)),
		zap.Bool("summarizer", c.summarizer != nil))

	before := countTiers(records)

	working := make([]Record, len(records))
	copy(working, records)

	phaseStart := time.Now()
	working, decayed := c.decay(working, now)
	c.metrics.recordPhase(ctx, "decay", time.Since(phaseStart), decayed)

	phaseStart = time.Now()
	working, deduplicated := c.dedupe(working)
	c.metrics.recordPhase(ctx, "dedupe", time.Since(phaseStart), deduplicated)

	var clustersFound, summarized int
	if c.summarizer != nil {
		phaseStart = time.Now()
		groups := c.cluster(working)
		clustersFound = len(groups)
		c.metrics.recordPhase(ctx, "cluster", time.Since(phaseStart), 0)

		if clustersFound > 0 {
			phaseStart = time.Now()
			working, summarized = c.merge(ctx, working, groups, c.now())
			c.metrics.recordPhase(ctx, "merge", time.Since(phaseStart), summarized)
		}
	}

	phaseStart = time.Now()
	working, archived := c.archive(working)
	c.metrics.recordPhase(ctx, "archive", time.Since(phaseStart), archived)

	report := Report{
		Timestamp:     c.now(),
		Duration:      time.Since(started),
		Before:        before,
		After:         countTiers(working),
		Decayed:       decayed,
		Deduplicated:  deduplicated,
		ClustersFound: clustersFound,
		Summarized:    summarized,
		Archived:      archived,
	}

	c.logger.Info("consolidation completed",
		zap.Duration("duration", report.Duration),
		zap.Int("records_before", report.Before.Total),
		zap.Int("records_after", report.After.Total),
		zap.Int("decayed", decayed),
		zap.Int("deduplicated", deduplicated),
		zap.Int("clusters_found", clustersFound),
		zap.Int("summarized", summarized),
		zap.Int("archived", archived))

	return working, report
}
