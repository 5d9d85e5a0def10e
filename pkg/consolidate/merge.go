package consolidate

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ConsolidatedTag marks records produced by merging a cluster. Tagged
// records are exempt from archive truncation.
const ConsolidatedTag = "consolidated"

// minSummaryLength is the shortest Summarizer result accepted as a real
// summary. Anything shorter is treated like a summarization failure.
const minSummaryLength = 10

// merge folds each cluster into a single representative record. Clusters
// are summarized strictly one at a time, in order; total latency is the sum
// of the per-cluster round trips.
//
// For each cluster the Summarizer is invoked with the members' contents in
// group order. A failed call, or a result shorter than ten characters,
// leaves that cluster unmerged and the run moves on — summarization
// problems are recovered here and never surface to the caller. On success
// the highest-scored member becomes the representative: its content is
// replaced by the summary, it gains the consolidated tag, its importance
// rises to the cluster maximum, and its metadata records the fold. All
// other members are removed.
//
// Returns the collapsed working slice and the number of records removed.
func (c *Consolidator) merge(ctx context.Context, records []Record, groups [][]int, now time.Time) ([]Record, int) {
	removed := make(map[int]bool)
	merged := 0

	for _, group := range groups {
		contents := make([]string, len(group))
		for i, idx := range group {
			contents[i] = records[idx].Content
		}

		summary, err := c.summarizer.Summarize(ctx, contents)
		if err != nil {
			c.logger.Warn("cluster summarization failed, leaving cluster unmerged",
				zap.Int("members", len(group)),
				zap.Error(err))
			c.metrics.recordSummarizerError(ctx)
			continue
		}
		if len(summary) < minSummaryLength {
			c.logger.Warn("summary too short, leaving cluster unmerged",
				zap.Int("members", len(group)),
				zap.Int("summary_length", len(summary)))
			c.metrics.recordSummarizerError(ctx)
			continue
		}

		// Representative: highest score, earliest group position on ties.
		rep := group[0]
		maxImportance := records[group[0]].Importance
		for _, idx := range group[1:] {
			if records[idx].score() > records[rep].score() {
				rep = idx
			}
			if records[idx].Importance > maxImportance {
				maxImportance = records[idx].Importance
			}
		}

		r := records[rep]
		r.Content = summary
		r.Tags = r.withTag(ConsolidatedTag)
		r.Importance = maxImportance
		r.Metadata = r.withMetadata(map[string]any{
			"consolidatedFrom": len(group),
			"consolidatedAt":   now,
		})
		records[rep] = r

		for _, idx := range group {
			if idx != rep {
				removed[idx] = true
			}
		}
		merged += len(group) - 1

		c.logger.Info("cluster merged",
			zap.String("representative_id", r.ID),
			zap.Int("members", len(group)),
			zap.Int("summary_length", len(summary)))
	}

	if len(removed) == 0 {
		return records, 0
	}

	survivors := make([]Record, 0, len(records)-len(removed))
	for i, r := range records {
		if !removed[i] {
			survivors = append(survivors, r)
		}
	}
	return survivors, merged
}
