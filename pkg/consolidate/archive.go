package consolidate

import "go.uber.org/zap"

// archive compacts oversized archive-tier content. Records in the archive
// tier whose content exceeds the configured length are truncated to that
// many characters plus an ellipsis, with the original length preserved in
// metadata. Consolidated records are left alone — their content is already
// a distilled summary. A non-positive truncate length disables the phase.
func (c *Consolidator) archive(records []Record) ([]Record, int) {
	limit := c.cfg.archiveTruncateLength
	if limit <= 0 {
		return records, 0
	}

	truncated := 0
	for i, r := range records {
		if r.Tier != TierArchive || r.HasTag(ConsolidatedTag) {
			continue
		}
		content := []rune(r.Content)
		if len(content) <= limit {
			continue
		}

		r.Metadata = r.withMetadata(map[string]any{
			"truncated":      true,
			"originalLength": len(content),
		})
		r.Content = string(content[:limit]) + "..."
		records[i] = r
		truncated++

		c.logger.Debug("archive record truncated",
			zap.String("id", r.ID),
			zap.Int("original_length", len(content)))
	}
	return records, truncated
}
