package consolidate

import "go.uber.org/zap"

// dedupe removes near-identical records. It scans every unordered pair in
// input order; when a pair's embedding similarity exceeds the threshold,
// the lower-scored record is dropped (ties keep the earlier one). Once the
// outer record of a pair is dropped it is not compared further. Survivors
// keep their original relative order.
func (c *Consolidator) dedupe(records []Record) ([]Record, int) {
	if len(records) < 2 {
		return records, 0
	}

	removed := make([]bool, len(records))
	dropped := 0

	for i := 0; i < len(records); i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(records); j++ {
			if removed[j] {
				continue
			}
			sim := CosineSimilarity(records[i].Embedding, records[j].Embedding)
			if sim <= c.cfg.deduplicateThreshold {
				continue
			}

			// Keep the more valuable duplicate; equal scores keep i.
			kept, gone := i, j
			if records[j].score() > records[i].score() {
				kept, gone = j, i
			}
			removed[gone] = true
			dropped++

			c.logger.Debug("duplicate record removed",
				zap.String("kept_id", records[kept].ID),
				zap.String("removed_id", records[gone].ID),
				zap.Float64("similarity", sim))

			if removed[i] {
				break
			}
		}
	}

	survivors := make([]Record, 0, len(records)-dropped)
	for i, r := range records {
		if !removed[i] {
			survivors = append(survivors, r)
		}
	}
	return survivors, dropped
}
