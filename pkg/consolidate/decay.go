package consolidate

import (
	"math"
	"time"
)

// decay advances each record's tier by at most one step based on its
// effective age. Records that changed are replaced with updated copies in
// the owned working slice; the count of changed records is returned.
//
// Effective age discounts raw age for usage and importance:
//
//	accessBoost   = min(accessCount * 0.5, 5)      // days credited back
//	multiplier    = 1 + importance*2               // importance slows aging
//	effectiveAge  = (ageDays - accessBoost) / multiplier
//
// A hot record moves to warm when effectiveAge exceeds hotDays, warm to
// cold past warmDays, cold to archive past coldDays. Archive is terminal.
// A record advances one step per run even when its effective age clears
// several thresholds; reaching archive from hot takes three runs.
func (c *Consolidator) decay(records []Record, now time.Time) ([]Record, int) {
	changed := 0
	for i, r := range records {
		ageDays := now.Sub(r.CreatedAt).Hours() / 24
		accessBoost := math.Min(float64(r.AccessCount)*0.5, 5)
		multiplier := 1 + r.Importance*2
		effectiveAge := (ageDays - accessBoost) / multiplier

		var next Tier
		switch r.Tier {
		case TierHot:
			if effectiveAge > c.cfg.hotDays {
				next = TierWarm
			} else {
				continue
			}
		case TierWarm:
			if effectiveAge > c.cfg.warmDays {
				next = TierCold
			} else {
				continue
			}
		case TierCold:
			if effectiveAge > c.cfg.coldDays {
				next = TierArchive
			} else {
				continue
			}
		default:
			continue
		}

		r.Tier = next
		records[i] = r
		changed++
	}
	return records, changed
}
