package consolidate

import "go.uber.org/zap"

// cluster groups similar warm- and cold-tier records for merging. It
// returns disjoint groups of indexes into records, each group at least
// minClusterSize large and listed in input order with its seed first.
//
// Grouping is greedy single-link to the seed: candidates are visited in
// input order; each unassigned candidate opens a group and absorbs every
// later-or-earlier unassigned candidate whose similarity to the seed (not
// to other members) reaches the cluster threshold. Groups that end up
// below minClusterSize are dissolved and their members stay available to
// later seeds. The outcome deliberately depends on input order, which
// keeps runs deterministic for a given snapshot.
func (c *Consolidator) cluster(records []Record) [][]int {
	candidates := make([]int, 0, len(records))
	for i, r := range records {
		if r.Tier == TierWarm || r.Tier == TierCold {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < c.cfg.minClusterSize {
		return nil
	}

	assigned := make(map[int]bool, len(candidates))
	var groups [][]int

	for _, seed := range candidates {
		if assigned[seed] {
			continue
		}

		group := []int{seed}
		for _, other := range candidates {
			if other == seed || assigned[other] {
				continue
			}
			sim := CosineSimilarity(records[seed].Embedding, records[other].Embedding)
			if sim >= c.cfg.clusterThreshold {
				group = append(group, other)
			}
		}

		if len(group) < c.cfg.minClusterSize {
			continue
		}

		for _, idx := range group {
			assigned[idx] = true
		}
		groups = append(groups, group)

		c.logger.Debug("cluster formed",
			zap.String("seed_id", records[seed].ID),
			zap.Int("members", len(group)))
	}

	return groups
}
