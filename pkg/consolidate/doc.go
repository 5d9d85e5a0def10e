// Package consolidate transforms a snapshot of memory records: it ages
// records through storage tiers, removes near-duplicates, groups and
// optionally merges semantically related records, and compacts long-lived
// archive content.
//
// The package is a pure, stateless transformation. It owns no storage,
// schedules nothing, and performs no I/O of its own: given the same input
// records and configuration it produces the same output. The caller's
// records are never mutated; every run operates on a cloned working set.
//
// # Pipeline
//
// A Consolidator runs the phases in a fixed order:
//
//	Decay -> Deduplicate -> (Cluster -> Merge, when a Summarizer is set) -> Archive
//
// Decay advances each record at most one tier per run, based on its
// effective age (age in days, discounted by access count and importance).
// Deduplicate removes the lower-scored member of any record pair whose
// embedding similarity exceeds the threshold. Cluster groups warm and cold
// records around greedy seeds, and Merge folds each cluster into its
// highest-scored member using the injected Summarizer. Archive truncates
// oversized archive-tier content.
//
// # Summarization
//
// Merging only runs when a Summarizer is supplied via WithSummarizer.
// Summarizer failures (errors, empty or sub-10-character results) are
// recovered per cluster: the cluster is left unmerged and the run continues.
// See the summarizer package for production implementations.
//
// # Usage
//
//	c, err := consolidate.New(logger, consolidate.WithSummarizer(s))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records, report := c.Consolidate(ctx, records)
//	fmt.Printf("decayed=%d deduplicated=%d summarized=%d\n",
//	    report.Decayed, report.Deduplicated, report.Summarized)
//
// Forget is a standalone utility, not part of the pipeline: it drops every
// record whose embedding similarity to a query vector reaches a threshold.
package consolidate
