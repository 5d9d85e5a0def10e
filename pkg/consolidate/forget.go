package consolidate

// DefaultForgetThreshold is the similarity at which Forget drops a record.
const DefaultForgetThreshold = 0.7

// Forget returns the records whose embedding similarity to query is
// strictly below threshold, in their original order, along with the number
// of records dropped. Records with degenerate embeddings always survive,
// since their similarity is defined as 0.
//
// Forget is a standalone semantic-removal utility; the consolidation
// pipeline never calls it.
func Forget(records []Record, query []float32, threshold float64) ([]Record, int) {
	survivors := make([]Record, 0, len(records))
	for _, r := range records {
		if CosineSimilarity(r.Embedding, query) < threshold {
			survivors = append(survivors, r)
		}
	}
	return survivors, len(records) - len(survivors)
}
