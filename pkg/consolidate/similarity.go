package consolidate

import "math"

// CosineSimilarity computes the cosine similarity between two embedding
// vectors.
//
// Cosine similarity measures the cosine of the angle between two vectors,
// producing a value in [-1, 1]: 1 means the vectors point the same way, 0
// that they are orthogonal, -1 that they are opposed. It is symmetric in
// its arguments.
//
// Formula: cos(θ) = (A · B) / (||A|| * ||B||)
//
// Degenerate inputs — empty vectors, vectors of different lengths, or
// zero-magnitude vectors — yield exactly 0 rather than an error, which
// silently excludes the pair from any match-based decision.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		magA += x * x
		magB += y * y
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
