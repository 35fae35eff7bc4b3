package vectorindex

import "math"

// Hit is a single nearest-neighbor match.
type Hit struct {
	Position int     // position in Add order; joins back to the catalog
	Score    float32 // inner product with the query (cosine for unit vectors)
}

// Index supports inner-product k-nearest-neighbor queries over vectors of a
// fixed dimension. Implementations are safe for concurrent Search calls once
// building is finished; Add is build-time only.
type Index interface {
	// Add appends vectors to the index in order. All vectors must match the
	// index dimension and should be unit-normalized.
	Add(vectors [][]float32) error

	// Search returns up to k hits ordered by score descending.
	// k larger than Len() is clamped; k <= 0 returns no hits.
	Search(query []float32, k int) ([]Hit, error)

	// Len returns the number of stored vectors.
	Len() int

	// Dim returns the configured vector dimension.
	Dim() int
}

// NormalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	// Can't normalize zero vector
	if magnitude == 0 {
		result := make([]float32, len(v))
		return result
	}

	result := make([]float32, len(v))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}

// dotProduct calculates the dot product of two equal-length vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
