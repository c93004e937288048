// Package vectorindex implements a flat inner-product index over
// L2-normalised embeddings. Each document gets its own index, sized in
// the hundreds of vectors, so exhaustive scoring beats any
// approximate structure here.
package vectorindex

import (
	"fmt"
	"math"
	"sort"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// Hit pairs an indexed chunk record with its similarity score.
type Hit struct {
	Record domain.ChunkRecord
	Score  float64
}

// Index is a flat inner-product index. Vectors and records are held in
// parallel slices and stay in insertion order.
type Index struct {
	dim     int
	vectors [][]float32
	records []domain.ChunkRecord
}

// New creates an empty index for vectors of the given dimensionality.
func New(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: index dimension must be positive, got %d", domain.ErrInvalidInput, dim)
	}
	return &Index{dim: dim}, nil
}

// Dimensions returns the vector dimensionality the index accepts.
func (ix *Index) Dimensions() int { return ix.dim }

// Len returns the number of indexed vectors.
func (ix *Index) Len() int { return len(ix.vectors) }

// Records returns the chunk records in insertion order. The slice is
// shared; callers must not mutate it.
func (ix *Index) Records() []domain.ChunkRecord { return ix.records }

// Add appends a vector and its record. The vector is normalised before
// storage so inner product equals cosine similarity at query time.
func (ix *Index) Add(vec []float32, rec domain.ChunkRecord) error {
	if len(vec) != ix.dim {
		return fmt.Errorf("%w: vector has %d dimensions, index expects %d", domain.ErrInvalidInput, len(vec), ix.dim)
	}
	ix.vectors = append(ix.vectors, Normalise(vec))
	ix.records = append(ix.records, rec)
	return nil
}

// Search scores the query against every vector and returns the top k
// hits in descending score order. The query is normalised first.
func (ix *Index) Search(query []float32, k int) ([]Hit, error) {
	return ix.search(query, k, nil)
}

// SearchSubset restricts scoring to the given vector positions. An
// empty candidate set yields no hits.
func (ix *Index) SearchSubset(query []float32, candidates []int, k int) ([]Hit, error) {
	if candidates == nil {
		candidates = []int{}
	}
	return ix.search(query, k, candidates)
}

func (ix *Index) search(query []float32, k int, candidates []int) ([]Hit, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: query has %d dimensions, index expects %d", domain.ErrInvalidInput, len(query), ix.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	query = Normalise(query)

	positions := candidates
	if positions == nil {
		positions = make([]int, len(ix.vectors))
		for i := range positions {
			positions[i] = i
		}
	}

	hits := make([]Hit, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(ix.vectors) {
			continue
		}
		hits = append(hits, Hit{
			Record: ix.records[pos],
			Score:  dot(query, ix.vectors[pos]),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Normalise returns an L2-normalised copy of the vector. Zero vectors
// are returned unchanged to avoid division by zero.
func Normalise(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	out := make([]float32, len(vec))
	if sum == 0 {
		copy(out, vec)
		return out
	}
	norm := math.Sqrt(sum)
	for i, v := range vec {
		out[i] = float32(float64(v) / norm)
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
