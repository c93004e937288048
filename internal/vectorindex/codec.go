package vectorindex

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/akashhguptaa/Legal-ChatBot/internal/core/domain"
)

// Binary index layout: a little-endian uint32 dimension, a uint32
// vector count, then count*dim float32 values. Chunk records travel
// separately as JSON so the metadata stays inspectable on disk.
const headerSize = 8

// Marshal serialises the index into a vector blob and a metadata blob.
func (ix *Index) Marshal() (indexBlob, metaBlob []byte, err error) {
	indexBlob = make([]byte, headerSize+4*ix.dim*len(ix.vectors))
	binary.LittleEndian.PutUint32(indexBlob[0:4], uint32(ix.dim))
	binary.LittleEndian.PutUint32(indexBlob[4:8], uint32(len(ix.vectors)))

	off := headerSize
	for _, vec := range ix.vectors {
		for _, v := range vec {
			binary.LittleEndian.PutUint32(indexBlob[off:off+4], math.Float32bits(v))
			off += 4
		}
	}

	metaBlob, err = json.Marshal(ix.records)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal chunk records: %w", err)
	}
	return indexBlob, metaBlob, nil
}

// Unmarshal reconstructs an index from its two blobs. The vector count
// must match the number of chunk records.
func Unmarshal(indexBlob, metaBlob []byte) (*Index, error) {
	if len(indexBlob) < headerSize {
		return nil, fmt.Errorf("%w: index blob too short (%d bytes)", domain.ErrInvalidInput, len(indexBlob))
	}
	dim := int(binary.LittleEndian.Uint32(indexBlob[0:4]))
	count := int(binary.LittleEndian.Uint32(indexBlob[4:8]))

	want := headerSize + 4*dim*count
	if dim <= 0 || len(indexBlob) != want {
		return nil, fmt.Errorf("%w: index blob has %d bytes, expected %d for %d vectors of dimension %d",
			domain.ErrInvalidInput, len(indexBlob), want, count, dim)
	}

	var records []domain.ChunkRecord
	if err := json.Unmarshal(metaBlob, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chunk records: %w", err)
	}
	if len(records) != count {
		return nil, fmt.Errorf("%w: %d vectors but %d chunk records", domain.ErrInvalidInput, count, len(records))
	}

	ix := &Index{
		dim:     dim,
		vectors: make([][]float32, count),
		records: records,
	}
	off := headerSize
	for i := 0; i < count; i++ {
		vec := make([]float32, dim)
		for j := 0; j < dim; j++ {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(indexBlob[off : off+4]))
			off += 4
		}
		ix.vectors[i] = vec
	}
	return ix, nil
}
