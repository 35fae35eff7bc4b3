package vectorindex

import (
	"fmt"
	"os"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

const (
	indexMagic   = "osuidx"
	indexVersion = 1
)

// Save writes the index to a single file. The file carries the dimension,
// the corpus fingerprint and every vector, so a saved index can be reloaded
// and verified against the catalog without re-embedding anything.
func (f *Flat) Save(path string) error {
	size := ord.String.Size(indexMagic) +
		varint.Int.Size(indexVersion) +
		varint.Int.Size(f.dim) +
		varint.Uint64.Size(f.fingerprint) +
		varint.Int.Size(len(f.vectors))
	for _, v := range f.vectors {
		for _, val := range v {
			size += varint.Float32.Size(val)
		}
	}

	bs := make([]byte, size)
	n := ord.String.Marshal(indexMagic, bs)
	n += varint.Int.Marshal(indexVersion, bs[n:])
	n += varint.Int.Marshal(f.dim, bs[n:])
	n += varint.Uint64.Marshal(f.fingerprint, bs[n:])
	n += varint.Int.Marshal(len(f.vectors), bs[n:])
	for _, v := range f.vectors {
		for _, val := range v {
			n += varint.Float32.Marshal(val, bs[n:])
		}
	}

	return os.WriteFile(path, bs, 0644)
}

// Load reads a flat index previously written by Save.
func Load(path string) (*Flat, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	magic, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	if magic != indexMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptIndex, magic)
	}

	version, n1, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	n += n1
	if version != indexVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptIndex, version)
	}

	dim, n1, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	n += n1

	fingerprint, n1, err := varint.Uint64.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	n += n1

	count, n1, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	n += n1
	if count < 0 {
		return nil, fmt.Errorf("%w: negative vector count %d", ErrCorruptIndex, count)
	}

	index, err := NewFlat(dim)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	index.fingerprint = fingerprint

	index.vectors = make([][]float32, 0, count)
	for i := 0; i < count; i++ {
		v := make([]float32, dim)
		for j := 0; j < dim; j++ {
			val, n1, err := varint.Float32.Unmarshal(bs[n:])
			if err != nil {
				return nil, fmt.Errorf("%w: vector %d: %w", ErrCorruptIndex, i, err)
			}
			n += n1
			v[j] = val
		}
		index.vectors = append(index.vectors, v)
	}

	return index, nil
}
