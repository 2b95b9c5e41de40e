package file

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/aanand-mishra/people-registry/internal/types"
)

// Binary stores the list as a single MessagePack array. Each record is
// itself an array of its fields in declaration order, so the file is
// compact but only readable by this program.
type Binary[T types.Record] struct{}

// NewBinary returns a binary provider for T.
func NewBinary[T types.Record]() *Binary[T] {
	return &Binary[T]{}
}

// Load decodes the list stored at path.
func (b *Binary[T]) Load(path string) ([]T, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}

	var data []T
	if err := msgpack.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return orEmpty(data), nil
}

// Save encodes data and overwrites path.
func (b *Binary[T]) Save(path string, data []T) error {
	raw, err := msgpack.Marshal(orEmpty(data))
	if err != nil {
		return err
	}
	return writeFile(path, raw)
}
