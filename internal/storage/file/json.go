package file

import (
	"encoding/json"

	"github.com/aanand-mishra/people-registry/internal/types"
)

// JSON stores the list as a pretty-printed UTF-8 JSON array whose keys
// are the record field names as declared ("FirstName", "Course", ...).
type JSON[T types.Record] struct{}

// NewJSON returns a JSON provider for T.
func NewJSON[T types.Record]() *JSON[T] {
	return &JSON[T]{}
}

// Load decodes the array stored at path.
func (j *JSON[T]) Load(path string) ([]T, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}

	var data []T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return orEmpty(data), nil
}

// Save encodes data with two-space indentation and overwrites path.
func (j *JSON[T]) Save(path string, data []T) error {
	raw, err := json.MarshalIndent(orEmpty(data), "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(raw, '\n'))
}
