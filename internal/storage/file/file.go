// Package file implements the file-backed storage providers: binary
// (MessagePack), XML, JSON and a pipe-delimited text format.
//
// Every provider follows the same rules:
//
//   - Load on a missing or zero-length file returns an empty list.
//   - Load returns decode errors as they are; nothing is retried.
//   - Save truncates the file and writes the whole list. Writes are not
//     atomic: a crash mid-write can leave a corrupt file behind.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aanand-mishra/people-registry/internal/types"
)

// filePerm is the mode used when Save creates a file.
const filePerm fs.FileMode = 0o644

// readFile returns the content of path, or nil when the file does not
// exist or is empty.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, nil
	}

	return os.ReadFile(path)
}

// writeFile replaces the content of path with data.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// tagOf returns the type tag of the record type T.
func tagOf[T types.Record]() string {
	var zero T
	return zero.RecordType()
}

// orEmpty turns a nil slice into an empty one so encoders never write
// "null" and callers never receive nil.
func orEmpty[T any](data []T) []T {
	if data == nil {
		return []T{}
	}
	return data
}
