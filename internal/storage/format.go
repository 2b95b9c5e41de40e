package storage

import (
	"fmt"
	"strings"

	"github.com/aanand-mishra/people-registry/internal/storage/file"
	"github.com/aanand-mishra/people-registry/internal/storage/sqlite"
	"github.com/aanand-mishra/people-registry/internal/types"
)

// Format names an on-disk representation.
type Format string

const (
	FormatBinary Format = "binary"
	FormatXML    Format = "xml"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatSQLite Format = "sqlite"
)

// Formats lists every supported format in menu order.
var Formats = []Format{FormatBinary, FormatXML, FormatJSON, FormatText, FormatSQLite}

// ParseFormat accepts a format name or its file extension ("bin", ".txt").
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for _, f := range Formats {
		if s == string(f) || s == strings.TrimPrefix(f.Extension(), ".") {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown storage format %q", s)
}

// Extension returns the conventional file extension of the format.
func (f Format) Extension() string {
	switch f {
	case FormatBinary:
		return ".bin"
	case FormatXML:
		return ".xml"
	case FormatJSON:
		return ".json"
	case FormatText:
		return ".txt"
	case FormatSQLite:
		return ".db"
	default:
		return ""
	}
}

// DefaultPath returns the file name used when no path is configured.
func (f Format) DefaultPath() string {
	return "data" + f.Extension()
}

// NewProvider returns the provider implementing format for record type T.
func NewProvider[T types.Record](format Format) (Provider[T], error) {
	switch format {
	case FormatBinary:
		return file.NewBinary[T](), nil
	case FormatXML:
		return file.NewXML[T](), nil
	case FormatJSON:
		return file.NewJSON[T](), nil
	case FormatText:
		return file.NewText[T](), nil
	case FormatSQLite:
		return sqlite.New[T](), nil
	default:
		return nil, fmt.Errorf("NewProvider: unknown storage format %q", format)
	}
}
