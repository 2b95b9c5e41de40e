package file

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aanand-mishra/people-registry/internal/types"
)

// separator splits the fields of a text record.
const separator = "|"

var (
	errTooFewFields = errors.New("too few fields")
	errUnsafeValue  = errors.New("value contains a separator or line break")
)

// Text stores one record per line:
//
//	Student|Ivan|Franko|PF123456|ID001|3|N/A
//	FootballPlayer|Andrii|Shevchenko|P1|Dynamo
//	Lawyer|Olha|Koval|P2|Koval-and-Partners
//
// Load keeps only the lines tagged with T's type name. A line that cannot
// be parsed is dropped and logged at debug level; the rest of the file is
// still loaded. Save rejects field values containing the separator or a
// line break.
type Text[T types.Record] struct{}

// NewText returns a text provider for T.
func NewText[T types.Record]() *Text[T] {
	return &Text[T]{}
}

// Load parses every line of path tagged for T.
func (t *Text[T]) Load(path string) ([]T, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}

	tag := tagOf[T]()
	data := []T{}

	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, separator)
		if parts[0] != tag {
			continue
		}

		rec, err := parseLine[T](parts)
		if err != nil {
			slog.Debug("skipping malformed line",
				slog.String("path", path),
				slog.Int("line", i+1),
				slog.String("type", tag),
				slog.String("error", err.Error()))
			continue
		}
		data = append(data, rec)
	}

	return data, nil
}

// Save writes one line per record and overwrites path. Nothing is written
// when any record holds a value that cannot be stored on one line.
func (t *Text[T]) Save(path string, data []T) error {
	var sb strings.Builder
	for i, rec := range data {
		line, err := formatLine(rec)
		if err != nil {
			return fmt.Errorf("text: record %d: %w", i, err)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return writeFile(path, []byte(sb.String()))
}

func formatLine[T types.Record](rec T) (string, error) {
	p := rec.Identity()
	fields := []string{rec.RecordType(), p.FirstName, p.LastName, p.Passport}

	switch r := any(rec).(type) {
	case types.Student:
		fields = append(fields, r.StudentID, strconv.Itoa(r.Course), r.MilitaryID)
	case types.FootballPlayer:
		fields = append(fields, r.Team)
	case types.Lawyer:
		fields = append(fields, r.Company)
	}

	for _, f := range fields {
		if strings.ContainsAny(f, separator+"\r\n") {
			return "", fmt.Errorf("%w: %q", errUnsafeValue, f)
		}
	}

	return strings.Join(fields, separator), nil
}

func parseLine[T types.Record](parts []string) (T, error) {
	var rec T

	switch r := any(&rec).(type) {
	case *types.Student:
		if len(parts) < 7 {
			return rec, errTooFewFields
		}
		course, err := strconv.Atoi(strings.TrimSpace(parts[5]))
		if err != nil {
			return rec, fmt.Errorf("course: %w", err)
		}
		*r = types.NewStudent(parts[1], parts[2], parts[3], parts[4], course, parts[6])
	case *types.FootballPlayer:
		if len(parts) < 5 {
			return rec, errTooFewFields
		}
		*r = types.NewFootballPlayer(parts[1], parts[2], parts[3], parts[4])
	case *types.Lawyer:
		if len(parts) < 5 {
			return rec, errTooFewFields
		}
		*r = types.NewLawyer(parts[1], parts[2], parts[3], parts[4])
	}

	return rec, nil
}
