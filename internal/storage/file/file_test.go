package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/people-registry/internal/types"
)

type provider[T types.Record] interface {
	Load(path string) ([]T, error)
	Save(path string, data []T) error
}

var (
	students = []types.Student{
		types.NewStudent("Ivan", "Franko", "PF123456", "ID001", 3, types.MilitaryNotServed),
		types.NewStudent("Lesia", "Ukrainka", "PU654321", "ID002", 5, "Mob007"),
	}
	players = []types.FootballPlayer{
		types.NewFootballPlayer("Andrii", "Shevchenko", "P1", "Dynamo"),
		types.NewFootballPlayer("Serhii", "Rebrov", "P2", ""),
	}
	lawyers = []types.Lawyer{
		types.NewLawyer("Olha", "Koval", "P3", "Koval-and-Partners"),
	}
)

func providers[T types.Record]() map[string]provider[T] {
	return map[string]provider[T]{
		"binary": NewBinary[T](),
		"xml":    NewXML[T](),
		"json":   NewJSON[T](),
		"text":   NewText[T](),
	}
}

func roundTrip[T types.Record](t *testing.T, want []T) {
	t.Helper()

	for name, p := range providers[T]() {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data")

			require.NoError(t, p.Save(path, want))

			got, err := p.Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("students", func(t *testing.T) { roundTrip(t, students) })
	t.Run("football players", func(t *testing.T) { roundTrip(t, players) })
	t.Run("lawyers", func(t *testing.T) { roundTrip(t, lawyers) })
}

func TestLoad_MissingOrEmptyFile(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	for name, p := range providers[types.Student]() {
		t.Run(name, func(t *testing.T) {
			got, err := p.Load(filepath.Join(dir, "missing"))
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)

			got, err = p.Load(empty)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSave_OverwritesPreviousContent(t *testing.T) {
	for name, p := range providers[types.Lawyer]() {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data")

			require.NoError(t, p.Save(path, []types.Lawyer{
				types.NewLawyer("A", "B", "1", "X"),
				types.NewLawyer("C", "D", "2", "Y"),
			}))
			require.NoError(t, p.Save(path, lawyers))

			got, err := p.Load(path)
			require.NoError(t, err)
			assert.Equal(t, lawyers, got)
		})
	}
}

func TestSave_EmptyList(t *testing.T) {
	for name, p := range providers[types.Student]() {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data")

			require.NoError(t, p.Save(path, nil))

			got, err := p.Load(path)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("{not valid"), 0o644))

	_, err := NewJSON[types.Student]().Load(path)
	assert.Error(t, err)

	_, err = NewBinary[types.Student]().Load(path)
	assert.Error(t, err)

	_, err = NewXML[types.Student]().Load(path)
	assert.Error(t, err)
}

func TestJSON_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, NewJSON[types.Student]().Save(path, students[:1]))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "FirstName": "Ivan",
    "LastName": "Franko",
    "Passport": "PF123456",
    "StudentID": "ID001",
    "Course": 3,
    "MilitaryID": "N/A"
  }
]
`
	assert.Equal(t, want, string(raw))
}

func TestXML_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xml")
	require.NoError(t, NewXML[types.FootballPlayer]().Save(path, players[:1]))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<ArrayOfFootballPlayer>
  <FootballPlayer>
    <FirstName>Andrii</FirstName>
    <LastName>Shevchenko</LastName>
    <Passport>P1</Passport>
    <Team>Dynamo</Team>
  </FootballPlayer>
</ArrayOfFootballPlayer>
`
	assert.Equal(t, want, string(raw))
}

func TestXML_RejectsOtherRecordType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xml")
	require.NoError(t, NewXML[types.Lawyer]().Save(path, lawyers))

	_, err := NewXML[types.Student]().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ArrayOfLawyer")
}
