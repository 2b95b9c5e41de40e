package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/people-registry/internal/types"
)

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	want := []types.Student{
		types.NewStudent("Ivan", "Franko", "PF123456", "ID001", 3, types.MilitaryNotServed),
		types.NewStudent("Lesia", "Ukrainka", "PU654321", "ID002", 5, "Mob007"),
	}

	p := New[types.Student]()
	require.NoError(t, p.Save(path, want))

	got, err := p.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLite_URIMetacharactersInPath(t *testing.T) {
	dir := t.TempDir()
	want := []types.Lawyer{types.NewLawyer("Olha", "Koval", "P3", "Koval-and-Partners")}

	for _, name := range []string{"people#1.db", "people%20x.db", "what?mode=memory.db", "with space.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			p := New[types.Lawyer]()

			require.NoError(t, p.Save(path, want))
			_, err := os.Stat(path)
			require.NoError(t, err, "Save must write the named file")

			got, err := p.Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSQLite_MissingOrEmptyFile(t *testing.T) {
	dir := t.TempDir()
	p := New[types.Lawyer]()

	missing := filepath.Join(dir, "missing.db")
	got, err := p.Load(missing)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err), "Load must not create the file")

	empty := filepath.Join(dir, "empty.db")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	got, err = p.Load(empty)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_TablesPerRecordType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	lawyers := []types.Lawyer{types.NewLawyer("Olha", "Koval", "P3", "Koval-and-Partners")}
	players := []types.FootballPlayer{types.NewFootballPlayer("Andrii", "Shevchenko", "P1", "Dynamo")}

	require.NoError(t, New[types.Lawyer]().Save(path, lawyers))

	// No football_players table yet.
	gotPlayers, err := New[types.FootballPlayer]().Load(path)
	require.NoError(t, err)
	assert.Empty(t, gotPlayers)

	require.NoError(t, New[types.FootballPlayer]().Save(path, players))

	gotLawyers, err := New[types.Lawyer]().Load(path)
	require.NoError(t, err)
	assert.Equal(t, lawyers, gotLawyers)

	gotPlayers, err = New[types.FootballPlayer]().Load(path)
	require.NoError(t, err)
	assert.Equal(t, players, gotPlayers)
}

func TestSQLite_SaveReplacesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	p := New[types.Lawyer]()

	require.NoError(t, p.Save(path, []types.Lawyer{
		types.NewLawyer("A", "B", "1", "X"),
		types.NewLawyer("C", "D", "2", "Y"),
	}))
	require.NoError(t, p.Save(path, []types.Lawyer{types.NewLawyer("C", "D", "2", "Y")}))

	got, err := p.Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].FirstName)
}

func TestSQLite_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not sqlite"), 0o644))

	_, err := New[types.Student]().Load(path)
	assert.Error(t, err)
}
