package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestMenu_StudentFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.txt")
	session, err := NewSession(storage.FormatText, path, false)
	require.NoError(t, err)

	in := script(
		"1", // Student
		"1", "Ivan", "Franko", "123456789", "AB-12345", "5", "y", "654321",
		"1", "Lesia", "Ukrainka", "987654321", "CD-54321", "2", "n",
		"2",
		"3", "Ivan", "Franko", "123456789",
		"5",
		"4", "Lesia", "Ukrainka", "987654321",
		"4", "Lesia", "Ukrainka", "987654321",
		"6", // Back
		"5", // Exit
	)
	var out bytes.Buffer

	require.NoError(t, NewMenu(session, in, &out).Run())

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "Student added successfully."))
	assert.Contains(t, got, "Student: Lesia Ukrainka")
	assert.Contains(t, got, "reciting poems")
	assert.Contains(t, got, "Student Ivan Franko (AB-12345) is studying for course 5.")
	assert.Contains(t, got, "Fifth-Year Students Who Served (Total: 1)")
	assert.Contains(t, got, "Person removed successfully.")
	assert.Contains(t, got, "BUSINESS LOGIC ERROR:")
	assert.Contains(t, got, "person not found for removal")

	students, err := session.Students.GetAll()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ivan", students[0].FirstName)
	assert.Equal(t, "654321", students[0].MilitaryID)
}

func TestMenu_LawyerAndPlayerShareFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.db")
	session, err := NewSession(storage.FormatSQLite, path, true)
	require.NoError(t, err)

	in := script(
		"3", "1", "Olha", "Koval", "111111111", "Koval-and-Partners", "5",
		"2", "1", "Andrii", "Shevchenko", "222222222", "Dynamo", "5",
		"3", "3", "Olha", "Koval", "111111111", "5",
		"5",
	)
	var out bytes.Buffer

	require.NoError(t, NewMenu(session, in, &out).Run())
	assert.Contains(t, out.String(), "practicing law")

	lawyers, err := session.Lawyers.GetAll()
	require.NoError(t, err)
	assert.Len(t, lawyers, 1)

	players, err := session.FootballPlayers.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []types.FootballPlayerDTO{{
		PersonDTO: types.PersonDTO{FirstName: "Andrii", LastName: "Shevchenko", Passport: "222222222"},
		Team:      "Dynamo",
	}}, players)
}

func TestMenu_ShowsEmptyList(t *testing.T) {
	session, err := NewSession(storage.FormatBinary, filepath.Join(t.TempDir(), "data.bin"), false)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewMenu(session, script("2", "2", "5", "5"), &out).Run())

	assert.Contains(t, out.String(), "List of FootballPlayers")
	assert.Contains(t, out.String(), "List is empty.")
}

func TestMenu_ChangeSettings(t *testing.T) {
	dir := t.TempDir()
	session, err := NewSession(storage.FormatJSON, filepath.Join(dir, "data.json"), false)
	require.NoError(t, err)

	dbPath := filepath.Join(dir, "people.db")
	var out bytes.Buffer
	require.NoError(t, NewMenu(session, script("4", "5", dbPath, "5"), &out).Run())

	assert.Equal(t, storage.FormatSQLite, session.Format)
	assert.Equal(t, dbPath, session.Path)
	assert.Contains(t, out.String(), "Settings applied.")
}

func TestMenu_ChangeSettings_InvalidChoice(t *testing.T) {
	session, err := NewSession(storage.FormatXML, filepath.Join(t.TempDir(), "data.xml"), false)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewMenu(session, script("4", "9", "", "5"), &out).Run())

	assert.Contains(t, out.String(), "Invalid choice. Defaulting to JSON.")
	assert.Equal(t, storage.FormatJSON, session.Format)
	assert.Equal(t, "data.json", session.Path)
}

func TestMenu_EndOfInputExits(t *testing.T) {
	session, err := NewSession(storage.FormatText, filepath.Join(t.TempDir(), "data.txt"), false)
	require.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, NewMenu(session, script("1", "1", "Ivan"), &out).Run())
}

func TestMenu_IncorrectChoice(t *testing.T) {
	session, err := NewSession(storage.FormatText, filepath.Join(t.TempDir(), "data.txt"), false)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewMenu(session, script("42", "5"), &out).Run())
	assert.Contains(t, out.String(), "Value is incorrect")
}
