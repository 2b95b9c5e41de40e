package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, in string, args ...string) string {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRootCommand_ListFromConfig(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "people.txt")
	require.NoError(t, os.WriteFile(dataPath, []byte(
		"Lawyer|Olha|Koval|111111111|Koval-and-Partners\n"+
			"Student|Ivan|Franko|123456789|AB-12345|5|654321\n"), 0o644))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"env: prod\nstorage:\n  format: text\n  path: "+dataPath+"\n"), 0o644))

	got := runRoot(t, "", "--config", cfgPath, "list", "lawyer")
	assert.Contains(t, got, "Lawyer: Olha Koval")
	assert.NotContains(t, got, "Ivan")

	got = runRoot(t, "", "--config", cfgPath, "served")
	assert.Contains(t, got, "Fifth-Year Students Who Served (Total: 1)")
	assert.Contains(t, got, "Student: Ivan Franko")
}

func TestRootCommand_FlagsOverrideStorage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "people.db")

	got := runRoot(t, "", "--format", "sqlite", "--file", dbPath, "list", "student")
	assert.Contains(t, got, "List of Students")
	assert.Contains(t, got, "List is empty.")
}

func TestRootCommand_MenuIsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")

	got := runRoot(t, "5\n", "--format", "binary", "--file", path)
	assert.Contains(t, got, "Current file: "+path)
	assert.Contains(t, got, "Format: binary")
}

func TestRootCommand_UnknownType(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "json", "--file", filepath.Join(t.TempDir(), "d.json"), "list", "doctor"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.ErrorContains(t, cmd.Execute(), `unknown record type "doctor"`)
}
