package factortable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableMissingFileIsIoError(t *testing.T) {
	_, _, err := LoadTable(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrIoError)
}

func TestLoadTableParsesPrimesAndComposites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	content := "2\n3\n4 2 2\n6 2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, parseErrs, err := LoadTable(path)
	require.NoError(t, err)
	assert.Empty(t, parseErrs)
	assert.Equal(t, 4, table.Len())

	factors, ok := table.Get(num("4"))
	require.True(t, ok)
	assert.Len(t, factors, 2)

	primes := table.Primes()
	assert.Len(t, primes, 2)
}

func TestLoadTableTreatsEmptyLinesAsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	content := "2\n\n3\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, parseErrs, err := LoadTable(path)
	require.NoError(t, err)
	assert.Empty(t, parseErrs)
	assert.Equal(t, 2, table.Len())
}

func TestLoadTableRecordsParseErrorsAndSkipsBadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	content := "2\nnotanumber\n3 2 x\n5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, parseErrs, err := LoadTable(path)
	require.NoError(t, err)
	assert.Len(t, parseErrs, 2)
	for _, perr := range parseErrs {
		assert.ErrorIs(t, perr, ErrParseError)
	}
	assert.Equal(t, 2, table.Len())
}

func TestAppendEntryWritesLeadingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte("2"), 0o644))

	require.NoError(t, AppendEntry(path, num("4"), nums("2", "2")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n4 2 2", string(data))
}
