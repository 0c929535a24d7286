package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.s")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadLinesDropsBlankAndCommentLines(t *testing.T) {
	path := writeSource(t, "addi a0, zero, 1\n\n# a comment\n; another comment\naddi a1, zero, 2\n")
	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestAssembleFileEndToEnd(t *testing.T) {
	path := writeSource(t, "addi a0, zero, 1\naddi a1, zero, 2\nadd a2, a0, a1\njalr zero, ra, 0\n")
	words, err := AssembleFile(path)
	require.NoError(t, err)
	assert.Len(t, words, 4)
}

func TestReadLinesMissingFileErrors(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.s"))
	assert.Error(t, err)
}
