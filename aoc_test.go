package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "single line", content: "ABCD\n", want: []string{"ABCD"}},
		{name: "no trailing newline", content: "ABCD", want: []string{"ABCD"}},
		{
			name:    "interior empty lines kept",
			content: "a\n\nb\n",
			want:    []string{"a", "", "b"},
		},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "empty file", content: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, tt.content)
			got, err := ReadLines(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLinesDeterministic(t *testing.T) {
	path := writeInput(t, "one\ntwo\nthree\n")
	first, err := ReadLines(path)
	require.NoError(t, err)
	second, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReadLinesMissingFile(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "no-such-input.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, lines)
}

func TestToLines(t *testing.T) {
	assert.Equal(t, []string{"ABCD"}, ToLines("ABCD\n"))
	assert.Equal(t, []string{"a", "b"}, ToLines("a\nb"))
	assert.Equal(t, []string{"a", "", "b"}, ToLines("a\n\nb\n"))
	assert.Empty(t, ToLines(""))
}
