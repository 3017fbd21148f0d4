package answers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeAnswers(t, `
1:
  part1: 54916
  part2: 54728
2:
  part1: 2512
`)
	days, err := Load(path)
	require.NoError(t, err)
	require.Len(t, days, 2)

	require.NotNil(t, days[1].Part1)
	assert.Equal(t, 54916, *days[1].Part1)
	require.NotNil(t, days[1].Part2)
	assert.Equal(t, 54728, *days[1].Part2)

	require.NotNil(t, days[2].Part1)
	assert.Equal(t, 2512, *days[2].Part1)
	assert.Nil(t, days[2].Part2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "answers.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeAnswers(t, "1: [not, a, day]")
	_, err := Load(path)
	assert.Error(t, err)
}
