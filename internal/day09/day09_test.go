package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2023"
)

const example = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestParseSequences(t *testing.T) {
	seqs, err := parseSequences(aoc.ToLines("1 2 3\n-4 5 -6\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {-4, 5, -6}}, seqs)

	_, err = parseSequences([]string{"1 x 3"})
	assert.Error(t, err)
}

func TestEmptyLineRejected(t *testing.T) {
	_, err := parseSequences([]string{""})
	assert.Error(t, err)

	_, err = Part1([]string{"0 3 6", ""})
	assert.Error(t, err)
	_, err = Part2([]string{""})
	assert.Error(t, err)
}

func TestPart1(t *testing.T) {
	got, err := Part1(aoc.ToLines(example))
	require.NoError(t, err)
	assert.Equal(t, 114, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(aoc.ToLines(example))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
