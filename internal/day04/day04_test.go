package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2023"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestParseCard(t *testing.T) {
	c, err := parseCard("Card 123:  1 23 |  4 56")
	require.NoError(t, err)
	want := scratchCard{
		id:      123,
		winning: map[int]bool{1: true, 23: true},
		have:    map[int]bool{4: true, 56: true},
	}
	assert.Equal(t, want, c)

	_, err = parseCard("not a card")
	assert.Error(t, err)
}

func TestMatchesAndPoints(t *testing.T) {
	c, err := parseCard("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	assert.Equal(t, 4, c.matches())
	assert.Equal(t, 8, c.points())

	c, err = parseCard("Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11")
	require.NoError(t, err)
	assert.Equal(t, 0, c.matches())
	assert.Equal(t, 0, c.points())
}

func TestPart1(t *testing.T) {
	got, err := Part1(aoc.ToLines(example))
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(aoc.ToLines(example))
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}
