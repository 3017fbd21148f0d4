package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2023"
)

const example1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const example2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestFirstAndLastDigits(t *testing.T) {
	first, last, err := firstAndLastDigits("a1b2c3d4e5f")
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 5, last)

	first, last, err = firstAndLastDigits("treb7uchet")
	require.NoError(t, err)
	assert.Equal(t, 7, first)
	assert.Equal(t, 7, last)

	_, _, err = firstAndLastDigits("nodigits")
	assert.ErrorIs(t, err, ErrNoDigits)
}

func TestFirstAndLastSpelledDigits(t *testing.T) {
	tests := []struct {
		line        string
		first, last int
	}{
		{"two1nine", 2, 9},
		{"eightwothree", 8, 3},
		{"zoneight234", 1, 4},
		{"7pqrstsixteen", 7, 6},
	}
	for _, tt := range tests {
		first, last, err := firstAndLastSpelledDigits(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.first, first, tt.line)
		assert.Equal(t, tt.last, last, tt.line)
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(aoc.ToLines(example1))
	require.NoError(t, err)
	assert.Equal(t, 142, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(aoc.ToLines(example2))
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestPart1NoDigits(t *testing.T) {
	_, err := Part1([]string{"abc"})
	assert.ErrorIs(t, err, ErrNoDigits)
}
