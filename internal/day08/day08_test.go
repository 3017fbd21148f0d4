package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2023"
)

const example = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const example2 = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

func TestParseMap(t *testing.T) {
	w, err := parseMap(aoc.ToLines(example))
	require.NoError(t, err)
	assert.Equal(t, "LLR", w.moves)
	assert.Equal(t, map[string]node{
		"AAA": {left: "BBB", right: "BBB"},
		"BBB": {left: "AAA", right: "ZZZ"},
		"ZZZ": {left: "ZZZ", right: "ZZZ"},
	}, w.network)
}

func TestParseMapErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"LR",
		"LX\n\nAAA = (BBB, BBB)",
		"LR\n\nnot an entry",
	} {
		_, err := parseMap(aoc.ToLines(input))
		assert.ErrorIs(t, err, ErrInvalidMap, input)
	}
}

func TestStepsToEndUnknownNode(t *testing.T) {
	w, err := parseMap(aoc.ToLines("LR\n\nAAA = (BBB, BBB)"))
	require.NoError(t, err)
	_, err = w.stepsToEnd("AAA")
	assert.ErrorIs(t, err, ErrInvalidMap)
}

func TestPart1(t *testing.T) {
	got, err := Part1(aoc.ToLines(example))
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(aoc.ToLines(example2))
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}
