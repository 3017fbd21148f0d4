// Package day09 solves Mirage Maintenance — extrapolating sensor
// histories with difference tables.
package day09

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(9, solve.Funcs{Part1: Part1, Part2: Part2})
}

func parseSequences(lines []string) ([][]int, error) {
	seqs := make([][]int, 0, len(lines))
	for _, line := range lines {
		seq, err := aoc.Ints(strings.Fields(line)...)
		if err != nil {
			return nil, fmt.Errorf("invalid sequence %q: %w", line, err)
		}
		if len(seq) == 0 {
			return nil, fmt.Errorf("invalid sequence %q", line)
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

func sumExtrapolated(lines []string, forward bool) (int, error) {
	seqs, err := parseSequences(lines)
	if err != nil {
		return 0, err
	}
	vals := make([]int, len(seqs))
	for i, seq := range seqs {
		vals[i] = aoc.Extrapolate(seq, forward)
	}
	return aoc.Sum(vals...), nil
}

// Part1 sums the next value of every history.
func Part1(lines []string) (int, error) {
	return sumExtrapolated(lines, true)
}

// Part2 sums the value preceding every history.
func Part2(lines []string) (int, error) {
	return sumExtrapolated(lines, false)
}
