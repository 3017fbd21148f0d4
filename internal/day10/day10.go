// Package day10 is the next unsolved day. Both parts return
// aoc.ErrNotImplemented until the puzzle logic lands, which keeps the
// runner and tests honest about what exists.
package day10

import (
	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(10, solve.Funcs{Part1: Part1, Part2: Part2})
}

func Part1(lines []string) (int, error) {
	return 0, aoc.ErrNotImplemented
}

func Part2(lines []string) (int, error) {
	return 0, aoc.ErrNotImplemented
}
