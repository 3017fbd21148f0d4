// Package day08 solves Haunted Wasteland — following a repeating L/R
// move list through a node network.
package day08

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(8, solve.Funcs{Part1: Part1, Part2: Part2})
}

// ErrInvalidMap reports an input without a moves line, a blank line,
// and at least one network entry.
var ErrInvalidMap = errors.New("invalid map")

type node struct {
	left, right string
}

type wasteland struct {
	moves   string // 'L' and 'R' only
	network map[string]node
}

var entryRx = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

func parseMap(lines []string) (*wasteland, error) {
	if len(lines) < 3 || lines[1] != "" {
		return nil, ErrInvalidMap
	}
	moves := lines[0]
	for _, c := range moves {
		if c != 'L' && c != 'R' {
			return nil, fmt.Errorf("%w: bad move %q", ErrInvalidMap, c)
		}
	}
	network := make(map[string]node, len(lines)-2)
	for _, line := range lines[2:] {
		m := entryRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: bad entry %q", ErrInvalidMap, line)
		}
		network[m[1]] = node{left: m[2], right: m[3]}
	}
	return &wasteland{moves: moves, network: network}, nil
}

func (w *wasteland) next(pos string, step int) (string, error) {
	n, ok := w.network[pos]
	if !ok {
		return "", fmt.Errorf("%w: unknown node %q", ErrInvalidMap, pos)
	}
	if w.moves[step%len(w.moves)] == 'L' {
		return n.left, nil
	}
	return n.right, nil
}

func (w *wasteland) stepsToEnd(start string) (int, error) {
	pos := start
	steps := 0
	for !strings.HasSuffix(pos, "Z") {
		var err error
		pos, err = w.next(pos, steps)
		if err != nil {
			return 0, err
		}
		steps++
	}
	return steps, nil
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(lines []string) (int, error) {
	w, err := parseMap(lines)
	if err != nil {
		return 0, err
	}
	return w.stepsToEnd("AAA")
}

// Part2 starts a ghost on every node ending in A. Each ghost's path is
// periodic, so the first step where all of them stand on a Z node is
// the LCM of their individual path lengths.
func Part2(lines []string) (int, error) {
	w, err := parseMap(lines)
	if err != nil {
		return 0, err
	}
	var steps []int
	for start := range w.network {
		if !strings.HasSuffix(start, "A") {
			continue
		}
		n, err := w.stepsToEnd(start)
		if err != nil {
			return 0, err
		}
		steps = append(steps, n)
	}
	if len(steps) == 0 {
		return 0, fmt.Errorf("%w: no starting nodes", ErrInvalidMap)
	}
	return aoc.LCM(steps...), nil
}
