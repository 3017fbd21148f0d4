// Package day03 solves Gear Ratios — part numbers and gears in an
// engine schematic.
package day03

import (
	"fmt"
	"strconv"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(3, solve.Funcs{Part1: Part1, Part2: Part2})
}

type schematicNumber struct {
	value        int
	xStart, xEnd int
	y            int
}

type schematic struct {
	numbers []schematicNumber
	symbols map[aoc.Pt]rune
	// numberAt maps every digit cell to the index of its number in
	// numbers, so gear neighbors resolve to whole numbers.
	numberAt map[aoc.Pt]int
}

func parseSchematic(lines []string) (*schematic, error) {
	s := &schematic{
		symbols:  map[aoc.Pt]rune{},
		numberAt: map[aoc.Pt]int{},
	}
	for y, line := range lines {
		span := ""
		xStart := 0
		flush := func(xEnd int) error {
			if span == "" {
				return nil
			}
			value, err := strconv.Atoi(span)
			if err != nil {
				return fmt.Errorf("invalid number %q at line %d: %w", span, y+1, err)
			}
			idx := len(s.numbers)
			s.numbers = append(s.numbers, schematicNumber{
				value:  value,
				xStart: xStart,
				xEnd:   xEnd,
				y:      y,
			})
			for x := xStart; x <= xEnd; x++ {
				s.numberAt[aoc.Pt{X: x, Y: y}] = idx
			}
			span = ""
			return nil
		}
		for x, c := range line {
			switch {
			case c >= '0' && c <= '9':
				if span == "" {
					xStart = x
				}
				span += string(c)
			case c == '.':
				if err := flush(x - 1); err != nil {
					return nil, err
				}
			default:
				s.symbols[aoc.Pt{X: x, Y: y}] = c
				if err := flush(x - 1); err != nil {
					return nil, err
				}
			}
		}
		if err := flush(len(line) - 1); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *schematic) adjacentToSymbol(n schematicNumber) bool {
	for y := n.y - 1; y <= n.y+1; y++ {
		for x := n.xStart - 1; x <= n.xEnd+1; x++ {
			if _, ok := s.symbols[aoc.Pt{X: x, Y: y}]; ok {
				return true
			}
		}
	}
	return false
}

// Part1 sums every number adjacent, diagonals included, to a symbol.
func Part1(lines []string) (int, error) {
	s, err := parseSchematic(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.numbers {
		if s.adjacentToSymbol(n) {
			sum += n.value
		}
	}
	return sum, nil
}

// Part2 sums the gear ratios: for each '*' adjacent to exactly two
// numbers, the product of those numbers.
func Part2(lines []string) (int, error) {
	s, err := parseSchematic(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for pt, sym := range s.symbols {
		if sym != '*' {
			continue
		}
		adjacent := map[int]bool{}
		pt.ForNeighbors(func(n aoc.Pt) bool {
			if idx, ok := s.numberAt[n]; ok {
				adjacent[idx] = true
			}
			return true
		})
		if len(adjacent) != 2 {
			continue
		}
		ratio := 1
		for idx := range adjacent {
			ratio *= s.numbers[idx].value
		}
		sum += ratio
	}
	return sum, nil
}
