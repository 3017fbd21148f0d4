// Package day04 solves Scratchcards — winning numbers, points, and
// cascading card copies.
package day04

import (
	"fmt"
	"regexp"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(4, solve.Funcs{Part1: Part1, Part2: Part2})
}

type scratchCard struct {
	id      int
	winning map[int]bool
	have    map[int]bool
}

var cardRx = regexp.MustCompile(`^Card\s+(\d+):\s+([^|]*) \|\s+(.*)$`)

func parseCard(line string) (scratchCard, error) {
	m := cardRx.FindStringSubmatch(line)
	if m == nil {
		return scratchCard{}, fmt.Errorf("invalid scratchcard %q", line)
	}
	id, err := aoc.Int(m[1])
	if err != nil {
		return scratchCard{}, fmt.Errorf("invalid scratchcard %q: %w", line, err)
	}
	winning, err := parseNumberSet(m[2])
	if err != nil {
		return scratchCard{}, fmt.Errorf("invalid scratchcard %q: %w", line, err)
	}
	have, err := parseNumberSet(m[3])
	if err != nil {
		return scratchCard{}, fmt.Errorf("invalid scratchcard %q: %w", line, err)
	}
	return scratchCard{id: id, winning: winning, have: have}, nil
}

func parseNumberSet(s string) (map[int]bool, error) {
	nums, err := aoc.Ints(strings.Fields(s)...)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(nums))
	for _, n := range nums {
		set[n] = true
	}
	return set, nil
}

func parseCards(lines []string) ([]scratchCard, error) {
	cards := make([]scratchCard, 0, len(lines))
	for _, line := range lines {
		c, err := parseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (c scratchCard) matches() int {
	n := 0
	for v := range c.have {
		if c.winning[v] {
			n++
		}
	}
	return n
}

func (c scratchCard) points() int {
	if m := c.matches(); m > 0 {
		return 1 << (m - 1)
	}
	return 0
}

// Part1 sums the points of all cards.
func Part1(lines []string) (int, error) {
	cards, err := parseCards(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.points()
	}
	return sum, nil
}

// Part2 counts the total number of cards after each card's matches win
// copies of the following cards.
func Part2(lines []string) (int, error) {
	cards, err := parseCards(lines)
	if err != nil {
		return 0, err
	}
	copies := map[int]int{}
	total := 0
	for _, c := range cards {
		multiplier := 1 + copies[c.id]
		total += multiplier
		for i := 1; i <= c.matches(); i++ {
			copies[c.id+i] += multiplier
		}
	}
	return total, nil
}
