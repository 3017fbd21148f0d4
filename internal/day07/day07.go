// Package day07 solves Camel Cards — ranking five-card hands, with J
// as jack in part 1 and joker in part 2.
package day07

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(7, solve.Funcs{Part1: Part1, Part2: Part2})
}

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

var cardValues = map[byte]int{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'T': 10, 'J': 11, 'Q': 12, 'K': 13, 'A': 14,
}

// cardValue ranks a single card. With jokers, J drops below every
// other card; relative order is otherwise unchanged.
func cardValue(c byte, jokers bool) int {
	if jokers && c == 'J' {
		return 1
	}
	return cardValues[c]
}

func classify(counts []int) handType {
	slices.Sort(counts)
	switch {
	case slices.Equal(counts, []int{5}):
		return fiveOfAKind
	case slices.Equal(counts, []int{1, 4}):
		return fourOfAKind
	case slices.Equal(counts, []int{2, 3}):
		return fullHouse
	case slices.Equal(counts, []int{1, 1, 3}):
		return threeOfAKind
	case slices.Equal(counts, []int{1, 2, 2}):
		return twoPair
	case slices.Equal(counts, []int{1, 1, 1, 2}):
		return onePair
	default:
		return highCard
	}
}

// typeOf determines the hand type. With jokers, every J counts toward
// the most plentiful other card, which is always the best assignment.
func typeOf(hand string, jokers bool) handType {
	counts := map[byte]int{}
	jokerCount := 0
	for i := 0; i < len(hand); i++ {
		if jokers && hand[i] == 'J' {
			jokerCount++
			continue
		}
		counts[hand[i]]++
	}
	if jokerCount == 5 {
		return fiveOfAKind
	}
	vals := make([]int, 0, len(counts))
	for _, v := range counts {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	vals[len(vals)-1] += jokerCount
	return classify(vals)
}

func compareHands(a, b string, jokers bool) int {
	if c := cmp.Compare(typeOf(a, jokers), typeOf(b, jokers)); c != 0 {
		return c
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(cardValue(a[i], jokers), cardValue(b[i], jokers)); c != 0 {
			return c
		}
	}
	return 0
}

type handBid struct {
	hand string
	bid  int
}

func parseHandBid(line string) (handBid, error) {
	hand, bidStr, ok := strings.Cut(line, " ")
	if !ok || len(hand) != 5 {
		return handBid{}, fmt.Errorf("invalid hand %q", line)
	}
	for i := 0; i < len(hand); i++ {
		if _, ok := cardValues[hand[i]]; !ok {
			return handBid{}, fmt.Errorf("invalid card %q in %q", hand[i], line)
		}
	}
	bid, err := aoc.Int(bidStr)
	if err != nil {
		return handBid{}, fmt.Errorf("invalid bid %q: %w", line, err)
	}
	return handBid{hand: hand, bid: bid}, nil
}

func totalWinnings(lines []string, jokers bool) (int, error) {
	bids := make([]handBid, 0, len(lines))
	for _, line := range lines {
		hb, err := parseHandBid(line)
		if err != nil {
			return 0, err
		}
		bids = append(bids, hb)
	}
	slices.SortStableFunc(bids, func(a, b handBid) int {
		return compareHands(a.hand, b.hand, jokers)
	})
	sum := 0
	for i, hb := range bids {
		sum += (i + 1) * hb.bid
	}
	return sum, nil
}

func Part1(lines []string) (int, error) {
	return totalWinnings(lines, false)
}

func Part2(lines []string) (int, error) {
	return totalWinnings(lines, true)
}
