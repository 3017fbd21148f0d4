// Package day06 solves Wait For It — toy boat races where holding the
// button trades charge time for travel time.
package day06

import (
	"errors"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(6, solve.Funcs{Part1: Part1, Part2: Part2})
}

// ErrInvalidRaces reports an input that is not a Time: line followed by
// a Distance: line.
var ErrInvalidRaces = errors.New("invalid races")

type race struct {
	timeAllowed    int
	distanceRecord int
}

func (r race) distanceForHold(held int) int {
	if held >= r.timeAllowed {
		return 0
	}
	return held * (r.timeAllowed - held)
}

func (r race) waysToWin() int {
	n := 0
	for held := 1; held < r.timeAllowed; held++ {
		if r.distanceForHold(held) > r.distanceRecord {
			n++
		}
	}
	return n
}

func raceLines(lines []string) (times, distances string, err error) {
	if len(lines) != 2 {
		return "", "", ErrInvalidRaces
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return "", "", ErrInvalidRaces
	}
	distances, ok = strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return "", "", ErrInvalidRaces
	}
	return times, distances, nil
}

func parseRaces(lines []string) ([]race, error) {
	timesStr, distancesStr, err := raceLines(lines)
	if err != nil {
		return nil, err
	}
	times, err := aoc.Ints(strings.Fields(timesStr)...)
	if err != nil {
		return nil, err
	}
	distances, err := aoc.Ints(strings.Fields(distancesStr)...)
	if err != nil {
		return nil, err
	}
	if len(times) != len(distances) {
		return nil, ErrInvalidRaces
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{timeAllowed: times[i], distanceRecord: distances[i]}
	}
	return races, nil
}

// Part1 multiplies the number of ways to win each race.
func Part1(lines []string) (int, error) {
	races, err := parseRaces(lines)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.waysToWin()
	}
	return product, nil
}

// parseSingleRace reads the two lines with their spaces removed, as
// one long race.
func parseSingleRace(lines []string) (race, error) {
	timesStr, distancesStr, err := raceLines(lines)
	if err != nil {
		return race{}, err
	}
	timeAllowed, err := aoc.Int(strings.ReplaceAll(timesStr, " ", ""))
	if err != nil {
		return race{}, err
	}
	distanceRecord, err := aoc.Int(strings.ReplaceAll(distancesStr, " ", ""))
	if err != nil {
		return race{}, err
	}
	return race{timeAllowed: timeAllowed, distanceRecord: distanceRecord}, nil
}

// Part2 counts the ways to win the single badly-kerned race.
func Part2(lines []string) (int, error) {
	r, err := parseSingleRace(lines)
	if err != nil {
		return 0, err
	}
	return r.waysToWin(), nil
}
