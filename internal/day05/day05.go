// Package day05 solves If You Give A Seed A Fertilizer — seed numbers
// pushed through the almanac's chain of range maps.
package day05

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(5, solve.Funcs{Part1: Part1, Part2: Part2})
}

// ErrInvalidAlmanac reports an input that does not follow the almanac
// layout (seeds line, blank line, seven titled map sections).
var ErrInvalidAlmanac = errors.New("invalid almanac")

type rangeMap struct {
	dstStart, srcStart, length int
}

func (m rangeMap) apply(v int) (int, bool) {
	if v < m.srcStart || v >= m.srcStart+m.length {
		return 0, false
	}
	return v - m.srcStart + m.dstStart, true
}

func applyAll(maps []rangeMap, v int) int {
	for _, m := range maps {
		if out, ok := m.apply(v); ok {
			return out
		}
	}
	return v
}

func parseRangeMap(line string) (rangeMap, error) {
	nums, err := aoc.Ints(strings.Fields(line)...)
	if err != nil || len(nums) != 3 {
		return rangeMap{}, fmt.Errorf("invalid almanac map %q", line)
	}
	return rangeMap{dstStart: nums[0], srcStart: nums[1], length: nums[2]}, nil
}

// stageHeaders are the seven conversion stages, applied in order.
var stageHeaders = []string{
	"seed-to-soil map:",
	"soil-to-fertilizer map:",
	"fertilizer-to-water map:",
	"water-to-light map:",
	"light-to-temperature map:",
	"temperature-to-humidity map:",
	"humidity-to-location map:",
}

type almanac struct {
	seeds  []int
	stages [][]rangeMap
}

func parseAlmanac(lines []string) (*almanac, error) {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "seeds: ") {
		return nil, ErrInvalidAlmanac
	}
	seeds, err := aoc.Ints(strings.Fields(strings.TrimPrefix(lines[0], "seeds: "))...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlmanac, err)
	}
	rest := lines[1:]
	if len(rest) == 0 || rest[0] != "" {
		return nil, ErrInvalidAlmanac
	}
	rest = rest[1:]

	a := &almanac{seeds: seeds}
	for _, header := range stageHeaders {
		if len(rest) == 0 || rest[0] != header {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidAlmanac, header)
		}
		rest = rest[1:]
		var maps []rangeMap
		for len(rest) > 0 && rest[0] != "" {
			m, err := parseRangeMap(rest[0])
			if err != nil {
				return nil, err
			}
			maps = append(maps, m)
			rest = rest[1:]
		}
		if len(rest) > 0 {
			rest = rest[1:] // blank section separator
		}
		a.stages = append(a.stages, maps)
	}
	return a, nil
}

func (a *almanac) location(seed int) int {
	v := seed
	for _, stage := range a.stages {
		v = applyAll(stage, v)
	}
	return v
}

// Part1 returns the lowest location any seed maps to.
func Part1(lines []string) (int, error) {
	a, err := parseAlmanac(lines)
	if err != nil {
		return 0, err
	}
	if len(a.seeds) == 0 {
		return 0, ErrInvalidAlmanac
	}
	best := a.location(a.seeds[0])
	for _, seed := range a.seeds[1:] {
		best = min(best, a.location(seed))
	}
	return best, nil
}

type seedRange struct {
	start, length int
}

// Part2 treats the seeds line as (start, length) pairs and returns the
// lowest location across every seed in every range. Ranges are brute
// forced in parallel.
func Part2(lines []string) (int, error) {
	a, err := parseAlmanac(lines)
	if err != nil {
		return 0, err
	}
	if len(a.seeds) == 0 || len(a.seeds)%2 != 0 {
		return 0, ErrInvalidAlmanac
	}
	var ranges []seedRange
	for i := 0; i < len(a.seeds); i += 2 {
		if a.seeds[i+1] <= 0 {
			continue
		}
		ranges = append(ranges, seedRange{start: a.seeds[i], length: a.seeds[i+1]})
	}
	if len(ranges) == 0 {
		return 0, ErrInvalidAlmanac
	}
	mins := aoc.Parallel(ranges, func(r seedRange) int {
		best := a.location(r.start)
		for seed := r.start + 1; seed < r.start+r.length; seed++ {
			best = min(best, a.location(seed))
		}
		return best
	})
	best := mins[0]
	for _, v := range mins[1:] {
		best = min(best, v)
	}
	return best, nil
}
