// Package day01 solves Trebuchet?! — calibration values recovered from
// the first and last digit of each line.
package day01

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(1, solve.Funcs{Part1: Part1, Part2: Part2})
}

// ErrNoDigits reports a calibration line without any digit.
var ErrNoDigits = errors.New("no digits in line")

func Part1(lines []string) (int, error) {
	sum := 0
	for _, line := range lines {
		first, last, err := firstAndLastDigits(line)
		if err != nil {
			return 0, err
		}
		sum += first*10 + last
	}
	return sum, nil
}

func firstAndLastDigits(line string) (first, last int, err error) {
	first = -1
	for _, r := range line {
		if r < '0' || r > '9' {
			continue
		}
		d := int(r - '0')
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return first, last, nil
}

// digitWords maps every spelling of a digit, numeric or written out,
// to its value. Part 2 scans for all of them at once.
var digitWords = map[string]int{
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5,
	"6": 6, "7": 7, "8": 8, "9": 9,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

func Part2(lines []string) (int, error) {
	sum := 0
	for _, line := range lines {
		first, last, err := firstAndLastSpelledDigits(line)
		if err != nil {
			return 0, err
		}
		sum += first*10 + last
	}
	return sum, nil
}

func firstAndLastSpelledDigits(line string) (first, last int, err error) {
	firstIdx, lastIdx := -1, -1
	for pattern, digit := range digitWords {
		if i := strings.Index(line, pattern); i != -1 && (firstIdx == -1 || i < firstIdx) {
			firstIdx, first = i, digit
		}
		if i := strings.LastIndex(line, pattern); i != -1 && i > lastIdx {
			lastIdx, last = i, digit
		}
	}
	if firstIdx == -1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return first, last, nil
}
