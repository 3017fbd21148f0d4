// Package aoc holds the shared plumbing for the Advent of Code 2023
// solutions in this repo: input loading, error kinds, and the handful
// of helpers more than one day reaches for.
package aoc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads the file at path and returns its lines in order,
// line terminators stripped. Interior empty lines are kept; a trailing
// newline at end of file does not produce an extra empty line.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// ToLines splits s the same way ReadLines splits a file. Tests use it
// to feed inline fixtures to solvers.
func ToLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
