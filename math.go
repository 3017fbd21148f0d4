package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

// Int parses s as a base-10 int, tolerating surrounding whitespace.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return n, nil
}

// Ints parses each string as a base-10 int.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := integers[0]
	for _, v := range integers[1:] {
		result = result / GCD(result, v) * v
	}
	return result
}

// Extrapolate returns the next value in the sequence x, computed by
// recursively taking difference sequences until they are all zero.
// If forward is true it extrapolates past the end, otherwise before
// the start.
func Extrapolate[T Number](x []T, forward bool) T {
	diffs := make([]T, 0, len(x))
	allZero := true
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	ix := 0
	if forward {
		ix = len(x) - 1
	}
	if allZero {
		return x[ix]
	}
	val := x[ix]
	diff := Extrapolate(diffs, forward)
	if forward {
		return val + diff
	}
	return val - diff
}
