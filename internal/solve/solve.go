// Package solve is the registry the per-day packages register their
// solvers with. The runner imports the day packages for side effect
// and looks days up here.
package solve

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Part computes one puzzle answer from the input lines. Implementations
// must treat lines as read-only.
type Part func(lines []string) (int, error)

// Funcs are the two parts of one day.
type Funcs struct {
	Part1 Part
	Part2 Part
}

var (
	mu   sync.Mutex
	days = map[int]Funcs{}
)

// Register records the solvers for a day. It panics if the day is
// already registered or either part is missing; registration happens
// in init so both are programmer errors.
func Register(day int, f Funcs) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := days[day]; dup {
		panic(fmt.Sprintf("solve: day %d registered twice", day))
	}
	if f.Part1 == nil || f.Part2 == nil {
		panic(fmt.Sprintf("solve: day %d registered with nil part", day))
	}
	days[day] = f
}

// Lookup returns the solvers for a day.
func Lookup(day int) (Funcs, bool) {
	mu.Lock()
	defer mu.Unlock()
	f, ok := days[day]
	return f, ok
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	mu.Lock()
	defer mu.Unlock()
	out := maps.Keys(days)
	slices.Sort(out)
	return out
}
