package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/solve"
)

var runFlags struct {
	timed bool
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [day]",
		Short: "Run one day's solvers, or every registered day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				day, err := aoc.Int(args[0])
				if err != nil {
					return err
				}
				return runOne(day)
			}
			return runAll()
		},
	}
	cmd.Flags().BoolVar(&runFlags.timed, "time", false, "show wall time per part")
	return cmd
}

func runOne(day int) error {
	f, ok := solve.Lookup(day)
	if !ok {
		return fmt.Errorf("no solver for day %d", day)
	}
	return runDay(day, f)
}

// runAll runs every registered day in order. Days whose solvers are
// not written yet are noted and skipped; any other failure aborts.
func runAll() error {
	for _, day := range solve.Days() {
		f, _ := solve.Lookup(day)
		err := runDay(day, f)
		if errors.Is(err, aoc.ErrNotImplemented) {
			color.New(color.FgYellow).Fprintf(os.Stderr, "day %d: not implemented, skipping\n", day)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// runDay computes both parts before printing either, so a failing part
// never leaves half a day's output behind.
func runDay(day int, f solve.Funcs) error {
	lines, err := aoc.ReadLines(inputPath(day))
	if err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}

	color.New(color.Bold).Printf("Day %d\n", day)

	t0 := time.Now()
	v1, err := f.Part1(lines)
	if err != nil {
		return fmt.Errorf("day %d part 1: %w", day, err)
	}
	d1 := time.Since(t0)

	t0 = time.Now()
	v2, err := f.Part2(lines)
	if err != nil {
		return fmt.Errorf("day %d part 2: %w", day, err)
	}
	d2 := time.Since(t0)

	printPart(1, v1, d1)
	printPart(2, v2, d2)
	return nil
}

func printPart(part, value int, took time.Duration) {
	fmt.Printf("Part %d: %d", part, value)
	if runFlags.timed {
		fmt.Printf(" (took %v)", took.Round(time.Microsecond))
	}
	fmt.Println()
}
