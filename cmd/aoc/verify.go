package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/internal/answers"
	"github.com/maisem/aoc2023/internal/solve"
)

var verifyFlags struct {
	answersFile string
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [day]",
		Short: "Check solver output against the recorded answers",
		Long: `Verify runs each day listed in the answers file against its input
and compares the results. Parts without a recorded answer are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recorded, err := answers.Load(verifyFlags.answersFile)
			if err != nil {
				return err
			}
			days := maps.Keys(recorded)
			slices.Sort(days)
			if len(args) == 1 {
				day, err := aoc.Int(args[0])
				if err != nil {
					return err
				}
				if _, ok := recorded[day]; !ok {
					return fmt.Errorf("no recorded answers for day %d", day)
				}
				days = []int{day}
			}

			failed := 0
			for _, day := range days {
				n, err := verifyDay(day, recorded[day])
				if err != nil {
					return err
				}
				failed += n
			}
			if failed > 0 {
				return fmt.Errorf("%d part(s) wrong", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&verifyFlags.answersFile, "answers", "answers.yaml",
		"yaml file with recorded answers")
	return cmd
}

// verifyDay checks one day's recorded parts and returns how many were
// wrong.
func verifyDay(day int, want answers.Day) (failed int, err error) {
	f, ok := solve.Lookup(day)
	if !ok {
		return 0, fmt.Errorf("answers list day %d but no solver is registered", day)
	}
	lines, err := aoc.ReadLines(inputPath(day))
	if err != nil {
		return 0, fmt.Errorf("day %d: %w", day, err)
	}

	check := func(part int, solver solve.Part, want *int) error {
		if want == nil {
			return nil
		}
		got, err := solver(lines)
		if err != nil {
			return fmt.Errorf("day %d part %d: %w", day, part, err)
		}
		if got == *want {
			color.New(color.FgGreen).Printf("day %d part %d: %d ✅\n", day, part, got)
		} else {
			color.New(color.FgRed).Printf("day %d part %d: got %d, want %d ❌\n", day, part, got, *want)
			failed++
		}
		return nil
	}
	if err := check(1, f.Part1, want.Part1); err != nil {
		return failed, err
	}
	if err := check(2, f.Part2, want.Part2); err != nil {
		return failed, err
	}
	return failed, nil
}
