// Command aoc runs the Advent of Code 2023 solutions in this repo
// against the inputs/ directory and checks them against answers.yaml.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	// Register the day solvers.
	_ "github.com/maisem/aoc2023/internal/day01"
	_ "github.com/maisem/aoc2023/internal/day02"
	_ "github.com/maisem/aoc2023/internal/day03"
	_ "github.com/maisem/aoc2023/internal/day04"
	_ "github.com/maisem/aoc2023/internal/day05"
	_ "github.com/maisem/aoc2023/internal/day06"
	_ "github.com/maisem/aoc2023/internal/day07"
	_ "github.com/maisem/aoc2023/internal/day08"
	_ "github.com/maisem/aoc2023/internal/day09"
	_ "github.com/maisem/aoc2023/internal/day10"
)

var inputsDir string

func inputPath(day int) string {
	return filepath.Join(inputsDir, fmt.Sprintf("day%02d.txt", day))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solutions",

		// Errors are formatted once, in main.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&inputsDir, "inputs", "inputs",
		"directory containing dayNN.txt input files")
	root.AddCommand(newRunCmd(), newVerifyCmd(), newListCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
