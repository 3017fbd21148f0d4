package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/maisem/aoc2023/internal/solve"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days and whether their input is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, day := range solve.Days() {
				path := inputPath(day)
				if _, err := os.Stat(path); err == nil {
					fmt.Printf("day %2d  %s\n", day, path)
				} else {
					fmt.Printf("day %2d  %s\n", day, color.YellowString("input missing"))
				}
			}
			return nil
		},
	}
}
