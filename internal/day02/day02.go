// Package day02 solves Cube Conundrum — games of coloured cubes drawn
// from a bag.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023/internal/solve"
)

func init() {
	solve.Register(2, solve.Funcs{Part1: Part1, Part2: Part2})
}

type drawnCubes struct {
	red, green, blue int
}

type game struct {
	id    int
	draws []drawnCubes
}

func parseDraw(s string) (drawnCubes, error) {
	var d drawnCubes
	for _, part := range strings.Split(s, ", ") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return drawnCubes{}, fmt.Errorf("invalid draw %q", s)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return drawnCubes{}, fmt.Errorf("invalid draw %q: %w", s, err)
		}
		switch fields[1] {
		case "red":
			d.red = n
		case "green":
			d.green = n
		case "blue":
			d.blue = n
		default:
			return drawnCubes{}, fmt.Errorf("invalid draw %q", s)
		}
	}
	return d, nil
}

func parseGame(line string) (game, error) {
	prefix, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return game{}, fmt.Errorf("invalid game %q", line)
	}
	idStr, ok := strings.CutPrefix(prefix, "Game ")
	if !ok {
		return game{}, fmt.Errorf("invalid game %q", line)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return game{}, fmt.Errorf("invalid game %q: %w", line, err)
	}

	g := game{id: id}
	for _, draw := range strings.Split(rest, "; ") {
		d, err := parseDraw(draw)
		if err != nil {
			return game{}, err
		}
		g.draws = append(g.draws, d)
	}
	return g, nil
}

func parseGames(lines []string) ([]game, error) {
	games := make([]game, 0, len(lines))
	for _, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Part1 sums the ids of games playable with 12 red, 13 green and 14
// blue cubes in the bag.
func Part1(lines []string) (int, error) {
	games, err := parseGames(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.possible(12, 13, 14) {
			sum += g.id
		}
	}
	return sum, nil
}

func (g game) possible(red, green, blue int) bool {
	for _, d := range g.draws {
		if d.red > red || d.green > green || d.blue > blue {
			return false
		}
	}
	return true
}

// Part2 sums the power of the minimum cube set needed for each game.
func Part2(lines []string) (int, error) {
	games, err := parseGames(lines)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		m := g.minimumDraw()
		sum += m.red * m.green * m.blue
	}
	return sum, nil
}

func (g game) minimumDraw() drawnCubes {
	var m drawnCubes
	for _, d := range g.draws {
		m.red = max(m.red, d.red)
		m.green = max(m.green, d.green)
		m.blue = max(m.blue, d.blue)
	}
	return m
}
