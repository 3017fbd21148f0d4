// Package answers reads the answers.yaml file that records the known
// answers for each day. The file is user-maintained, like the inputs
// directory: answers depend on the personal puzzle input, so the repo
// does not ship them.
package answers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Day holds the recorded answers for one day. A nil part means the
// answer is not recorded yet and is skipped during verification.
type Day struct {
	Part1 *int `yaml:"part1"`
	Part2 *int `yaml:"part2"`
}

// Load reads a yaml file keyed by day number:
//
//	1:
//	  part1: 54916
//	  part2: 54728
//	2:
//	  part1: 2512
func Load(path string) (map[int]Day, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	days := map[int]Day{}
	if err := yaml.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return days, nil
}
