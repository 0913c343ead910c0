package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlsolve/rivercross"
	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk YAML shape of a custom puzzle setup.
type scenarioFile struct {
	Version int    `yaml:"version"`
	Name    string `yaml:"name"`
	Initial banks  `yaml:"initial"`
	Goal    banks  `yaml:"goal"`
}

// banks assigns each traveler to a river bank, "left" or "right".
type banks struct {
	Peasant string `yaml:"peasant"`
	Wolf    string `yaml:"wolf"`
	Goat    string `yaml:"goat"`
	Cabbage string `yaml:"cabbage"`
}

// scenario is a named, validated puzzle instance ready to solve.
type scenario struct {
	name   string
	puzzle *rivercross.Puzzle
}

// classicScenario is the built-in default: everyone starts on the right
// bank and must reach the left one.
func classicScenario() *scenario {
	return &scenario{name: "classic", puzzle: rivercross.Classic()}
}

// loadScenario reads and validates a scenario YAML file. An empty path
// selects the built-in classic scenario.
func loadScenario(path string) (*scenario, error) {
	if path == "" {
		return classicScenario(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg scenarioFile
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported scenario version: %d", cfg.Version)
	}

	initial, err := cfg.Initial.state()
	if err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	goal, err := cfg.Goal.state()
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	puzzle, err := rivercross.New(initial, goal)
	if err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = path
	}
	return &scenario{name: name, puzzle: puzzle}, nil
}

// state folds the four bank assignments into a packed puzzle state.
func (b banks) state() (rivercross.State, error) {
	peasant, err := parseBank("peasant", b.Peasant)
	if err != nil {
		return 0, err
	}
	wolf, err := parseBank("wolf", b.Wolf)
	if err != nil {
		return 0, err
	}
	goat, err := parseBank("goat", b.Goat)
	if err != nil {
		return 0, err
	}
	cabbage, err := parseBank("cabbage", b.Cabbage)
	if err != nil {
		return 0, err
	}
	return rivercross.Arrange(peasant, cabbage, goat, wolf), nil
}

// parseBank maps "left" or "right" to a Bank, rejecting anything else.
func parseBank(traveler, side string) (rivercross.Bank, error) {
	switch side {
	case "left":
		return rivercross.Left, nil
	case "right":
		return rivercross.Right, nil
	case "":
		return 0, fmt.Errorf("missing bank for %s", traveler)
	default:
		return 0, fmt.Errorf("unknown bank %q for %s (want left or right)", side, traveler)
	}
}
