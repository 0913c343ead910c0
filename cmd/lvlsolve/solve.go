package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlsolve/bfs"
	"github.com/katalvlaran/lvlsolve/rivercross"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the shortest solution for a river-crossing scenario",
	Long: `Solve searches the river-crossing state space breadth-first and prints the
shortest sequence of crossings, one line per step, in execution order.

Without --scenario it solves the classic setup: peasant, wolf, goat and
cabbage all start on the right bank and everyone must reach the left one.`,
	Run: func(cmd *cobra.Command, args []string) {
		scenarioPath, _ := cmd.Flags().GetString("scenario")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		verbose, _ := cmd.Flags().GetBool("verbose")
		plain, _ := cmd.Flags().GetBool("plain")

		logger := newLogger(verbose)

		sc, err := loadScenario(scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("scenario ready",
			"name", sc.name,
			"initial", sc.puzzle.Initial().String(),
			"goal", sc.puzzle.Goal().String())

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		opts := []bfs.Option{
			bfs.WithContext(ctx),
			bfs.WithOnExpand(func(depth, expanded int) {
				logger.Debug("expanding", "depth", depth, "expanded", expanded)
			}),
		}
		if maxDepth > 0 {
			opts = append(opts, bfs.WithMaxDepth(maxDepth))
		}

		res, err := bfs.Solve[rivercross.State, rivercross.Action](sc.puzzle, opts...)
		if errors.Is(err, bfs.ErrNoSolution) {
			fmt.Fprintf(os.Stderr, "no solution: %s cannot reach %s\n",
				sc.puzzle.Initial(), sc.puzzle.Goal())
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(res.Solution) == 0 {
			fmt.Fprintf(os.Stderr, "nothing to do: %s already satisfies the goal\n",
				sc.puzzle.Initial())
			return
		}
		printSolution(res, plain)
		fmt.Fprintf(os.Stderr, "solved %s in %d crossings (%d states expanded)\n",
			sc.name, len(res.Solution), res.Expanded)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().String("scenario", "", "Path to a scenario YAML file (default: the classic puzzle)")
	solveCmd.Flags().Int("max-depth", 0, "Abandon plans longer than this many crossings (0 = no limit)")
	solveCmd.Flags().Duration("timeout", 0, "Abort the search after this duration (0 = no timeout)")
}

// printSolution writes one numbered line per crossing to stdout.
// Colors degrade to plain text when stdout is not a terminal.
func printSolution(res *bfs.Result[rivercross.State, rivercross.Action], plain bool) {
	p := termenv.ColorProfile()
	if plain {
		p = termenv.Ascii
	}

	for i, a := range res.Solution {
		num := termenv.String(fmt.Sprintf("%d.", i+1)).Foreground(p.Color("#818cf8"))
		text := termenv.String(a.Describe()).Foreground(p.Color("#a78bfa"))
		fmt.Printf("%s %s\n", num, text)
	}
}
