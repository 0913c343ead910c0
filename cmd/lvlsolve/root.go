package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lvlsolve",
	Short: "lvlsolve is a breadth-first puzzle solver",
	Long: `lvlsolve searches puzzle state spaces breadth-first and prints the shortest
solution it finds, starting with the classic peasant, wolf, goat and
cabbage river crossing.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colored output")
}

// newLogger creates the CLI logger. It writes to stderr so stdout stays
// reserved for solution lines.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
