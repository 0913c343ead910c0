package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Version is the current release version of lvlsolve.
// It can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lvlsolve",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lvlsolve version %s\n", strings.TrimSpace(Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
