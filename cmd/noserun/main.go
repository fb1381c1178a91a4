package main

import (
	"fmt"
	"os"

	"noserun/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd, err := commands.NewRootCommand(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
