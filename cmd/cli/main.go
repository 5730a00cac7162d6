package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/unsaid-tools/tone-atlas/pkg/terminal/commands"
	"github.com/unsaid-tools/tone-atlas/pkg/terminal/export"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tone-atlas",
		Short: "Relationship-communication insights over a local tone-analysis log",
	}

	reporter := export.NewReporter(os.Stdout)
	rootCmd.AddCommand(commands.NewReportCmd(reporter))
	rootCmd.AddCommand(commands.NewImportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
