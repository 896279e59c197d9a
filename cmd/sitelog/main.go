package main

import (
	"os"

	"github.com/spf13/cobra"

	"sitelog/internal/interfaces/cli/migrate"
	"sitelog/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitelog",
		Short: "Sitelog - maintenance intervention tracking for wind and solar sites",
		Long:  `Sitelog tracks maintenance interventions across renewable production sites, with full audit history and role-based access.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
