package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promoops/campaigner/internal/commands"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "campaigner",
		Short: "Campaign board import pipeline",
		Long: `Campaigner turns marketing campaign boards into validated, executable
campaign objects. It resolves deployment-specific column mappings through an
Infra board, validates every entity with aggregated violations, applies the
configuration rule engine and assembles the final nested campaign.`,
		Version: version,
	}

	root.AddCommand(
		commands.NewInitCmd(),
		commands.NewImportCmd(),
		commands.NewStatusCmd(),
		commands.NewServeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
