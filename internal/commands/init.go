package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [project-name]",
		Short: "Initialize a new campaigner project",
		Long:  "Creates project scaffolding with a starter campaigner.yaml using the local file store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args[0])
		},
	}
}

func runInit(projectName string) error {
	bold := color.New(color.Bold)
	_, _ = bold.Printf("Initializing campaigner project: %s\n", projectName)

	if err := os.MkdirAll(filepath.Join(projectName, "campaigns"), 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	configPath := filepath.Join(projectName, "campaigner.yaml")
	configContent := `store: file
board:
  apiUrl: https://api.monday.com/v2
  # Set CAMPAIGNER_API_TOKEN or apiTokenSecretArn in production.
  apiToken: replace-me
  infraBoardId: "0"
file:
  dir: ./campaigns
server:
  port: 3000
alerts:
  - type: console
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	color.Green("  ✓ Project scaffolded")

	fmt.Println()
	_, _ = bold.Println("Next steps:")
	fmt.Printf("  cd %s\n", projectName)
	fmt.Println("  edit campaigner.yaml (API token, infra board ID)")
	fmt.Println("  campaigner serve")
	return nil
}
