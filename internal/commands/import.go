package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/promoops/campaigner/pkg/types"
)

const importTimeout = 2 * time.Minute

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <board-id> <item-id>",
		Short: "Run one campaign import for a board item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0], args[1])
		},
	}
}

func runImport(boardID, itemID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	rt, err := buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	res := rt.importer.Import(ctx, types.Event{BoardID: boardID, ItemID: itemID})

	switch {
	case res.IsSuccess():
		color.Green("✓ campaign %q imported (%d rounds)", res.Data.Details.Name, len(res.Data.Rounds))
		return nil
	case res.IsFailure():
		color.Red("✗ import failed validation (%d violations)", len(res.Errors))
		for _, e := range res.Errors {
			color.Yellow("  - %s", e)
		}
		return fmt.Errorf("import failed validation")
	default:
		color.Red("✗ import fault: %s", res.Fault)
		return fmt.Errorf("import fault: %s", res.Fault)
	}
}
