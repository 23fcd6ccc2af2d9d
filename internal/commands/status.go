package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/promoops/campaigner/internal/store"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "status <board-id> [item-id]",
		Short: "Show recent import runs for a board, or the latest campaign of an item",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID := ""
			if len(args) > 1 {
				itemID = args[1]
			}
			return runStatus(args[0], itemID, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show")
	return cmd
}

func runStatus(boardID, itemID string, limit int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rt, err := buildRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	if itemID != "" {
		return showCampaign(ctx, rt.store, itemID)
	}
	return showRuns(ctx, rt.store, boardID, limit)
}

func showRuns(ctx context.Context, st store.Store, boardID string, limit int) error {
	runs, err := st.ListCampaigns(ctx, boardID, limit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No import runs recorded for this board.")
		return nil
	}

	bold := color.New(color.Bold)
	_, _ = bold.Printf("Import runs for board %s:\n\n", boardID)
	for _, r := range runs {
		fmt.Printf("  %s  %-14s %-24s %d rounds\n",
			r.RunID, r.ItemID, r.ImportedAt.Format(time.RFC3339), len(r.Campaign.Rounds))
	}
	fmt.Println()
	return nil
}

func showCampaign(ctx context.Context, st store.Store, itemID string) error {
	rec, err := st.GetCampaign(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			color.Yellow("No imported campaign for item %s.", itemID)
			return nil
		}
		return fmt.Errorf("fetching campaign: %w", err)
	}

	bold := color.New(color.Bold)
	d := rec.Campaign.Details
	_, _ = bold.Printf("Campaign: %s\n", d.Name)
	fmt.Printf("  Run:       %s\n", rec.RunID)
	fmt.Printf("  Imported:  %s\n", rec.ImportedAt.Format(time.RFC3339))
	fmt.Printf("  Dates:     %s to %s\n", d.StartDate, d.EndDate)
	fmt.Printf("  Markets:   %v\n", d.Regulations)

	if len(rec.Campaign.Rounds) > 0 {
		fmt.Println()
		_, _ = bold.Println("  Rounds:")
		for _, r := range rec.Campaign.Rounds {
			fmt.Printf("    %-20s %-12s %s to %s\n", r.Name, r.Type, r.StartDate, r.EndDate)
		}
	}
	fmt.Println()
	return nil
}
