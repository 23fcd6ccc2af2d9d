// Package commands implements the CLI subcommands for the campaigner
// binary.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promoops/campaigner/internal/alert"
	"github.com/promoops/campaigner/internal/board"
	"github.com/promoops/campaigner/internal/config"
	"github.com/promoops/campaigner/internal/importer"
	"github.com/promoops/campaigner/internal/store"
	"github.com/promoops/campaigner/pkg/types"
)

// runtime bundles the wired collaborators of one campaigner process.
type runtime struct {
	cfg      *types.ProjectConfig
	store    store.Store
	importer *importer.Importer
}

// buildRuntime loads campaigner.yaml from the working directory and
// wires the board client, store, alert sinks and importer.
func buildRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Board.APIToken == "" {
		resolver, err := config.NewTokenResolver(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating token resolver: %w", err)
		}
		if err := resolver.Resolve(ctx, cfg); err != nil {
			return nil, err
		}
	}

	src := board.NewClient(cfg.Board.APIURL, cfg.Board.APIToken, slog.Default())

	st, err := store.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}
	if err := st.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting store: %w", err)
	}

	alerts, err := alert.NewDispatcher(cfg.Alerts)
	if err != nil {
		return nil, fmt.Errorf("creating alert dispatcher: %w", err)
	}

	imp := importer.New(src, st, alerts, cfg.Board.InfraBoardID)

	return &runtime{
		cfg:      cfg,
		store:    st,
		importer: imp,
	}, nil
}

func (rt *runtime) close(ctx context.Context) {
	_ = rt.store.Stop(ctx)
}
