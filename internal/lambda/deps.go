// Package lambda wires campaigner dependencies for AWS Lambda
// handlers from environment variables.
package lambda

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/promoops/campaigner/internal/alert"
	"github.com/promoops/campaigner/internal/board"
	"github.com/promoops/campaigner/internal/config"
	"github.com/promoops/campaigner/internal/importer"
	"github.com/promoops/campaigner/internal/store"
	"github.com/promoops/campaigner/pkg/types"
)

// Deps holds the shared dependencies of one Lambda runtime.
type Deps struct {
	Importer *importer.Importer
	Store    store.Store
	Logger   *slog.Logger
}

// Init creates shared dependencies from environment variables.
// Reads: BOARD_API_URL, CAMPAIGNER_API_TOKEN or
// BOARD_API_TOKEN_SECRET_ARN, INFRA_BOARD_ID, TABLE_NAME, AWS_REGION,
// SNS_TOPIC_ARN.
func Init(ctx context.Context) (*Deps, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	apiURL := os.Getenv("BOARD_API_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("BOARD_API_URL environment variable required")
	}
	infraBoardID := os.Getenv("INFRA_BOARD_ID")
	if infraBoardID == "" {
		return nil, fmt.Errorf("INFRA_BOARD_ID environment variable required")
	}
	tableName := os.Getenv("TABLE_NAME")
	if tableName == "" {
		return nil, fmt.Errorf("TABLE_NAME environment variable required")
	}

	token, err := resolveToken(ctx)
	if err != nil {
		return nil, err
	}

	src := board.NewClient(apiURL, token, logger)

	st, err := store.NewDynamoDB(&types.DynamoDBConfig{
		TableName: tableName,
		Region:    os.Getenv("AWS_REGION"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB store: %w", err)
	}

	var alertConfigs []types.AlertConfig
	if topicARN := os.Getenv("SNS_TOPIC_ARN"); topicARN != "" {
		alertConfigs = append(alertConfigs, types.AlertConfig{
			Type:     types.AlertSNS,
			TopicARN: topicARN,
		})
	}
	alerts, err := alert.NewDispatcher(alertConfigs)
	if err != nil {
		return nil, fmt.Errorf("creating alert dispatcher: %w", err)
	}

	imp := importer.New(src, st, alerts, infraBoardID, importer.WithLogger(logger))

	return &Deps{
		Importer: imp,
		Store:    st,
		Logger:   logger,
	}, nil
}

// resolveToken reads the board API token from the environment or,
// when only a secret ARN is configured, from Secrets Manager.
func resolveToken(ctx context.Context) (string, error) {
	if token := os.Getenv(config.EnvAPIToken); token != "" {
		return token, nil
	}

	arn := os.Getenv("BOARD_API_TOKEN_SECRET_ARN")
	if arn == "" {
		return "", fmt.Errorf("%s or BOARD_API_TOKEN_SECRET_ARN environment variable required", config.EnvAPIToken)
	}

	resolver, err := config.NewTokenResolver(ctx)
	if err != nil {
		return "", fmt.Errorf("creating token resolver: %w", err)
	}
	cfg := &types.ProjectConfig{Board: &types.BoardConfig{APITokenSecret: arn}}
	if err := resolver.Resolve(ctx, cfg); err != nil {
		return "", err
	}
	return cfg.Board.APIToken, nil
}
