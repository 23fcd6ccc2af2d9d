// Package config handles loading and validation of campaigner.yaml
// project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/promoops/campaigner/pkg/types"
)

// EnvAPIToken overrides the board API token from the environment. It
// takes precedence over both the literal config value and the secret
// ARN.
const EnvAPIToken = "CAMPAIGNER_API_TOKEN"

// Load reads and parses campaigner.yaml from the given directory.
func Load(dir string) (*types.ProjectConfig, error) {
	path := filepath.Join(dir, "campaigner.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg types.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if token := os.Getenv(EnvAPIToken); token != "" && cfg.Board != nil {
		cfg.Board.APIToken = token
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *types.ProjectConfig) error {
	if cfg.Board == nil {
		return fmt.Errorf("board config is required")
	}
	if cfg.Board.APIURL == "" {
		return fmt.Errorf("board.apiUrl is required")
	}
	if cfg.Board.InfraBoardID == "" {
		return fmt.Errorf("board.infraBoardId is required")
	}
	if cfg.Board.APIToken == "" && cfg.Board.APITokenSecret == "" {
		return fmt.Errorf("board.apiToken, board.apiTokenSecretArn or %s is required", EnvAPIToken)
	}

	switch cfg.Store {
	case "":
		return fmt.Errorf("store is required")
	case types.StoreDynamoDB:
		if cfg.DynamoDB == nil {
			return fmt.Errorf("dynamodb config is required when store is dynamodb")
		}
		if cfg.DynamoDB.TableName == "" {
			return fmt.Errorf("dynamodb.tableName is required")
		}
	case types.StoreS3:
		if cfg.S3 == nil {
			return fmt.Errorf("s3 config is required when store is s3")
		}
		if cfg.S3.BucketName == "" {
			return fmt.Errorf("s3.bucketName is required")
		}
	case types.StoreFile:
		if cfg.File == nil {
			return fmt.Errorf("file config is required when store is file")
		}
		if cfg.File.Dir == "" {
			return fmt.Errorf("file.dir is required")
		}
	default:
		return fmt.Errorf("unknown store type %q", cfg.Store)
	}

	for i, a := range cfg.Alerts {
		switch a.Type {
		case types.AlertConsole:
		case types.AlertWebhook:
			if a.URL == "" {
				return fmt.Errorf("alerts[%d]: url is required for webhook alerts", i)
			}
		case types.AlertFile:
			if a.Path == "" {
				return fmt.Errorf("alerts[%d]: path is required for file alerts", i)
			}
		case types.AlertSNS:
			if a.TopicARN == "" {
				return fmt.Errorf("alerts[%d]: topicArn is required for sns alerts", i)
			}
		case types.AlertS3:
			if a.BucketName == "" {
				return fmt.Errorf("alerts[%d]: bucketName is required for s3 alerts", i)
			}
		default:
			return fmt.Errorf("alerts[%d]: unknown alert type %q", i, a.Type)
		}
	}

	return nil
}
