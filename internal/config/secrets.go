package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/promoops/campaigner/pkg/types"
)

// SecretsAPI is the subset of the Secrets Manager client used for
// token resolution.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, input *secretsmanager.GetSecretValueInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// TokenResolver resolves the board API token from Secrets Manager
// when the configuration carries a secret ARN instead of a literal
// token.
type TokenResolver struct {
	client SecretsAPI
}

// TokenResolverOption configures a TokenResolver.
type TokenResolverOption func(*TokenResolver)

// WithSecretsClient sets a custom Secrets Manager client (useful for
// testing).
func WithSecretsClient(c SecretsAPI) TokenResolverOption {
	return func(r *TokenResolver) { r.client = c }
}

// NewTokenResolver creates a TokenResolver.
func NewTokenResolver(ctx context.Context, opts ...TokenResolverOption) (*TokenResolver, error) {
	r := &TokenResolver{}
	for _, o := range opts {
		o(r)
	}
	if r.client == nil {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		r.client = secretsmanager.NewFromConfig(awsCfg)
	}
	return r, nil
}

// Resolve fills Board.APIToken from the configured secret ARN. It is
// a no-op when a token is already present or no ARN is configured.
func (r *TokenResolver) Resolve(ctx context.Context, cfg *types.ProjectConfig) error {
	if cfg.Board == nil || cfg.Board.APIToken != "" || cfg.Board.APITokenSecret == "" {
		return nil
	}
	out, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(cfg.Board.APITokenSecret),
	})
	if err != nil {
		return fmt.Errorf("fetching API token secret: %w", err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return fmt.Errorf("API token secret %s is empty", cfg.Board.APITokenSecret)
	}
	cfg.Board.APIToken = *out.SecretString
	return nil
}
