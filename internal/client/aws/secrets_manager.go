package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/sschier-sketch/folio-api/internal/logger"
)

// SecretsManagerClient wraps the AWS Secrets Manager client. Used by the
// dunning processor to resolve the database DSN and the Resend API key when
// running in Lambda; local runs fall back to plain environment variables.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
	cfg aws.Config
}

// NewSecretsManagerClient initializes a client from the default AWS
// configuration chain (environment, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SecretsManagerClient{
		svc: secretsmanager.NewFromConfig(cfg),
		cfg: cfg,
	}, nil
}

// GetSecretString resolves a secret value. If the environment variable named
// by secretArnEnvVar holds an ARN, the secret is fetched from Secrets Manager;
// otherwise, or on fetch failure, the value of fallbackEnvVar is used. Secrets
// stored as a single-key JSON object have the value extracted; anything else
// is returned verbatim.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			fetched := *result.SecretString

			var secretJSON map[string]string
			if jsonErr := json.Unmarshal([]byte(fetched), &secretJSON); jsonErr == nil && len(secretJSON) == 1 {
				for key, value := range secretJSON {
					logger.Log.Info("fetched secret from Secrets Manager (single-key JSON)",
						zap.String("secret_arn", secretArn),
						zap.String("json_key", key))
					return value, nil
				}
			}

			logger.Log.Info("fetched secret from Secrets Manager", zap.String("secret_arn", secretArn))
			return fetched, nil
		}

		logger.Log.Warn("failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secret_arn", secretArn),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var %q or direct env var %q", secretArnEnvVar, fallbackEnvVar)
}
