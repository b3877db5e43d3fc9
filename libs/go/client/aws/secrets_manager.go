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

	"github.com/budget-planner/planner-api/libs/go/logger"
)

// SecretsAPI is the subset of the Secrets Manager API used by SecretsManagerClient
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API implementation
func NewSecretsManagerClientWithAPI(api SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: api}
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return *result.SecretString, nil
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN specified by an environment variable.
// If the ARN environment variable is not set or fetching fails, it falls back to
// reading the secret directly from fallbackEnvVar. Secrets stored as a JSON
// object with a single key are unwrapped to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		secret, err := c.fetch(ctx, secretArn)
		if err == nil {
			var secretJSON map[string]string
			if jsonErr := json.Unmarshal([]byte(secret), &secretJSON); jsonErr == nil && len(secretJSON) == 1 {
				for key, value := range secretJSON {
					logger.Log.Info("Fetched secret from Secrets Manager (single-key JSON)",
						zap.String("secretArn", secretArn),
						zap.String("jsonKey", key),
					)
					return value, nil
				}
			}
			logger.Log.Info("Fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return secret, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if fallbackEnvVar != "" {
		if secretValue := os.Getenv(fallbackEnvVar); secretValue != "" {
			logger.Log.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
			return secretValue, nil
		}
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a JSON secret from AWS Secrets Manager and unmarshals it into target.
// There is no environment fallback: the ARN must be set and the secret must be JSON.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("secret ARN env var '%s' is not set", secretArnEnvVar)
	}

	secret, err := c.fetch(ctx, secretArn)
	if err != nil {
		return fmt.Errorf("failed to retrieve secret %s: %w", secretArn, err)
	}
	if err := json.Unmarshal([]byte(secret), target); err != nil {
		return fmt.Errorf("failed to parse secret %s as JSON: %w", secretArn, err)
	}
	logger.Log.Info("Fetched JSON secret from Secrets Manager", zap.String("secretArn", secretArn))
	return nil
}
