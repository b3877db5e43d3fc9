package aws

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/budget-planner/planner-api/libs/go/logger"
	"go.uber.org/zap"
)

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResolveDatabaseURL returns the Postgres DSN for stage.
// Deployed stages build it from DB_HOST, DB_NAME, DB_SSLMODE and the RDS
// credentials behind RDS_SECRET_ARN. The local stage reads DATABASE_URL,
// optionally through DATABASE_URL_ARN.
func (c *SecretsManagerClient) ResolveDatabaseURL(ctx context.Context, stage string) (string, error) {
	if stage != helpers.StageProd && stage != helpers.StageDev {
		dsn, err := c.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL is required for local development: %w", err)
		}
		return dsn, nil
	}

	dbEndpoint := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	if dbEndpoint == "" || dbName == "" {
		return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "require"
		logger.Log.Warn("DB_SSLMODE not set, defaulting to 'require'")
	}

	var secret rdsSecret
	if err := c.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", err
	}
	if secret.Username == "" || secret.Password == "" {
		return "", fmt.Errorf("username or password not found in RDS secret")
	}

	logger.Log.Info("Constructed DSN from Secrets Manager credentials", zap.String("stage", stage))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		dbEndpoint, dbName, dbSSLMode), nil
}
