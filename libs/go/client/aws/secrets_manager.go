package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/chessclub/club-events-api/libs/go/logger"
	"go.uber.org/zap"
)

type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves API keys and database credentials from AWS
// Secrets Manager, falling back to plain environment variables.
type SecretsManagerClient struct {
	svc    secretsAPI
	getenv func(string) string
}

// NewSecretsManagerClient uses the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg), getenv: os.Getenv}, nil
}

// GetSecretString reads the secret named by the ARN in arnEnvVar. Secrets
// stored as a single-key JSON object yield that key's value. When the ARN is
// unset or the fetch fails the value of fallbackEnvVar is used.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, arnEnvVar, fallbackEnvVar string) (string, error) {
	if raw, ok := c.fetch(ctx, arnEnvVar); ok {
		var single map[string]string
		if err := json.Unmarshal([]byte(raw), &single); err == nil && len(single) == 1 {
			for _, v := range single {
				return v, nil
			}
		}
		return raw, nil
	}

	if v := c.getenv(fallbackEnvVar); v != "" {
		logger.Debug("Using secret from environment", zap.String("env_var", fallbackEnvVar))
		return v, nil
	}
	return "", fmt.Errorf("secret not found using ARN env var %q or env var %q", arnEnvVar, fallbackEnvVar)
}

// DatabaseSecret is the JSON shape of an RDS managed credential
type DatabaseSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
}

// DSN renders the credential as a postgres connection URL
func (s DatabaseSecret) DSN(sslMode string) string {
	port := s.Port
	if port == 0 {
		port = 5432
	}
	if sslMode == "" {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.Username, s.Password),
		Host:     net.JoinHostPort(s.Host, strconv.Itoa(port)),
		Path:     "/" + s.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// GetDatabaseURL builds the connection string from the RDS secret named by
// arnEnvVar, or returns fallbackEnvVar verbatim. DB_HOST and DB_NAME fill in
// a secret without host or dbname.
func (c *SecretsManagerClient) GetDatabaseURL(ctx context.Context, arnEnvVar, fallbackEnvVar, sslMode string) (string, error) {
	if raw, ok := c.fetch(ctx, arnEnvVar); ok {
		var secret DatabaseSecret
		if err := json.Unmarshal([]byte(raw), &secret); err != nil {
			return "", fmt.Errorf("database secret is not valid JSON: %w", err)
		}
		// RDS-managed secrets only carry credentials; the host comes from the stack
		if secret.Host == "" {
			secret.Host = c.getenv("DB_HOST")
		}
		if secret.DBName == "" {
			secret.DBName = c.getenv("DB_NAME")
		}
		if secret.Host == "" || secret.Username == "" {
			return "", fmt.Errorf("database secret is missing host or username")
		}
		return secret.DSN(sslMode), nil
	}

	if v := c.getenv(fallbackEnvVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("database URL not found using ARN env var %q or env var %q", arnEnvVar, fallbackEnvVar)
}

func (c *SecretsManagerClient) fetch(ctx context.Context, arnEnvVar string) (string, bool) {
	arn := c.getenv(arnEnvVar)
	if arn == "" {
		return "", false
	}

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(arn)})
	if err != nil || result.SecretString == nil || *result.SecretString == "" {
		logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arn_env_var", arnEnvVar),
			zap.Error(err))
		return "", false
	}
	return *result.SecretString, true
}
