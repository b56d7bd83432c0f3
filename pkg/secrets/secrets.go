package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"safarsathi/pkg/utils"
)

// Provider resolves a named credential. Implementations return
// utils.ErrMissingCredential when the value is absent or empty.
type Provider interface {
	Lookup(ctx context.Context, key string) (string, error)
}

// EnvProvider reads credentials from the process environment.
type EnvProvider struct{}

func (EnvProvider) Lookup(_ context.Context, key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("%w: environment variable %s is not set", utils.ErrMissingCredential, key)
	}
	return v, nil
}

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerProvider reads credentials from one AWS Secrets Manager secret.
// The secret string is either the raw credential or a JSON object keyed by
// credential name.
type SecretsManagerProvider struct {
	client     SecretsManagerAPI
	secretName string
}

func NewSecretsManagerProvider(client SecretsManagerAPI, secretName string) *SecretsManagerProvider {
	return &SecretsManagerProvider{client: client, secretName: secretName}
}

// NewSecretsManagerProviderFromEnv loads AWS credentials the default way
// (env, shared config, instance role).
func NewSecretsManagerProviderFromEnv(ctx context.Context, secretName string) (*SecretsManagerProvider, error) {
	if secretName == "" {
		return nil, fmt.Errorf("%w: SECRET_NAME is required when SECRET_SOURCE=aws", utils.ErrMissingCredential)
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSecretsManagerProvider(secretsmanager.NewFromConfig(cfg), secretName), nil
}

func (p *SecretsManagerProvider) Lookup(ctx context.Context, key string) (string, error) {
	output, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(p.secretName),
	})
	if err != nil {
		return "", fmt.Errorf("fetch secret %q from secrets manager: %w", p.secretName, err)
	}
	if output.SecretString == nil {
		return "", fmt.Errorf("%w: secret %q has no string value", utils.ErrMissingCredential, p.secretName)
	}

	raw := strings.TrimSpace(*output.SecretString)
	if strings.HasPrefix(raw, "{") {
		var fields map[string]string
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return "", fmt.Errorf("parse secret %q as JSON: %w", p.secretName, err)
		}
		raw = strings.TrimSpace(fields[key])
	}
	if raw == "" {
		return "", fmt.Errorf("%w: secret %q has no value for %s", utils.ErrMissingCredential, p.secretName, key)
	}
	return raw, nil
}
