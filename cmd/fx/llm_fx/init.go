package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"safarsathi/internal/config"
	"safarsathi/pkg/secrets"
	"safarsathi/pkg/utils"
)

var Module = fx.Provide(
	ProvideSecretsProvider,
	ProvideTextGenerationClient)

// ProvideSecretsProvider picks where API credentials come from. There is no
// built-in fallback value.
func ProvideSecretsProvider(cfg *config.Config) (secrets.Provider, error) {
	switch cfg.SecretSource {
	case "aws":
		return secrets.NewSecretsManagerProviderFromEnv(context.Background(), cfg.SecretName)
	default:
		return secrets.EnvProvider{}, nil
	}
}

// ProvideTextGenerationClient resolves the credential and builds the client
// for the configured provider. A missing credential stops the app from starting.
func ProvideTextGenerationClient(
	lc fx.Lifecycle,
	cfg *config.Config,
	provider secrets.Provider,
	logger *zap.Logger,
) (utils.TextGenerationClientInterface, error) {
	defaults, err := utils.DefaultsFor(cfg.LLM.Provider)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	apiKey, err := provider.Lookup(ctx, defaults.EnvKey)
	if err != nil {
		return nil, fmt.Errorf("resolve %s credential: %w", cfg.LLM.Provider, err)
	}

	model := cfg.LLM.Model
	if model == "" {
		model = defaults.Model
	}
	logger.Info("Initializing text generation client",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", model),
		zap.String("secret_source", cfg.SecretSource))

	client, err := utils.NewTextGenerationClient(ctx, cfg.LLM.Provider, apiKey, cfg.LLM.BaseURL, model)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(client.Close))
	return client, nil
}
