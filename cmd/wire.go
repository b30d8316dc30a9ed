package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/arebot/horasbot/internal/adapters/interpreter/gemini"
	"github.com/arebot/horasbot/internal/adapters/interpreter/openai"
	"github.com/arebot/horasbot/internal/adapters/secrets/keyring"
	"github.com/arebot/horasbot/internal/adapters/tracker/horasapi"
	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
	"github.com/arebot/horasbot/internal/web"
	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = ".horasbot"
	keyringFile   = "keyring.toml"

	apiBaseURLKey = "api.base_url"
	serverBindKey = "server.bind"
	serverPortKey = "server.port"
	aiProviderKey = "ai.provider"
	aiModelKey    = "ai.model"
	aiBaseURLKey  = "ai.base_url"
	aiAPIKeyKey   = "ai.api_key"
)

type app struct {
	config      *viper.Viper
	secretStore ports.SecretStore
	dialTracker web.DialFunc
	httpClient  *http.Client
	clock       ports.Clock
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(apiBaseURLKey, "http://localhost:8000")
	cfg.SetDefault(serverBindKey, "0.0.0.0")
	cfg.SetDefault(serverPortKey, 8001)
	cfg.SetDefault(aiProviderKey, "openai")
	cfg.SetDefault(aiModelKey, "")
	cfg.SetDefault(aiBaseURLKey, "https://api.openai.com")
	cfg.SetEnvPrefix("HORASBOT")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	httpClient := http.DefaultClient

	a := &app{
		config:      cfg,
		secretStore: keyring.NewStore(filepath.Join(configDir, keyringFile)),
		httpClient:  httpClient,
		clock:       ports.SystemClock{},
	}
	a.dialTracker = func(token string) ports.TimeTracker {
		return horasapi.NewClient(cfg.GetString(apiBaseURLKey), token, httpClient)
	}

	return a, nil
}

// newInterpreter builds the configured AI adapter. The key comes from the
// HORASBOT_AI_API_KEY env var (or config file) first, then the keyring.
func (a *app) newInterpreter(ctx context.Context) (ports.Interpreter, error) {
	provider := a.config.GetString(aiProviderKey)

	apiKey, err := a.resolveAPIKey(ctx, provider)
	if err != nil {
		return nil, err
	}

	switch provider {
	case "openai":
		return openai.New(a.config.GetString(aiBaseURLKey), apiKey, a.config.GetString(aiModelKey), a.httpClient, a.clock)
	case "gemini":
		return gemini.New(ctx, apiKey, a.config.GetString(aiModelKey), a.clock)
	default:
		return nil, fmt.Errorf("unknown ai provider %q (want openai or gemini)", provider)
	}
}

func (a *app) resolveAPIKey(ctx context.Context, provider string) (string, error) {
	if key := a.config.GetString(aiAPIKeyKey); key != "" {
		return key, nil
	}

	key, err := a.secretStore.Get(ctx, provider+"_api_key")
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", fmt.Errorf("no API key for %s: set HORASBOT_AI_API_KEY or run 'horasbot config set-key'", provider)
		}
		return "", fmt.Errorf("read %s API key from keyring: %w", provider, err)
	}

	return key, nil
}
