package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

type configFile struct {
	API    apiConfig    `toml:"api"`
	Server serverConfig `toml:"server"`
	AI     aiConfig     `toml:"ai"`
}

type apiConfig struct {
	BaseURL string `toml:"base_url"`
}

type serverConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

type aiConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	BaseURL  string `toml:"base_url"`
}

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage horasbot configuration",
	}

	cmd.AddCommand(
		newConfigInitCmd(app),
		newConfigSetKeyCmd(app),
	)

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}

			configDir := filepath.Join(homeDir, configDirName)
			if err := os.MkdirAll(configDir, 0o700); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			path := filepath.Join(configDir, configName+"."+configType)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists at %s", path)
			}

			defaults := configFile{
				API: apiConfig{
					BaseURL: app.config.GetString(apiBaseURLKey),
				},
				Server: serverConfig{
					Bind: app.config.GetString(serverBindKey),
					Port: app.config.GetInt(serverPortKey),
				},
				AI: aiConfig{
					Provider: app.config.GetString(aiProviderKey),
					Model:    app.config.GetString(aiModelKey),
					BaseURL:  app.config.GetString(aiBaseURLKey),
				},
			}

			encoded, err := toml.Marshal(defaults)
			if err != nil {
				return fmt.Errorf("encode default config: %w", err)
			}

			if err := os.WriteFile(path, encoded, 0o600); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}
}

func newConfigSetKeyCmd(app *app) *cobra.Command {
	var provider string
	var value string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store an AI provider API key in the keyring",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if provider != "openai" && provider != "gemini" {
				return fmt.Errorf("unknown ai provider %q (want openai or gemini)", provider)
			}

			if err := app.secretStore.Put(cmd.Context(), provider+"_api_key", value); err != nil {
				return fmt.Errorf("store API key: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Stored API key for %s\n", provider)
			return err
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "openai", "AI provider (openai or gemini)")
	cmd.Flags().StringVar(&value, "value", "", "API key value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
