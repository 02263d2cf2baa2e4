package main

import (
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/habiliai/memoryclient/internal/mylog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootParams = &struct {
	LogLevel   string
	LogHandler string
	EnvFile    string
}{}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "memctl",
		Short:         "Validate and inspect agent memory client configuration",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile := rootParams.EnvFile
			if envFile == "" {
				envFile = ".env"
			}
			if _, err := os.Stat(envFile); !os.IsNotExist(err) {
				if err := godotenv.Load(envFile); err != nil {
					return errors.Wrapf(err, "failed to load %s", envFile)
				}
			}
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&rootParams.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.StringVar(&rootParams.LogHandler, "log-handler", "default", "log handler (default, json)")
	f.StringVar(&rootParams.EnvFile, "env-file", "", "dotenv file to load before resolving ${VAR} placeholders")

	cmd.AddCommand(
		newValidateCmd(),
		newFieldsCmd(),
		newSchemaCmd(),
		newPingCmd(),
	)

	return cmd
}

func newLogger() *slog.Logger {
	return mylog.NewLogger(rootParams.LogLevel, rootParams.LogHandler)
}

// readRawConfig loads a YAML (or JSON) config file as the untyped mapping
// that config.Normalize expects. An empty path means an empty config.
func readRawConfig(file string) (map[string]any, error) {
	if file == "" {
		return map[string]any{}, nil
	}

	yamlBytes, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", file)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(yamlBytes, &raw); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal file %s", file)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	return raw, nil
}
