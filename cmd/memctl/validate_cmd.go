package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/habiliai/memoryclient/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a memory config file and print the normalized result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			raw, err := readRawConfig(args[0])
			if err != nil {
				return err
			}

			conf, err := config.Normalize(raw)
			if err != nil {
				return errors.Wrapf(err, "config %s is invalid", args[0])
			}
			logger.Debug("config normalized", "file", args[0])

			jsonBytes, err := json.Marshal(conf)
			if err != nil {
				return errors.WithStack(err)
			}
			yamlBytes, err := yaml.JSONToYAML(jsonBytes)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(yamlBytes))
			return nil
		},
	}
}
