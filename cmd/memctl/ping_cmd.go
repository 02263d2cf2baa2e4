package main

import (
	"fmt"

	"github.com/habiliai/memoryclient/client"
	"github.com/habiliai/memoryclient/config"
	"github.com/spf13/cobra"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping [config-file]",
		Short: "Check that the configured memory server is reachable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			var file string
			if len(args) > 0 {
				file = args[0]
			}
			raw, err := readRawConfig(file)
			if err != nil {
				return err
			}

			conf, err := config.Normalize(raw)
			if err != nil {
				return err
			}

			c, err := client.New(conf, client.WithLogger(logger))
			if err != nil {
				return err
			}

			if err := c.Ping(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "memory server at %s is healthy\n", conf.ServerURL)
			return nil
		},
	}
}
