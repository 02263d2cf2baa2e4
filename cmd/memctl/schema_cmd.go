package main

import (
	"encoding/json"
	"fmt"

	"github.com/habiliai/memoryclient/config"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the normalized memory config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reflector := &jsonschema.Reflector{
				ExpandedStruct: true,
			}
			schema := reflector.Reflect(&config.MemoryConfig{})

			jsonBytes, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
			return nil
		},
	}
}
