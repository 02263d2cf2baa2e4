package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/habiliai/memoryclient/config"
	"github.com/mokiat/gog"
	"github.com/spf13/cobra"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the configuration fields and their UI metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tLABEL\tFLAGS\tHELP")

			for _, name := range config.FieldNames() {
				desc, _ := config.Describe(name)

				var flags []string
				if desc.Sensitive {
					flags = append(flags, "sensitive")
				}
				if desc.Advanced {
					flags = append(flags, "advanced")
				}
				if desc.Multiline {
					flags = append(flags, "multiline")
				}

				help := desc.Help
				if len(desc.Options) > 0 {
					values := gog.Map(desc.Options, func(o config.FieldOption) string {
						return o.Value
					})
					help = fmt.Sprintf("%s (one of: %s)", help, strings.Join(values, ", "))
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, desc.Label, strings.Join(flags, ","), help)
			}

			return w.Flush()
		},
	}
}
