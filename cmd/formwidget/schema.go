package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidget/pkg/openapi"
)

var (
	schemaFormat string
	schemaServer string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the OpenAPI document for the submission payload",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var options []openapi.Option
		if schemaServer != "" {
			options = append(options, openapi.WithServer(schemaServer))
		}

		var (
			out []byte
			err error
		)
		switch schemaFormat {
		case "yaml", "yml":
			out, err = openapi.MarshalYAML(cmd.Context(), options...)
		case "json":
			out, err = openapi.MarshalJSON(cmd.Context(), options...)
		default:
			return fmt.Errorf("unknown format %q, expected yaml or json", schemaFormat)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaFormat, "format", "yaml", "output format: yaml or json")
	schemaCmd.Flags().StringVar(&schemaServer, "server", "", "server URL to include in the document")
}
