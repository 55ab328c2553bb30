package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	formwidget "github.com/goliatone/go-formwidget"
	"github.com/goliatone/go-formwidget/pkg/render"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

var (
	renderValues   []string
	renderOutput   string
	renderDocument bool
	renderAction   string
	renderLive     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the form HTML",
	Long: `Render the form as HTML. Values passed with --set are applied as change
events, so the output shows the validation messages for that state.

Example:
  formwidget render --set name=Jo --set agreeTerms=true --document`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		values, err := parseSetFlags(renderValues)
		if err != nil {
			return err
		}

		w := widget.New(widget.WithLogger(logger))
		if err := formwidget.Prefill(w, values); err != nil {
			return err
		}

		r, err := htmlRenderer()
		if err != nil {
			return err
		}
		out, err := r.Render(cmd.Context(), w.View(), render.RenderOptions{
			Action:       renderAction,
			LiveEndpoint: renderLive,
			Document:     renderDocument,
		})
		if err != nil {
			return err
		}

		if renderOutput == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", renderOutput, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", renderOutput)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringArrayVar(&renderValues, "set", nil, "prefill a field (field=value), repeatable")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (stdout if empty)")
	renderCmd.Flags().BoolVar(&renderDocument, "document", false, "wrap the form in a standalone HTML page")
	renderCmd.Flags().StringVar(&renderAction, "action", "", "form action URL")
	renderCmd.Flags().StringVar(&renderLive, "live", "", "websocket endpoint for live validation")
}

func parseSetFlags(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	values := make(map[string]string, len(raw))
	for _, pair := range raw {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --set %q, expected field=value", pair)
		}
		values[strings.TrimSpace(key)] = value
	}
	return values, nil
}
