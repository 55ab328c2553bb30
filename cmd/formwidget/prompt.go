package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidget/pkg/renderers/tui"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

var promptOutput string

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill the form through sequential terminal prompts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw := promptOutput
		if raw == "" {
			raw = cfg.TUI.Output
		}
		format, err := tui.ParseOutputFormat(raw)
		if err != nil {
			return err
		}

		w := widget.New(widget.WithLogger(logger), widget.WithSubmitter(submitter()))
		session, err := tui.New(w,
			tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())),
			tui.WithOutputFormat(format),
		)
		if err != nil {
			return err
		}

		result, err := session.Run(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(result.Output))
		return err
	},
}

func init() {
	promptCmd.Flags().StringVar(&promptOutput, "output", "", "output format: json, form or pretty (defaults to tui.output)")
}
