package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidget/pkg/renderers/bubble"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal form",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := widget.New(widget.WithLogger(logger), widget.WithSubmitter(submitter()))
		model := bubble.New(w,
			bubble.WithContext(cmd.Context()),
			bubble.WithTitle("Sign up"),
		)
		_, err := tea.NewProgram(model,
			tea.WithContext(cmd.Context()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		).Run()
		return err
	},
}
