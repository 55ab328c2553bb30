package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidget/internal/config"
	"github.com/goliatone/go-formwidget/internal/logging"
	"github.com/goliatone/go-formwidget/pkg/renderers/vanilla"
	"github.com/goliatone/go-formwidget/pkg/submit"
)

var (
	configPath string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "formwidget",
	Short: "Render and drive the sign-up form widget",
	Long: `formwidget hosts a four-field sign-up form (name, email, terms, gender)
with live validation. The same widget can be rendered as HTML, answered through
terminal prompts, driven as an interactive terminal form, or served over HTTP
with a websocket live validation channel.

Validation messages are advisory: submitting is always allowed.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return setup(cmd.ErrOrStderr())
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
}

func setup(stderr io.Writer) error {
	v := config.New()
	if err := v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return fmt.Errorf("formwidget: bind flags: %w", err)
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("formwidget: read config %s: %w", configPath, err)
		}
	}
	loaded, err := config.Decode(v)
	if err != nil {
		return err
	}
	cfg = loaded

	logger, err = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: stderr,
	})
	if err != nil {
		return fmt.Errorf("formwidget: %w", err)
	}
	return nil
}

// submitter sends snapshots to the configured endpoint and always logs them.
func submitter() submit.Submitter {
	if cfg.Server.SubmitEndpoint == "" {
		return submit.Log(logger)
	}
	return submit.Chain(submit.Log(logger), submit.HTTP(cfg.Server.SubmitEndpoint))
}

func htmlRenderer() (*vanilla.Renderer, error) {
	options := []vanilla.Option{vanilla.WithTermsMarkup(cfg.Terms.HTML)}
	if cfg.Theme.Name != "" || cfg.Theme.Variant != "" || len(cfg.Theme.CSSVars) > 0 {
		options = append(options, vanilla.WithTheme(&theme.RendererConfig{
			Theme:   cfg.Theme.Name,
			Variant: cfg.Theme.Variant,
			CSSVars: cfg.Theme.CSSVars,
		}))
	}
	return vanilla.New(options...)
}
