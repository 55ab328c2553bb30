package tui

import (
	"fmt"

	"github.com/fatih/color"
)

// OutputFormat controls how the submitted values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a config or flag value onto an OutputFormat.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(raw) {
	case "", OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatFormURLEncoded, OutputFormatPrettyText:
		return OutputFormat(raw), nil
	}
	return "", fmt.Errorf("tui: unknown output format %q", raw)
}

// ContentType reports the media type of the serialized output.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Theme captures the prefixes used when printing messages between prompts.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
	// ErrorColor paints the error prefix. Colour output follows
	// color.NoColor, which is off when stdout is not a terminal.
	ErrorColor *color.Color
}

func defaultTheme() Theme {
	return Theme{
		InfoPrefix:  "i",
		ErrorPrefix: "x",
		ErrorColor:  color.New(color.FgRed, color.Bold),
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
