package widget

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/submit"
	"github.com/goliatone/go-formwidget/pkg/validation"
)

// Recorder observes widget activity, typically to feed metrics.
type Recorder interface {
	Change(field model.FieldName, status model.Status)
	Submit(status model.Status, err error)
}

// Option configures a widget at mount time.
type Option func(*Widget)

// WithSubmitter sets the collaborator that receives snapshots on submit.
func WithSubmitter(s submit.Submitter) Option {
	return func(w *Widget) {
		if s != nil {
			w.submitter = s
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithID overrides the generated instance identifier.
func WithID(id string) Option {
	return func(w *Widget) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			w.id = trimmed
		}
	}
}

// WithRecorder attaches an activity recorder.
func WithRecorder(r Recorder) Option {
	return func(w *Widget) {
		w.recorder = r
	}
}

// WithValidator swaps the rule set used to derive errors.
func WithValidator(v *validation.Validator) Option {
	return func(w *Widget) {
		if v != nil {
			w.validator = v
		}
	}
}
