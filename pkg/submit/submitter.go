package submit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// Submitter receives the full form snapshot when the user submits. The widget
// does not gate on validity, so implementations may see invalid snapshots.
type Submitter interface {
	Submit(ctx context.Context, state model.FormState) error
}

// SubmitterFunc adapts a function into a Submitter.
type SubmitterFunc func(ctx context.Context, state model.FormState) error

// Submit calls fn.
func (fn SubmitterFunc) Submit(ctx context.Context, state model.FormState) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, state)
}

// Log returns a Submitter that writes the snapshot to logger at info level.
func Log(logger *slog.Logger) Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return SubmitterFunc(func(ctx context.Context, state model.FormState) error {
		logger.InfoContext(ctx, "form submitted",
			slog.String("name", state.Name),
			slog.String("email", state.Email),
			slog.Bool("agreeTerms", state.AgreeTerms),
			slog.String("gender", state.Gender),
		)
		return nil
	})
}

// Chain forwards the snapshot to every submitter in order. Failures do not
// stop later submitters; all errors are joined.
func Chain(submitters ...Submitter) Submitter {
	clean := make([]Submitter, 0, len(submitters))
	for _, s := range submitters {
		if s != nil {
			clean = append(clean, s)
		}
	}
	return SubmitterFunc(func(ctx context.Context, state model.FormState) error {
		var errs []error
		for _, s := range clean {
			if err := s.Submit(ctx, state); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
