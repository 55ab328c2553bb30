package widget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/submit"
	"github.com/goliatone/go-formwidget/pkg/validation"
)

// Submission is the outcome of a submit action. Err carries a collaborator
// failure; validation problems are reported through Errors only.
type Submission struct {
	ID     string
	State  model.FormState
	Errors model.ErrorState
	Status model.Status
	Err    error
}

// Widget owns one form instance: its FormState and the ErrorState derived from
// it. A Widget belongs to a single owner (request, connection or terminal
// session) and is not safe for concurrent use.
type Widget struct {
	id        string
	state     model.FormState
	errors    model.ErrorState
	validator *validation.Validator
	submitter submit.Submitter
	logger    *slog.Logger
	recorder  Recorder

	listeners  map[int]func(model.View)
	listenerID int
}

// New mounts a widget with an empty FormState and its derived errors.
func New(options ...Option) *Widget {
	w := &Widget{
		id:        uuid.NewString(),
		validator: validation.Default(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.submitter == nil {
		w.submitter = submit.Log(w.logger)
	}
	w.errors = w.validator.Validate(w.state)
	return w
}

// ID returns the instance identifier.
func (w *Widget) ID() string {
	return w.id
}

// State returns the current field values.
func (w *Widget) State() model.FormState {
	return w.state
}

// Errors returns a copy of the current validation messages.
func (w *Widget) Errors() model.ErrorState {
	return w.errors.Clone()
}

// Status reports whether the form is clean or invalid.
func (w *Widget) Status() model.Status {
	return model.StatusOf(w.errors)
}

// View returns a snapshot suitable for rendering.
func (w *Widget) View() model.View {
	return model.View{
		ID:     w.id,
		State:  w.state,
		Errors: w.errors.Clone(),
		Status: w.Status(),
	}
}

// OnChange registers fn to run after every successful change with the new
// view. The returned func removes the listener.
func (w *Widget) OnChange(fn func(model.View)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	if w.listeners == nil {
		w.listeners = make(map[int]func(model.View))
	}
	w.listenerID++
	id := w.listenerID
	w.listeners[id] = fn
	return func() {
		delete(w.listeners, id)
	}
}

// HandleChange applies a change event. Checkbox events write ev.Checked, every
// other kind writes ev.Value. On success the ErrorState is recomputed from the
// new FormState and listeners are notified. On error nothing changes.
func (w *Widget) HandleChange(ev model.InputEvent) error {
	next, err := apply(w.state, ev)
	if err != nil {
		return err
	}

	w.state = next
	w.errors = w.validator.Validate(next)
	status := model.StatusOf(w.errors)

	w.logger.Debug("form field changed",
		slog.String("widget", w.id),
		slog.String("field", string(ev.Field)),
		slog.String("status", string(status)),
	)
	if w.recorder != nil {
		w.recorder.Change(ev.Field, status)
	}
	if len(w.listeners) > 0 {
		view := w.View()
		for _, fn := range w.listeners {
			fn(view)
		}
	}
	return nil
}

// Submit hands the current snapshot to the configured submitter. It runs
// whether or not the form is valid and never changes state. Collaborator
// failures are logged and returned on the Submission.
func (w *Widget) Submit(ctx context.Context) Submission {
	if ctx == nil {
		ctx = context.Background()
	}
	sub := Submission{
		ID:     w.id,
		State:  w.state,
		Errors: w.errors.Clone(),
		Status: model.StatusOf(w.errors),
	}

	if err := w.submitter.Submit(ctx, sub.State); err != nil {
		sub.Err = fmt.Errorf("widget: submit: %w", err)
		w.logger.WarnContext(ctx, "form submit collaborator failed",
			slog.String("widget", w.id),
			slog.Any("error", err),
		)
	}
	if w.recorder != nil {
		w.recorder.Submit(sub.Status, sub.Err)
	}
	return sub
}

func apply(state model.FormState, ev model.InputEvent) (model.FormState, error) {
	if !ev.Field.Known() {
		return state, fmt.Errorf("%w: %q", ErrUnknownField, ev.Field)
	}

	checkbox := ev.Kind == model.ControlCheckbox
	if checkbox != (ev.Field == model.AgreeTermsField) {
		return state, fmt.Errorf("%w: %s event for %s", ErrKindMismatch, kindLabel(ev.Kind), ev.Field)
	}

	switch ev.Field {
	case model.NameField:
		state.Name = ev.Value
	case model.EmailField:
		state.Email = ev.Value
	case model.AgreeTermsField:
		state.AgreeTerms = ev.Checked
	case model.GenderField:
		if !model.ValidOption(ev.Value) {
			return state, fmt.Errorf("%w: %q for %s", ErrInvalidOption, ev.Value, ev.Field)
		}
		state.Gender = ev.Value
	}
	return state, nil
}

func kindLabel(kind model.ControlKind) string {
	if kind == "" {
		return "untyped"
	}
	return string(kind)
}
