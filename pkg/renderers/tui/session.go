package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// Session walks a terminal user through the form one field at a time. Every
// answer is dispatched to the widget as a change event. Validation messages
// are printed after the answer that produced them but never block the flow;
// the form is submitted at the end whatever its state.
type Session struct {
	widget       *widget.Widget
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
}

// Result carries the submit outcome and the serialized values.
type Result struct {
	Submission  widget.Submission
	Output      []byte
	ContentType string
}

// New constructs a session for w with the survey driver and JSON output.
func New(w *widget.Widget, options ...Option) (*Session, error) {
	if w == nil {
		return nil, ErrNoWidget
	}
	s := &Session{
		widget:       w,
		outputFormat: OutputFormatJSON,
		theme:        defaultTheme(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run prompts every field in render order, submits and serializes the
// submitted state.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	for _, field := range model.Fields() {
		if err := s.promptField(ctx, field); err != nil {
			return Result{}, err
		}
	}

	sub := s.widget.Submit(ctx)
	if err := s.reportSubmission(ctx, sub); err != nil {
		return Result{}, err
	}

	out, err := Serialize(sub.State, s.outputFormat)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Submission:  sub,
		Output:      out,
		ContentType: s.outputFormat.ContentType(),
	}, nil
}

func (s *Session) promptField(ctx context.Context, field model.Field) error {
	state := s.widget.State()
	ev := model.InputEvent{Field: field.Name, Kind: field.Kind}

	switch field.Kind {
	case model.ControlCheckbox:
		checked, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: field.Label + "?",
			Default: state.Bool(field.Name),
		})
		if err != nil {
			return fmt.Errorf("tui: prompt %s: %w", field.Name, err)
		}
		ev.Checked = checked
	case model.ControlRadio:
		labels := make([]string, 0, len(field.Options))
		current := -1
		for idx, opt := range field.Options {
			labels = append(labels, opt.Label)
			if opt.Value == state.Text(field.Name) {
				current = idx
			}
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label + ":",
			Options:      labels,
			DefaultIndex: current,
		})
		if err != nil {
			return fmt.Errorf("tui: prompt %s: %w", field.Name, err)
		}
		if idx >= 0 && idx < len(field.Options) {
			ev.Value = field.Options[idx].Value
		}
	default:
		value, err := s.driver.Input(ctx, InputConfig{
			Message: field.Placeholder + ":",
			Default: state.Text(field.Name),
		})
		if err != nil {
			return fmt.Errorf("tui: prompt %s: %w", field.Name, err)
		}
		ev.Value = value
	}

	if err := s.widget.HandleChange(ev); err != nil {
		return fmt.Errorf("tui: apply %s: %w", field.Name, err)
	}
	if msg, ok := s.widget.Errors()[field.Name]; ok {
		return s.driver.Info(ctx, s.errorLine(msg))
	}
	return nil
}

func (s *Session) reportSubmission(ctx context.Context, sub widget.Submission) error {
	if sub.Err != nil {
		return s.driver.Info(ctx, s.errorLine("submit failed: "+sub.Err.Error()))
	}
	summary := "submitted"
	if sub.Status == model.StatusInvalid {
		summary = fmt.Sprintf("submitted with %d validation error(s)", len(sub.Errors))
	}
	return s.driver.Info(ctx, s.infoLine(summary))
}

func (s *Session) errorLine(msg string) string {
	prefix := s.theme.ErrorPrefix
	if prefix != "" && s.theme.ErrorColor != nil {
		prefix = s.theme.ErrorColor.Sprint(prefix)
	}
	return joinPrefix(prefix, msg)
}

func (s *Session) infoLine(msg string) string {
	return joinPrefix(s.theme.InfoPrefix, msg)
}

func joinPrefix(prefix, msg string) string {
	if prefix == "" {
		return msg
	}
	return prefix + " " + msg
}

// Serialize renders state in the requested format. Keys follow render order
// in the form and pretty formats.
func Serialize(state model.FormState, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for _, field := range model.FieldOrder {
			values.Set(string(field), stringValue(state, field))
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, field := range model.FieldOrder {
			fmt.Fprintf(&b, "%s=%s\n", field, stringValue(state, field))
		}
		return []byte(b.String()), nil
	case OutputFormatJSON, "":
		return json.Marshal(state)
	}
	return nil, fmt.Errorf("tui: unknown output format %q", format)
}

func stringValue(state model.FormState, field model.FieldName) string {
	if field == model.AgreeTermsField {
		return strconv.FormatBool(state.Bool(field))
	}
	return state.Text(field)
}
