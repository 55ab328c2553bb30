// Package bubble provides an interactive terminal form built on bubbletea.
// Every keystroke that changes a value is forwarded to the widget, and the
// view shows the widget's current errors under each control.
package bubble

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

const submitFocus = 4

// SubmittedMsg is emitted after the submit control is activated.
type SubmittedMsg struct {
	Submission widget.Submission
}

// ChangeFailedMsg reports an event the widget rejected.
type ChangeFailedMsg struct {
	Err error
}

// Option configures a Model.
type Option func(*Model)

// WithStyles replaces the default palette.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithContext sets the context passed to the submit collaborator.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithTitle sets the heading shown above the form.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// Model is the bubbletea model for one widget.
type Model struct {
	widget *widget.Widget
	ctx    context.Context
	styles Styles
	title  string

	fields []model.Field
	name   textinput.Model
	email  textinput.Model

	focus        int
	genderCursor int
	last         *widget.Submission
	err          error
	quitting     bool
}

// New builds a model around w. Focus starts on the name input.
func New(w *widget.Widget, options ...Option) Model {
	m := Model{
		widget:       w,
		ctx:          context.Background(),
		styles:       DefaultStyles(),
		fields:       model.Fields(),
		genderCursor: -1,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&m)
		}
	}

	m.name = newInput(model.NameField, w.State().Name)
	m.email = newInput(model.EmailField, w.State().Email)
	for idx, opt := range m.genderOptions() {
		if opt.Value == w.State().Gender {
			m.genderCursor = idx
		}
	}
	m.setFocus(0)
	return m
}

func newInput(field model.FieldName, value string) textinput.Model {
	ti := textinput.New()
	if descriptor, ok := model.Lookup(field); ok {
		ti.Placeholder = descriptor.Placeholder
	}
	ti.Prompt = "> "
	ti.Width = 40
	ti.SetValue(value)
	return ti
}

// Widget returns the widget behind the model.
func (m Model) Widget() *widget.Widget {
	return m.widget
}

// Focus reports the index of the focused control in render order; the
// submit button follows the four fields.
func (m Model) Focus() int {
	return m.focus
}

// LastSubmission returns the latest submit outcome, if any.
func (m Model) LastSubmission() (widget.Submission, bool) {
	if m.last == nil {
		return widget.Submission{}, false
	}
	return *m.last, true
}

// Err returns the last rejected change, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focus + 1) % (submitFocus + 1))
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + submitFocus) % (submitFocus + 1))
		return m, nil
	case "enter":
		if m.focus == submitFocus {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	switch m.focusedKind() {
	case model.ControlCheckbox:
		if key.String() == " " || key.Type == tea.KeySpace {
			return m.change(model.InputEvent{
				Field:   model.AgreeTermsField,
				Kind:    model.ControlCheckbox,
				Checked: !m.widget.State().AgreeTerms,
			})
		}
	case model.ControlRadio:
		options := m.genderOptions()
		switch key.String() {
		case "left", "h":
			if m.genderCursor <= 0 {
				m.genderCursor = len(options) - 1
			} else {
				m.genderCursor--
			}
		case "right", "l":
			m.genderCursor = (m.genderCursor + 1) % len(options)
		default:
			return m, nil
		}
		return m.change(model.InputEvent{
			Field: model.GenderField,
			Kind:  model.ControlRadio,
			Value: options[m.genderCursor].Value,
		})
	case model.ControlText, model.ControlEmail:
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	before := m.name.Value()
	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	if after := m.name.Value(); after != before {
		var changeCmd tea.Cmd
		m, changeCmd = m.applyChange(model.InputEvent{Field: model.NameField, Kind: model.ControlText, Value: after})
		cmds = append(cmds, changeCmd)
	}

	before = m.email.Value()
	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	if after := m.email.Value(); after != before {
		var changeCmd tea.Cmd
		m, changeCmd = m.applyChange(model.InputEvent{Field: model.EmailField, Kind: model.ControlEmail, Value: after})
		cmds = append(cmds, changeCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) change(ev model.InputEvent) (tea.Model, tea.Cmd) {
	return m.applyChange(ev)
}

func (m Model) applyChange(ev model.InputEvent) (Model, tea.Cmd) {
	if err := m.widget.HandleChange(ev); err != nil {
		m.err = err
		return m, func() tea.Msg { return ChangeFailedMsg{Err: err} }
	}
	m.err = nil
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	sub := m.widget.Submit(m.ctx)
	m.last = &sub
	return m, func() tea.Msg { return SubmittedMsg{Submission: sub} }
}

func (m *Model) setFocus(idx int) {
	if idx < 0 || idx > submitFocus {
		idx = 0
	}
	m.focus = idx
	m.name.Blur()
	m.email.Blur()
	switch m.focusedField() {
	case model.NameField:
		m.name.Focus()
	case model.EmailField:
		m.email.Focus()
	}
}

func (m Model) focusedField() model.FieldName {
	if m.focus < len(m.fields) {
		return m.fields[m.focus].Name
	}
	return ""
}

func (m Model) focusedKind() model.ControlKind {
	if m.focus < len(m.fields) {
		return m.fields[m.focus].Kind
	}
	return ""
}

func (m Model) genderOptions() []model.Option {
	for _, field := range m.fields {
		if field.Name == model.GenderField {
			return field.Options
		}
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	errs := m.widget.Errors()
	state := m.widget.State()

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n\n")
	}
	for idx, field := range m.fields {
		label := m.styles.Label
		if idx == m.focus {
			label = m.styles.FocusedLabel
		}
		switch field.Kind {
		case model.ControlCheckbox:
			mark := "[ ]"
			if state.AgreeTerms {
				mark = "[x]"
			}
			b.WriteString(label.Render(mark + " " + field.Label))
		case model.ControlRadio:
			parts := make([]string, 0, len(field.Options))
			for _, opt := range field.Options {
				mark := "( )"
				if opt.Value == state.Gender {
					mark = "(*)"
				}
				parts = append(parts, mark+" "+opt.Label)
			}
			b.WriteString(label.Render(field.Label + ": " + strings.Join(parts, "  ")))
		case model.ControlEmail:
			b.WriteString(label.Render(field.Label))
			b.WriteString("\n")
			b.WriteString(m.email.View())
		default:
			b.WriteString(label.Render(field.Label))
			b.WriteString("\n")
			b.WriteString(m.name.View())
		}
		b.WriteString("\n")
		if msg, ok := errs[field.Name]; ok {
			b.WriteString(m.styles.Error.Render(msg))
			b.WriteString("\n")
		}
	}

	button := m.styles.Button
	if m.focus == submitFocus {
		button = m.styles.FocusedButton
	}
	b.WriteString(button.Render(model.SubmitLabel))
	b.WriteString("\n")

	if m.last != nil {
		status := fmt.Sprintf("submitted (%s)", m.last.Status)
		if m.last.Err != nil {
			status = "submit failed: " + m.last.Err.Error()
		}
		b.WriteString(m.styles.Status.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab/shift+tab move • space toggles • ←/→ choose • enter submits • esc quits"))
	return b.String()
}
