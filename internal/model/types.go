package model

import "sort"

// FieldName identifies one of the fixed keys tracked by the form.
type FieldName string

const (
	NameField       FieldName = "name"
	EmailField      FieldName = "email"
	AgreeTermsField FieldName = "agreeTerms"
	GenderField     FieldName = "gender"
)

// FieldOrder lists the form keys in render order.
var FieldOrder = []FieldName{NameField, EmailField, AgreeTermsField, GenderField}

// Known reports whether name is one of the fixed form keys.
func (f FieldName) Known() bool {
	switch f {
	case NameField, EmailField, AgreeTermsField, GenderField:
		return true
	default:
		return false
	}
}

const (
	GenderUnset  = ""
	GenderMale   = "male"
	GenderFemale = "female"
)

// ControlKind is the input type that produced a change event. Checkbox events
// carry a boolean, every other kind carries a string.
type ControlKind string

const (
	ControlText     ControlKind = "text"
	ControlEmail    ControlKind = "email"
	ControlCheckbox ControlKind = "checkbox"
	ControlRadio    ControlKind = "radio"
)

// FormState holds the current value of every tracked field. The zero value is
// the mount-time default.
type FormState struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	AgreeTerms bool   `json:"agreeTerms"`
	Gender     string `json:"gender"`
}

// Values flattens the state into a map keyed by field name. All four keys are
// always present.
func (s FormState) Values() map[FieldName]any {
	return map[FieldName]any{
		NameField:       s.Name,
		EmailField:      s.Email,
		AgreeTermsField: s.AgreeTerms,
		GenderField:     s.Gender,
	}
}

// Text returns the value of a string field and "" for anything else.
func (s FormState) Text(field FieldName) string {
	switch field {
	case NameField:
		return s.Name
	case EmailField:
		return s.Email
	case GenderField:
		return s.Gender
	default:
		return ""
	}
}

// Bool returns the value of a boolean field and false for anything else.
func (s FormState) Bool(field FieldName) bool {
	if field == AgreeTermsField {
		return s.AgreeTerms
	}
	return false
}

// ErrorState maps a field to its current validation message. A key is present
// only while the field fails validation.
type ErrorState map[FieldName]string

// Has reports whether field currently carries a message.
func (e ErrorState) Has(field FieldName) bool {
	_, ok := e[field]
	return ok
}

// Message returns the message for field, or "".
func (e ErrorState) Message(field FieldName) string {
	return e[field]
}

// Valid reports whether no field carries a message.
func (e ErrorState) Valid() bool {
	return len(e) == 0
}

// Fields returns the failing fields in render order followed by any unknown
// keys sorted by name.
func (e ErrorState) Fields() []FieldName {
	if len(e) == 0 {
		return nil
	}
	out := make([]FieldName, 0, len(e))
	seen := make(map[FieldName]struct{}, len(e))
	for _, field := range FieldOrder {
		if _, ok := e[field]; ok {
			out = append(out, field)
			seen[field] = struct{}{}
		}
	}
	var extra []FieldName
	for field := range e {
		if _, ok := seen[field]; !ok {
			extra = append(extra, field)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Clone returns an independent copy. A nil receiver clones to an empty map.
func (e ErrorState) Clone() ErrorState {
	out := make(ErrorState, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Status is the two-node validity state derived from ErrorState.
type Status string

const (
	StatusClean   Status = "clean"
	StatusInvalid Status = "invalid"
)

// StatusOf derives the status for errs.
func StatusOf(errs ErrorState) Status {
	if errs.Valid() {
		return StatusClean
	}
	return StatusInvalid
}

// InputEvent is a single change coming from a rendered control.
type InputEvent struct {
	Field   FieldName   `json:"field"`
	Kind    ControlKind `json:"kind"`
	Value   string      `json:"value,omitempty"`
	Checked bool        `json:"checked,omitempty"`
}

// View is the read-only snapshot surfaces render from.
type View struct {
	ID     string     `json:"id"`
	State  FormState  `json:"state"`
	Errors ErrorState `json:"errors"`
	Status Status     `json:"status"`
}
