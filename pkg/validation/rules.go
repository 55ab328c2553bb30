package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// Kind identifies the predicate a rule applies.
type Kind string

const (
	// KindMinLength fails when the field has fewer UTF-16 code units than
	// Param, matching a browser's string length.
	KindMinLength Kind = "minLength"
	// KindContains fails when the field does not contain Param as a substring.
	KindContains Kind = "contains"
	// KindAccepted fails when a boolean field is false.
	KindAccepted Kind = "accepted"
	// KindRequired fails when a text field is empty or a boolean field is false.
	KindRequired Kind = "required"
)

var (
	ErrUnknownKind  = errors.New("validation: unknown rule kind")
	ErrUnknownField = errors.New("validation: unknown field")
	ErrInvalidParam = errors.New("validation: invalid rule parameter")
)

// Rule is a single predicate bound to a field together with the message shown
// while the predicate fails.
type Rule struct {
	Field   model.FieldName `json:"field"`
	Kind    Kind            `json:"kind"`
	Param   string          `json:"param,omitempty"`
	Message string          `json:"message"`
}

// DefaultRules returns the widget's rule table.
func DefaultRules() []Rule {
	return []Rule{
		{Field: model.NameField, Kind: KindMinLength, Param: "3", Message: "Name must be at least 3 characters."},
		{Field: model.EmailField, Kind: KindContains, Param: "@", Message: "Email must be valid."},
		{Field: model.AgreeTermsField, Kind: KindAccepted, Message: "You must agree to the terms."},
		{Field: model.GenderField, Kind: KindRequired, Message: "You must select a gender."},
	}
}

func (r Rule) check() error {
	if !r.Field.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownField, r.Field)
	}
	switch r.Kind {
	case KindMinLength, KindContains:
		if r.Field == model.AgreeTermsField {
			return fmt.Errorf("%w: %s applies to text fields, not %s", ErrInvalidParam, r.Kind, r.Field)
		}
	case KindAccepted:
		if r.Field != model.AgreeTermsField {
			return fmt.Errorf("%w: %s applies to boolean fields, not %s", ErrInvalidParam, r.Kind, r.Field)
		}
	}

	switch r.Kind {
	case KindMinLength:
		n, err := strconv.Atoi(strings.TrimSpace(r.Param))
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s on %s expects a non-negative integer, got %q", ErrInvalidParam, r.Kind, r.Field, r.Param)
		}
	case KindContains:
		if r.Param == "" {
			return fmt.Errorf("%w: %s on %s expects a substring", ErrInvalidParam, r.Kind, r.Field)
		}
	case KindAccepted, KindRequired:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	return nil
}

// passes evaluates the predicate. Rules are checked at construction so parse
// failures are treated as passing here.
func (r Rule) passes(state model.FormState) bool {
	switch r.Kind {
	case KindMinLength:
		n, err := strconv.Atoi(strings.TrimSpace(r.Param))
		if err != nil {
			return true
		}
		return Length(state.Text(r.Field)) >= n
	case KindContains:
		return strings.Contains(state.Text(r.Field), r.Param)
	case KindAccepted:
		return state.Bool(r.Field)
	case KindRequired:
		if r.Field == model.AgreeTermsField {
			return state.AgreeTerms
		}
		return state.Text(r.Field) != ""
	default:
		return true
	}
}

// Length counts s in UTF-16 code units. Characters outside the Basic
// Multilingual Plane count as two.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
