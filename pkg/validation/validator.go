package validation

import (
	"fmt"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// Validator derives an ErrorState from a FormState using a fixed rule set.
// Validate is pure: the same state always yields an equal ErrorState and the
// result never aliases earlier results.
type Validator struct {
	rules []Rule
}

var defaultValidator = &Validator{rules: DefaultRules()}

// New builds a validator for rules. Without rules it uses DefaultRules.
func New(rules ...Rule) (*Validator, error) {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	for i, rule := range rules {
		if err := rule.check(); err != nil {
			return nil, fmt.Errorf("validation: rule %d: %w", i, err)
		}
	}
	return &Validator{rules: append([]Rule(nil), rules...)}, nil
}

// Default returns the validator backing Validate.
func Default() *Validator {
	return defaultValidator
}

// Rules returns a copy of the validator's rule set.
func (v *Validator) Rules() []Rule {
	if v == nil {
		return nil
	}
	return append([]Rule(nil), v.rules...)
}

// Validate recomputes the full ErrorState for state. When several rules fail
// for the same field, the first one in rule order supplies the message.
func (v *Validator) Validate(state model.FormState) model.ErrorState {
	errs := make(model.ErrorState)
	if v == nil {
		return errs
	}
	for _, rule := range v.rules {
		if errs.Has(rule.Field) {
			continue
		}
		if !rule.passes(state) {
			errs[rule.Field] = rule.Message
		}
	}
	return errs
}

// Validate applies DefaultRules to state.
func Validate(state model.FormState) model.ErrorState {
	return defaultValidator.Validate(state)
}
