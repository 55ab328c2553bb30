package validation_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/validation"
)

func validState() model.FormState {
	return model.FormState{
		Name:       "John Doe",
		Email:      "john.doe@example.com",
		AgreeTerms: true,
		Gender:     model.GenderMale,
	}
}

func TestValidate_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.FormState)
		want   model.ErrorState
	}{
		{
			name:   "all valid",
			mutate: func(*model.FormState) {},
			want:   model.ErrorState{},
		},
		{
			name:   "very long name",
			mutate: func(s *model.FormState) { s.Name = strings.Repeat("J", 1000) },
			want:   model.ErrorState{},
		},
		{
			name:   "complex email",
			mutate: func(s *model.FormState) { s.Email = "test.name+alias@example.co.uk" },
			want:   model.ErrorState{},
		},
		{
			name:   "blank name",
			mutate: func(s *model.FormState) { s.Name = "" },
			want:   model.ErrorState{model.NameField: "Name must be at least 3 characters."},
		},
		{
			name:   "two character name",
			mutate: func(s *model.FormState) { s.Name = "Jo" },
			want:   model.ErrorState{model.NameField: "Name must be at least 3 characters."},
		},
		{
			name:   "three character name",
			mutate: func(s *model.FormState) { s.Name = "Joe" },
			want:   model.ErrorState{},
		},
		{
			name:   "email without at sign",
			mutate: func(s *model.FormState) { s.Email = "john.doeexample.com" },
			want:   model.ErrorState{model.EmailField: "Email must be valid."},
		},
		{
			name:   "bare at sign is accepted",
			mutate: func(s *model.FormState) { s.Email = "@" },
			want:   model.ErrorState{},
		},
		{
			name:   "terms unchecked",
			mutate: func(s *model.FormState) { s.AgreeTerms = false },
			want:   model.ErrorState{model.AgreeTermsField: "You must agree to the terms."},
		},
		{
			name:   "gender unset",
			mutate: func(s *model.FormState) { s.Gender = model.GenderUnset },
			want:   model.ErrorState{model.GenderField: "You must select a gender."},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := validState()
			tc.mutate(&state)
			if diff := cmp.Diff(tc.want, validation.Validate(state)); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_ZeroStateFailsEveryField(t *testing.T) {
	got := validation.Validate(model.FormState{})
	want := model.ErrorState{
		model.NameField:       "Name must be at least 3 characters.",
		model.EmailField:      "Email must be valid.",
		model.AgreeTermsField: "You must agree to the terms.",
		model.GenderField:     "You must select a gender.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func TestValidate_NameLengthCountsUTF16Units(t *testing.T) {
	cases := []struct {
		name    string
		invalid bool
	}{
		{"Zoë", false},
		{"\U0001D49Cb", false},
		{"\U0001D49C", true},
		{"ab", true},
	}
	for _, tc := range cases {
		got := validation.Validate(model.FormState{Name: tc.name})
		if got.Has(model.NameField) != tc.invalid {
			t.Fatalf("name %q (length %d): want error %v, got %q", tc.name, validation.Length(tc.name), tc.invalid, got.Message(model.NameField))
		}
	}
}

func TestValidate_ResultsDoNotAlias(t *testing.T) {
	first := validation.Validate(model.FormState{})
	first[model.NameField] = "mutated"

	second := validation.Validate(model.FormState{})
	if second.Message(model.NameField) != "Name must be at least 3 characters." {
		t.Fatalf("validator leaked mutation between calls: %q", second.Message(model.NameField))
	}
}

func TestNew_RejectsInvalidRules(t *testing.T) {
	cases := []struct {
		rule validation.Rule
		want error
	}{
		{validation.Rule{Field: "age", Kind: validation.KindRequired}, validation.ErrUnknownField},
		{validation.Rule{Field: model.NameField, Kind: "regex"}, validation.ErrUnknownKind},
		{validation.Rule{Field: model.NameField, Kind: validation.KindMinLength, Param: "three"}, validation.ErrInvalidParam},
		{validation.Rule{Field: model.EmailField, Kind: validation.KindContains}, validation.ErrInvalidParam},
		{validation.Rule{Field: model.NameField, Kind: validation.KindAccepted}, validation.ErrInvalidParam},
		{validation.Rule{Field: model.AgreeTermsField, Kind: validation.KindMinLength, Param: "1"}, validation.ErrInvalidParam},
		{validation.Rule{Field: model.AgreeTermsField, Kind: validation.KindContains, Param: "x"}, validation.ErrInvalidParam},
	}
	for _, tc := range cases {
		if _, err := validation.New(tc.rule); !errors.Is(err, tc.want) {
			t.Fatalf("New(%+v): want %v, got %v", tc.rule, tc.want, err)
		}
	}
}

func TestNew_CustomRulesFirstFailureWins(t *testing.T) {
	v, err := validation.New(
		validation.Rule{Field: model.NameField, Kind: validation.KindRequired, Message: "required"},
		validation.Rule{Field: model.NameField, Kind: validation.KindMinLength, Param: "5", Message: "too short"},
	)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	if got := v.Validate(model.FormState{}).Message(model.NameField); got != "required" {
		t.Fatalf("want first failing rule message, got %q", got)
	}
	if got := v.Validate(model.FormState{Name: "Ann"}).Message(model.NameField); got != "too short" {
		t.Fatalf("want min length message, got %q", got)
	}
	if got := v.Validate(model.FormState{}); got.Has(model.EmailField) {
		t.Fatalf("custom validator should only check its own rules")
	}
}

func TestNew_DefaultsWithoutRules(t *testing.T) {
	v, err := validation.New()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	if diff := cmp.Diff(validation.DefaultRules(), v.Rules()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func drawState(t *rapid.T) model.FormState {
	return model.FormState{
		Name:       rapid.String().Draw(t, "name"),
		Email:      rapid.String().Draw(t, "email"),
		AgreeTerms: rapid.Bool().Draw(t, "agreeTerms"),
		Gender:     rapid.SampledFrom([]string{model.GenderUnset, model.GenderMale, model.GenderFemale}).Draw(t, "gender"),
	}
}

func TestValidate_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		state := drawState(t)
		errs := validation.Validate(state)

		if utf16Len(state.Name) >= 3 && errs.Has(model.NameField) {
			t.Fatalf("name %q has %d UTF-16 units but failed", state.Name, utf16Len(state.Name))
		}
		if utf16Len(state.Name) < 3 && !errs.Has(model.NameField) {
			t.Fatalf("name %q is short but passed", state.Name)
		}
		if strings.Contains(state.Email, "@") == errs.Has(model.EmailField) {
			t.Fatalf("email %q: contains @ = %v, error present = %v", state.Email, strings.Contains(state.Email, "@"), errs.Has(model.EmailField))
		}
		if errs.Has(model.AgreeTermsField) != !state.AgreeTerms {
			t.Fatalf("agreeTerms=%v but error present = %v", state.AgreeTerms, errs.Has(model.AgreeTermsField))
		}
		if errs.Has(model.GenderField) != (state.Gender == "") {
			t.Fatalf("gender=%q but error present = %v", state.Gender, errs.Has(model.GenderField))
		}
		for field := range errs {
			if !field.Known() {
				t.Fatalf("unexpected error key %q", field)
			}
		}
	})
}

func TestValidate_LongNamesAndEmailsWithAtAlwaysPass(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringN(3, -1, -1).Draw(t, "name")
		local := rapid.String().Draw(t, "local")
		domain := rapid.String().Draw(t, "domain")

		errs := validation.Validate(model.FormState{Name: name, Email: local + "@" + domain})
		if errs.Has(model.NameField) {
			t.Fatalf("name %q should pass", name)
		}
		if errs.Has(model.EmailField) {
			t.Fatalf("email %q should pass", local+"@"+domain)
		}
	})
}

func TestValidate_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		state := drawState(t)
		if diff := cmp.Diff(validation.Validate(state), validation.Validate(state)); diff != "" {
			t.Fatalf("validate not deterministic (-first +second):\n%s", diff)
		}
	})
}
