package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidget/pkg/model"
)

func TestFormState_ZeroValueCarriesAllKeys(t *testing.T) {
	var state model.FormState

	want := map[model.FieldName]any{
		model.NameField:       "",
		model.EmailField:      "",
		model.AgreeTermsField: false,
		model.GenderField:     "",
	}
	if diff := cmp.Diff(want, state.Values()); diff != "" {
		t.Fatalf("zero state mismatch (-want +got):\n%s", diff)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	const wantJSON = `{"name":"","email":"","agreeTerms":false,"gender":""}`
	if string(raw) != wantJSON {
		t.Fatalf("json mismatch: want %s, got %s", wantJSON, raw)
	}
}

func TestErrorState_FieldsFollowRenderOrder(t *testing.T) {
	errs := model.ErrorState{
		model.GenderField: "gender",
		model.NameField:   "name",
		"zeta":            "unknown",
	}

	want := []model.FieldName{model.NameField, model.GenderField, "zeta"}
	if diff := cmp.Diff(want, errs.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if errs.Valid() {
		t.Fatalf("expected invalid error state")
	}
	if got := model.StatusOf(errs); got != model.StatusInvalid {
		t.Fatalf("status: want %s, got %s", model.StatusInvalid, got)
	}
}

func TestErrorState_CloneIsIndependent(t *testing.T) {
	errs := model.ErrorState{model.NameField: "name"}
	clone := errs.Clone()
	clone[model.EmailField] = "email"

	if errs.Has(model.EmailField) {
		t.Fatalf("clone mutated source")
	}
	if got := model.ErrorState(nil).Clone(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil clone of nil, got %#v", got)
	}
	if got := model.StatusOf(nil); got != model.StatusClean {
		t.Fatalf("status of nil: want %s, got %s", model.StatusClean, got)
	}
}

func TestFields_RenderSurfaceContract(t *testing.T) {
	fields := model.Fields()
	if len(fields) != len(model.FieldOrder) {
		t.Fatalf("expected %d fields, got %d", len(model.FieldOrder), len(fields))
	}
	for i, field := range fields {
		if field.Name != model.FieldOrder[i] {
			t.Fatalf("field %d: want %s, got %s", i, model.FieldOrder[i], field.Name)
		}
	}

	name, _ := model.Lookup(model.NameField)
	email, _ := model.Lookup(model.EmailField)
	terms, _ := model.Lookup(model.AgreeTermsField)
	gender, ok := model.Lookup(model.GenderField)
	if !ok {
		t.Fatalf("gender descriptor missing")
	}

	if name.Placeholder != "Name" || email.Placeholder != "Email" {
		t.Fatalf("unexpected placeholders: %q %q", name.Placeholder, email.Placeholder)
	}
	if terms.Kind != model.ControlCheckbox || terms.Label != "Agree to Terms" {
		t.Fatalf("unexpected terms descriptor: %+v", terms)
	}
	wantOptions := []model.Option{
		{Value: model.GenderMale, Label: "Male"},
		{Value: model.GenderFemale, Label: "Female"},
	}
	if diff := cmp.Diff(wantOptions, gender.Options); diff != "" {
		t.Fatalf("gender options mismatch (-want +got):\n%s", diff)
	}
	if _, ok := model.Lookup("age"); ok {
		t.Fatalf("unexpected descriptor for unknown field")
	}
}

func TestValidOption(t *testing.T) {
	for value, want := range map[string]bool{
		"":       true,
		"male":   true,
		"female": true,
		"Male":   false,
		"other":  false,
	} {
		if got := model.ValidOption(value); got != want {
			t.Fatalf("ValidOption(%q): want %v, got %v", value, want, got)
		}
	}
}
