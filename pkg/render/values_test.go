package render_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/render"
)

func TestEventsFromForm_ProducesFullSnapshot(t *testing.T) {
	form := url.Values{
		"name":       {"John Doe"},
		"email":      {"john@example.com"},
		"agreeTerms": {"on"},
		"_csrf":      {"token"},
	}

	want := []model.InputEvent{
		{Field: model.NameField, Kind: model.ControlText, Value: "John Doe"},
		{Field: model.EmailField, Kind: model.ControlEmail, Value: "john@example.com"},
		{Field: model.AgreeTermsField, Kind: model.ControlCheckbox, Checked: true},
		{Field: model.GenderField, Kind: model.ControlRadio, Value: ""},
	}
	if diff := cmp.Diff(want, render.EventsFromForm(form)); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEventsFromForm_MissingCheckboxIsUnchecked(t *testing.T) {
	events := render.EventsFromForm(url.Values{"gender": {"female"}})
	if events[2].Checked {
		t.Fatalf("absent checkbox should be unchecked")
	}
	if events[3].Value != model.GenderFemale {
		t.Fatalf("expected gender value, got %q", events[3].Value)
	}
}

func TestEventsFromValues_PartialAndOrdered(t *testing.T) {
	events, err := render.EventsFromValues(map[string]string{
		"gender":     "male",
		"agreeTerms": "true",
		"name":       "Jo",
	})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	want := []model.InputEvent{
		{Field: model.NameField, Kind: model.ControlText, Value: "Jo"},
		{Field: model.AgreeTermsField, Kind: model.ControlCheckbox, Checked: true},
		{Field: model.GenderField, Kind: model.ControlRadio, Value: "male"},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEventsFromValues_Errors(t *testing.T) {
	if _, err := render.EventsFromValues(map[string]string{"age": "3"}); !errors.Is(err, render.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
	if _, err := render.EventsFromValues(map[string]string{"agreeTerms": "maybe"}); err == nil {
		t.Fatalf("expected parse error for checkbox value")
	}
}
