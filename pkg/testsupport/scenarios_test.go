package testsupport_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/testsupport"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

const (
	nameError   = "Name must be at least 3 characters."
	emailError  = "Email must be valid."
	termsError  = "You must agree to the terms."
	genderError = "You must select a gender."
)

var allErrors = []string{nameError, emailError, termsError, genderError}

type fill struct {
	name   string
	email  string
	agree  bool
	gender string // accessible name of the radio, "" leaves it unselected
}

func (f fill) apply(screen *testsupport.Screen) {
	if f.name != "" {
		screen.Type(screen.GetByPlaceholderText("Name"), f.name)
	}
	if f.email != "" {
		screen.Type(screen.GetByPlaceholderText("Email"), f.email)
	}
	if f.agree {
		screen.Click(screen.GetByRole("checkbox", "Agree to Terms"))
	}
	if f.gender != "" {
		screen.Click(screen.GetByRole("radio", f.gender))
	}
}

func mount(t *testing.T) (*testsupport.Screen, *testsupport.RecordingSubmitter) {
	t.Helper()
	recorder := &testsupport.RecordingSubmitter{}
	w := widget.New(widget.WithSubmitter(recorder))
	return testsupport.Render(t, w), recorder
}

func assertRendered(t *testing.T, screen *testsupport.Screen, want ...string) {
	t.Helper()
	present := make(map[string]bool, len(want))
	for _, msg := range want {
		present[msg] = true
	}
	for _, msg := range allErrors {
		_, ok := screen.QueryByText(msg)
		if ok != present[msg] {
			t.Fatalf("error %q rendered=%v, want %v\n%s", msg, ok, present[msg], screen.HTML())
		}
	}
}

func TestScenarios(t *testing.T) {
	valid := fill{name: "John Doe", email: "john.doe@example.com", agree: true, gender: "Male"}

	cases := []struct {
		name string
		fill fill
		want []string
	}{
		{name: "all valid", fill: valid},
		{name: "empty name", fill: fill{email: valid.email, agree: true, gender: "Male"}, want: []string{nameError}},
		{name: "two character name", fill: fill{name: "Jo", email: valid.email, agree: true, gender: "Male"}, want: []string{nameError}},
		{name: "three character name", fill: fill{name: "Joe", email: valid.email, agree: true, gender: "Female"}},
		{name: "email without at sign", fill: fill{name: valid.name, email: "john.doeexample.com", agree: true, gender: "Male"}, want: []string{emailError}},
		{name: "terms unchecked", fill: fill{name: valid.name, email: valid.email, gender: "Male"}, want: []string{termsError}},
		{name: "gender unselected", fill: fill{name: valid.name, email: valid.email, agree: true}, want: []string{genderError}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			screen, recorder := mount(t)
			tc.fill.apply(screen)
			screen.Click(screen.GetByRole("button", "Submit"))

			assertRendered(t, screen, tc.want...)
			if got := len(recorder.Calls()); got != 1 {
				t.Fatalf("expected one submit call, got %d", got)
			}
		})
	}
}

func TestScenario_MountShowsEveryError(t *testing.T) {
	screen, _ := mount(t)
	assertRendered(t, screen, allErrors...)
}

func TestScenario_SubmitIsAlwaysAllowed(t *testing.T) {
	screen, recorder := mount(t)
	screen.Click(screen.GetByRole("button", "Submit"))

	calls := recorder.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected submit with an invalid form, got %d calls", len(calls))
	}
	if diff := cmp.Diff(model.FormState{}, calls[0]); diff != "" {
		t.Fatalf("submitted state mismatch (-want +got):\n%s", diff)
	}
	subs := screen.Submissions()
	if len(subs) != 1 || subs[0].Status != model.StatusInvalid || subs[0].Err != nil {
		t.Fatalf("unexpected submission: %+v", subs)
	}
}

func TestScenario_ControlledInputs(t *testing.T) {
	screen, _ := mount(t)
	fill{name: "Ada", email: "ada@example.com", agree: true, gender: "Female"}.apply(screen)

	if got := screen.GetByPlaceholderText("Name").Value(); got != "Ada" {
		t.Fatalf("name value = %q", got)
	}
	if got := screen.GetByPlaceholderText("Email").Value(); got != "ada@example.com" {
		t.Fatalf("email value = %q", got)
	}
	if !screen.GetByRole("checkbox", "Agree to Terms").Checked() {
		t.Fatalf("expected checkbox to be checked")
	}
	if !screen.GetByRole("radio", "Female").Checked() || screen.GetByRole("radio", "Male").Checked() {
		t.Fatalf("expected only Female to be selected")
	}
}

func TestScenario_ErrorsTrackEveryKeystroke(t *testing.T) {
	screen, _ := mount(t)
	nameInput := screen.GetByPlaceholderText("Name")

	screen.Type(nameInput, "Jo")
	if _, ok := screen.QueryByText(nameError); !ok {
		t.Fatalf("expected name error after two characters")
	}
	screen.Type(screen.GetByPlaceholderText("Name"), "e")
	if _, ok := screen.QueryByText(nameError); ok {
		t.Fatalf("expected name error to clear at three characters")
	}
	screen.Clear(screen.GetByPlaceholderText("Name"))
	if _, ok := screen.QueryByText(nameError); !ok {
		t.Fatalf("expected name error after clearing")
	}
}

func TestScenario_CheckboxToggles(t *testing.T) {
	screen, _ := mount(t)
	box := regexp.MustCompile(`(?i)agree to terms`)

	screen.Click(screen.GetByRoleMatching("checkbox", box))
	assertRendered(t, screen, nameError, emailError, genderError)

	screen.Click(screen.GetByRoleMatching("checkbox", box))
	assertRendered(t, screen, allErrors...)
}

func TestScenario_AccessibleNamesStableWhileInvalid(t *testing.T) {
	screen, _ := mount(t)

	checks := []struct {
		role string
		name string
	}{
		{"textbox", "Name"},
		{"textbox", "Email"},
		{"checkbox", "Agree to Terms"},
		{"radio", "Male"},
		{"radio", "Female"},
		{"button", "Submit"},
	}
	for _, check := range checks {
		screen.GetByRole(check.role, check.name)
	}
}

// Repeating the same user actions appends to the text inputs, unchecks the
// checkbox and leaves the selected radio alone. Errors follow that state only.
func TestScenario_RefillReflectsLatestState(t *testing.T) {
	screen, recorder := mount(t)
	valid := fill{name: "John Doe", email: "john.doe@example.com", agree: true, gender: "Male"}

	valid.apply(screen)
	screen.Click(screen.GetByRole("button", "Submit"))
	assertRendered(t, screen)

	valid.apply(screen)
	screen.Click(screen.GetByRole("button", "Submit"))
	assertRendered(t, screen, termsError)

	calls := recorder.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected two submit calls, got %d", len(calls))
	}
	want := model.FormState{
		Name:   "John DoeJohn Doe",
		Email:  "john.doe@example.comjohn.doe@example.com",
		Gender: model.GenderMale,
	}
	if diff := cmp.Diff(want, calls[1]); diff != "" {
		t.Fatalf("second submission mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_OverwriteClearsResidualErrors(t *testing.T) {
	screen, _ := mount(t)

	fill{name: "Jo", email: "nope"}.apply(screen)
	screen.Click(screen.GetByRole("button", "Submit"))
	assertRendered(t, screen, allErrors...)

	screen.Clear(screen.GetByPlaceholderText("Name"))
	screen.Clear(screen.GetByPlaceholderText("Email"))
	fill{name: "Jane Roe", email: "jane@example.com", agree: true, gender: "Female"}.apply(screen)
	screen.Click(screen.GetByRole("button", "Submit"))
	assertRendered(t, screen)

	if diff := cmp.Diff(model.ErrorState{}, screen.Widget().Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}
