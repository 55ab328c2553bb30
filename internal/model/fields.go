package model

// SubmitLabel is the accessible name of the submit control.
const SubmitLabel = "Submit"

// Option is a single choice of a radio group.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes how a form key is presented. Placeholder and Label double as
// the accessible names tests and assistive tech target, so they must not change
// with validation state.
type Field struct {
	Name        FieldName   `json:"name"`
	Kind        ControlKind `json:"kind"`
	Label       string      `json:"label,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Options     []Option    `json:"options,omitempty"`
}

// Fields returns the presentation contract for every form key in render order.
func Fields() []Field {
	return []Field{
		{Name: NameField, Kind: ControlText, Label: "Name", Placeholder: "Name"},
		{Name: EmailField, Kind: ControlEmail, Label: "Email", Placeholder: "Email"},
		{Name: AgreeTermsField, Kind: ControlCheckbox, Label: "Agree to Terms"},
		{
			Name:  GenderField,
			Kind:  ControlRadio,
			Label: "Gender",
			Options: []Option{
				{Value: GenderMale, Label: "Male"},
				{Value: GenderFemale, Label: "Female"},
			},
		},
	}
}

// Lookup returns the descriptor for name.
func Lookup(name FieldName) (Field, bool) {
	for _, field := range Fields() {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// ValidOption reports whether value is an accepted gender choice, including the
// unset value.
func ValidOption(value string) bool {
	switch value {
	case GenderUnset, GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}
