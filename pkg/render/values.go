package render

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// ErrUnknownValue is returned when a prefill key does not name a form field.
var ErrUnknownValue = errors.New("render: unknown field value")

// EventsFromForm converts a native form submission into one change event per
// field. Browsers omit unchecked checkboxes and unselected radio groups, so
// missing keys become their empty values. The result is therefore a complete
// snapshot. Hidden and unknown keys are ignored.
func EventsFromForm(form url.Values) []model.InputEvent {
	events := make([]model.InputEvent, 0, len(model.FieldOrder))
	for _, field := range model.Fields() {
		raw, present := form[string(field.Name)]
		value := ""
		if len(raw) > 0 {
			value = raw[len(raw)-1]
		}
		ev := model.InputEvent{Field: field.Name, Kind: field.Kind, Value: value}
		if field.Kind == model.ControlCheckbox {
			ev.Value = ""
			ev.Checked = present && checkboxValue(value)
		}
		events = append(events, ev)
	}
	return events
}

// EventsFromValues converts a partial key/value map (CLI flags, query strings)
// into change events for the keys present, in render order. Checkbox values
// accept the strconv.ParseBool spellings plus "on"/"off".
func EventsFromValues(values map[string]string) ([]model.InputEvent, error) {
	if len(values) == 0 {
		return nil, nil
	}

	byName := make(map[model.FieldName]string, len(values))
	var unknown []string
	for key, value := range values {
		name := model.FieldName(strings.TrimSpace(key))
		if !name.Known() {
			unknown = append(unknown, key)
			continue
		}
		byName[name] = value
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownValue, strings.Join(unknown, ", "))
	}

	var events []model.InputEvent
	for _, field := range model.Fields() {
		value, ok := byName[field.Name]
		if !ok {
			continue
		}
		ev := model.InputEvent{Field: field.Name, Kind: field.Kind, Value: value}
		if field.Kind == model.ControlCheckbox {
			checked, err := parseCheckbox(value)
			if err != nil {
				return nil, fmt.Errorf("render: %s: %w", field.Name, err)
			}
			ev.Value = ""
			ev.Checked = checked
		}
		events = append(events, ev)
	}
	return events, nil
}

func checkboxValue(value string) bool {
	checked, err := parseCheckbox(value)
	if err != nil {
		// Browsers send the input's value attribute, which may be anything.
		return true
	}
	return checked
}

func parseCheckbox(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true, nil
	case "", "off", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(value))
}
