package testsupport

import (
	"context"
	"strconv"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// Type appends text to a text or email control one character at a time. Each
// character is a change event followed by a re-render.
func (s *Screen) Type(el Element, text string) {
	s.t.Helper()

	id, ok := el.Attr("id")
	if !ok {
		s.t.Fatalf("testsupport: type target has no id")
	}
	for _, r := range text {
		current := s.byID(id)
		s.change(current, current.Value()+string(r), false)
	}
}

// Clear empties a text or email control with a single change event.
func (s *Screen) Clear(el Element) {
	s.t.Helper()
	s.change(el, "", false)
}

// Click toggles a checkbox, selects a radio or activates a submit button.
// Clicking an already selected radio dispatches nothing.
func (s *Screen) Click(el Element) {
	s.t.Helper()

	if id, ok := el.Attr("id"); ok && id != "" {
		el = s.byID(id)
	}
	switch el.Role() {
	case "checkbox":
		s.change(el, "", !el.Checked())
	case "radio":
		if el.Checked() {
			return
		}
		s.change(el, el.Value(), false)
	case "button":
		s.submissions = append(s.submissions, s.widget.Submit(context.Background()))
		s.rerender()
	default:
		s.t.Fatalf("testsupport: click on unsupported element <%s role=%q>", el.Tag(), el.Role())
	}
}

func (s *Screen) change(el Element, value string, checked bool) {
	s.t.Helper()

	name, _ := el.Attr("name")
	kind, _ := el.Attr("type")
	ev := model.InputEvent{
		Field:   model.FieldName(name),
		Kind:    model.ControlKind(kind),
		Value:   value,
		Checked: checked,
	}
	if err := s.widget.HandleChange(ev); err != nil {
		s.t.Fatalf("testsupport: change %s: %v", name, err)
	}
	s.rerender()
}

func (s *Screen) byID(id string) Element {
	s.t.Helper()
	found := s.all(func(n *html.Node) bool {
		return attr(n, "id") == id
	})
	return s.single("id "+strconv.Quote(id), found)
}
