// Package text renders a widget view as plain text for logs and terminals.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/render"
)

// Renderer writes one line per control followed by its error, if any.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// New returns the plain text renderer.
func New() Renderer {
	return Renderer{}
}

func (Renderer) Name() string {
	return "text"
}

func (Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (Renderer) Render(_ context.Context, view model.View, _ render.RenderOptions) ([]byte, error) {
	var b strings.Builder
	for _, field := range model.Fields() {
		switch field.Kind {
		case model.ControlCheckbox:
			fmt.Fprintf(&b, "%s %s\n", box(view.State.Bool(field.Name)), field.Label)
		case model.ControlRadio:
			fmt.Fprintf(&b, "%s:", field.Label)
			for _, opt := range field.Options {
				fmt.Fprintf(&b, " %s %s", radio(view.State.Text(field.Name) == opt.Value), opt.Label)
			}
			b.WriteString("\n")
		default:
			fmt.Fprintf(&b, "%s: %s\n", field.Placeholder, view.State.Text(field.Name))
		}
		if msg, ok := view.Errors[field.Name]; ok {
			fmt.Fprintf(&b, "  ! %s\n", msg)
		}
	}
	fmt.Fprintf(&b, "[%s] (%s)\n", model.SubmitLabel, view.Status)
	return []byte(b.String()), nil
}

func box(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func radio(selected bool) string {
	if selected {
		return "(*)"
	}
	return "( )"
}
