// Package formwidget is the top-level entry point: it mounts form widgets and
// renders them with the built-in HTML renderer.
package formwidget

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/render"
	"github.com/goliatone/go-formwidget/pkg/renderers/vanilla"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// RenderOptions aliases render.RenderOptions for callers rendering through
// the root package.
type RenderOptions = render.RenderOptions

// FormState aliases model.FormState.
type FormState = model.FormState

// ErrorState aliases model.ErrorState.
type ErrorState = model.ErrorState

// New mounts a widget with an empty form.
func New(options ...widget.Option) *widget.Widget {
	return widget.New(options...)
}

// Prefill applies field=value pairs to w as change events, in render order.
func Prefill(w *widget.Widget, values map[string]string) error {
	events, err := render.EventsFromValues(values)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if err := w.HandleChange(ev); err != nil {
			return fmt.Errorf("formwidget: prefill %s: %w", ev.Field, err)
		}
	}
	return nil
}

// RenderHTML renders w with the vanilla renderer. Renderer options such as a
// theme or terms markup can be passed through.
func RenderHTML(ctx context.Context, w *widget.Widget, options RenderOptions, rendererOptions ...vanilla.Option) ([]byte, error) {
	r, err := vanilla.New(rendererOptions...)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, w.View(), options)
}
