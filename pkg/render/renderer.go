package render

import (
	"context"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// Renderer converts a widget view into a byte representation (HTML, text).
// Renderers read the view only; every mutation goes through the widget.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view model.View, options RenderOptions) ([]byte, error)
}
