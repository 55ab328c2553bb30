package template

import (
	"io"
)

// TemplateRenderer executes named templates for the HTML renderers.
type TemplateRenderer interface {
	// RenderTemplate executes name with data and also writes the result to
	// every out writer.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// GlobalContext merges data into the values every template can read.
	GlobalContext(data any) error
}
