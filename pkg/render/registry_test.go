package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.View, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg, err := render.NewRegistry(namedRenderer("vanilla"), namedRenderer("text"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if diff := cmp.Diff([]string{"text", "vanilla"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	got, err := reg.Get(" vanilla ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "vanilla" {
		t.Fatalf("unexpected renderer %q", got.Name())
	}
}

func TestRegistry_Errors(t *testing.T) {
	if _, err := render.NewRegistry(namedRenderer("a"), namedRenderer("a")); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, err := render.NewRegistry(namedRenderer(" ")); err == nil {
		t.Fatalf("expected empty name error")
	}

	reg, _ := render.NewRegistry()
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if _, err := reg.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}
