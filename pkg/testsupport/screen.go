package testsupport

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formwidget/pkg/render"
	"github.com/goliatone/go-formwidget/pkg/renderers/vanilla"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// ScreenOption customises a Screen.
type ScreenOption func(*Screen)

// WithRenderer replaces the default vanilla HTML renderer.
func WithRenderer(r render.Renderer) ScreenOption {
	return func(s *Screen) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithRenderOptions sets the options passed to every render.
func WithRenderOptions(opts render.RenderOptions) ScreenOption {
	return func(s *Screen) {
		s.options = opts
	}
}

// Screen holds a widget and its latest HTML render.
type Screen struct {
	t        testing.TB
	widget   *widget.Widget
	renderer render.Renderer
	options  render.RenderOptions

	markup      string
	doc         *html.Node
	submissions []widget.Submission
}

// Render mounts w behind a Screen and performs the first render.
func Render(t testing.TB, w *widget.Widget, options ...ScreenOption) *Screen {
	t.Helper()

	s := &Screen{t: t, widget: w}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.renderer == nil {
		r, err := vanilla.New()
		if err != nil {
			t.Fatalf("testsupport: vanilla renderer: %v", err)
		}
		s.renderer = r
	}
	s.rerender()
	return s
}

// Widget exposes the widget under test.
func (s *Screen) Widget() *widget.Widget {
	return s.widget
}

// HTML returns the markup of the latest render.
func (s *Screen) HTML() string {
	return s.markup
}

// Submissions returns every submit outcome observed through Click.
func (s *Screen) Submissions() []widget.Submission {
	return append([]widget.Submission(nil), s.submissions...)
}

func (s *Screen) rerender() {
	s.t.Helper()

	out, err := s.renderer.Render(context.Background(), s.widget.View(), s.options)
	if err != nil {
		s.t.Fatalf("testsupport: render: %v", err)
	}
	doc, err := html.Parse(strings.NewReader(string(out)))
	if err != nil {
		s.t.Fatalf("testsupport: parse render: %v", err)
	}
	s.markup = string(out)
	s.doc = doc
}

func (s *Screen) all(match func(*html.Node) bool) []Element {
	var out []Element
	walk(s.doc, func(n *html.Node) bool {
		if match(n) {
			out = append(out, Element{node: n})
		}
		return true
	})
	return out
}

func (s *Screen) single(query string, found []Element) Element {
	s.t.Helper()
	switch len(found) {
	case 1:
		return found[0]
	case 0:
		s.t.Fatalf("testsupport: no element found for %s\n%s", query, s.markup)
	default:
		s.t.Fatalf("testsupport: %d elements found for %s\n%s", len(found), query, s.markup)
	}
	return Element{}
}

// QueryAllByPlaceholderText returns the controls whose placeholder equals text.
func (s *Screen) QueryAllByPlaceholderText(text string) []Element {
	return s.all(func(n *html.Node) bool {
		placeholder, ok := Element{node: n}.Attr("placeholder")
		return ok && normalize(placeholder) == normalize(text)
	})
}

// GetByPlaceholderText returns the single control with the placeholder.
func (s *Screen) GetByPlaceholderText(text string) Element {
	s.t.Helper()
	return s.single("placeholder "+strconv.Quote(text), s.QueryAllByPlaceholderText(text))
}

// QueryAllByRole returns every element with role whose accessible name equals
// name. An empty name matches any name.
func (s *Screen) QueryAllByRole(role, name string) []Element {
	want := normalize(name)
	return s.all(func(n *html.Node) bool {
		if roleOf(n) != role {
			return false
		}
		return want == "" || accessibleName(s.doc, n) == want
	})
}

// GetByRole returns the single element with role and accessible name.
func (s *Screen) GetByRole(role, name string) Element {
	s.t.Helper()
	return s.single("role "+role+" name "+strconv.Quote(name), s.QueryAllByRole(role, name))
}

// GetByRoleMatching returns the single element with role whose accessible
// name matches pattern.
func (s *Screen) GetByRoleMatching(role string, pattern *regexp.Regexp) Element {
	s.t.Helper()
	found := s.all(func(n *html.Node) bool {
		return roleOf(n) == role && pattern.MatchString(accessibleName(s.doc, n))
	})
	return s.single("role "+role+" name /"+pattern.String()+"/", found)
}

// QueryAllByText returns elements whose own text equals text.
func (s *Screen) QueryAllByText(text string) []Element {
	want := normalize(text)
	return s.all(func(n *html.Node) bool {
		return ownText(n) == want
	})
}

// QueryByText returns the element whose own text equals text, if any.
func (s *Screen) QueryByText(text string) (Element, bool) {
	s.t.Helper()
	found := s.QueryAllByText(text)
	if len(found) > 1 {
		s.t.Fatalf("testsupport: %d elements found for text %q\n%s", len(found), text, s.markup)
	}
	if len(found) == 0 {
		return Element{}, false
	}
	return found[0], true
}

// GetByText returns the single element whose own text equals text.
func (s *Screen) GetByText(text string) Element {
	s.t.Helper()
	return s.single("text "+strconv.Quote(text), s.QueryAllByText(text))
}

// AccessibleName returns the computed name of el in the current render.
func (s *Screen) AccessibleName(el Element) string {
	if el.node == nil {
		return ""
	}
	return accessibleName(s.doc, el.node)
}
