package testsupport

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a node in the most recent render. Elements go stale after any
// action; query again to observe the new render.
type Element struct {
	node *html.Node
}

// Tag returns the lower-case element name.
func (e Element) Tag() string {
	if e.node == nil {
		return ""
	}
	return e.node.Data
}

// Attr returns the attribute value and whether it is present.
func (e Element) Attr(name string) (string, bool) {
	if e.node == nil {
		return "", false
	}
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// Value returns the value attribute of a form control.
func (e Element) Value() string {
	value, _ := e.Attr("value")
	return value
}

// Checked reports whether a checkbox or radio carries the checked attribute.
func (e Element) Checked() bool {
	_, ok := e.Attr("checked")
	return ok
}

// TextContent returns the whitespace-normalised text of the element and its
// descendants.
func (e Element) TextContent() string {
	if e.node == nil {
		return ""
	}
	var b strings.Builder
	collectText(e.node, &b)
	return normalize(b.String())
}

// Role returns the implicit or explicit ARIA role.
func (e Element) Role() string {
	return roleOf(e.node)
}

func roleOf(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	if role := attr(n, "role"); role != "" {
		return role
	}
	switch n.DataAtom {
	case atom.Button:
		return "button"
	case atom.Form:
		return "form"
	case atom.Input:
		switch strings.ToLower(attr(n, "type")) {
		case "", "text", "email", "search", "tel", "url":
			return "textbox"
		case "checkbox":
			return "checkbox"
		case "radio":
			return "radio"
		case "submit", "button", "reset":
			return "button"
		}
	case atom.Textarea:
		return "textbox"
	}
	return ""
}

// accessibleName computes a reduced accessible name: aria-label, then the
// label associated through for/id, then the enclosing label, then the text of
// buttons.
func accessibleName(root, n *html.Node) string {
	if label := strings.TrimSpace(attr(n, "aria-label")); label != "" {
		return normalize(label)
	}
	if id := attr(n, "id"); id != "" {
		var found string
		walk(root, func(candidate *html.Node) bool {
			if candidate.DataAtom == atom.Label && attr(candidate, "for") == id {
				found = Element{node: candidate}.TextContent()
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	for parent := n.Parent; parent != nil; parent = parent.Parent {
		if parent.Type == html.ElementNode && parent.DataAtom == atom.Label {
			return Element{node: parent}.TextContent()
		}
	}
	if n.DataAtom == atom.Button {
		return Element{node: n}.TextContent()
	}
	if n.DataAtom == atom.Input && strings.EqualFold(attr(n, "type"), "submit") {
		return normalize(attr(n, "value"))
	}
	return ""
}

// ownText joins the direct text children of n, matching how visible text
// queries attribute text to the innermost element.
func ownText(n *html.Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return normalize(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}

// walk visits element nodes depth-first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && !visit(n) {
		return false
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
