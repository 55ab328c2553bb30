package render

// RenderOptions describe per-request data renderers can use without touching
// the widget state.
type RenderOptions struct {
	// Action is the URL the form posts to. Empty keeps the browser default
	// (the current URL).
	Action string
	// Method defaults to POST.
	Method string
	// Hidden fields are emitted as hidden inputs in sorted order. Use the
	// helpers in hidden.go to build them.
	Hidden map[string]string
	// LiveEndpoint, when set, wires the rendered form to a websocket endpoint
	// that streams change events and receives recomputed errors.
	LiveEndpoint string
	// Document wraps the form in a standalone HTML page.
	Document bool
	// Title is used for the document title when Document is set.
	Title string
}
