package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/openapi"
	"github.com/goliatone/go-formwidget/pkg/render"
	"github.com/goliatone/go-formwidget/pkg/validation"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

const maxPayloadBytes = 64 << 10

// handleForm renders a fresh widget. ?format=text selects the plain text
// renderer.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderWidget(w, r, s.newWidget(), http.StatusOK)
}

// handleFormPost is the no-JavaScript round trip: the posted fields become
// change events on a new widget, the widget submits, and the page is rendered
// again with the resulting errors.
func (s *Server) handleFormPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	fw := s.newWidget()
	for _, ev := range render.EventsFromForm(r.PostForm) {
		if err := fw.HandleChange(ev); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	sub := fw.Submit(r.Context())
	s.logger.InfoContext(r.Context(), "form posted",
		slog.String("widget", sub.ID),
		slog.String("instance", r.PostForm.Get(render.InstanceFieldName)),
		slog.String("status", string(sub.Status)),
	)
	status := http.StatusOK
	if sub.Err != nil {
		status = http.StatusBadGateway
	}
	s.renderWidget(w, r, fw, status)
}

func (s *Server) renderWidget(w http.ResponseWriter, r *http.Request, fw *widget.Widget, status int) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = s.htmlName
	}
	renderer, err := s.renderers.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := renderer.Render(r.Context(), fw.View(), render.RenderOptions{
		Action:       "/",
		Method:       http.MethodPost,
		Hidden:       render.MergeHiddenFields(nil, render.InstanceField(fw.ID())),
		LiveEndpoint: LivePath,
		Document:     true,
		Title:        s.title,
	})
	if err != nil {
		s.logger.ErrorContext(r.Context(), "render failed", slog.Any("error", err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// handleSubmissionCreate accepts a JSON FormState checked against the
// OpenAPI payload schema.
func (s *Server) handleSubmissionCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "read body: " + err.Error()})
		return
	}
	state, err := openapi.DecodePayload(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	stored := StoredSubmission{
		ID:     uuid.NewString(),
		State:  state,
		Status: model.StatusOf(validation.Validate(state)),
	}
	s.mu.Lock()
	s.submissions = append(s.submissions, stored)
	s.mu.Unlock()

	s.logger.InfoContext(r.Context(), "submission stored",
		slog.String("id", stored.ID),
		slog.String("status", string(stored.Status)),
	)
	writeJSON(w, http.StatusAccepted, stored)
}

func (s *Server) handleSubmissionList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Submissions())
}

// Submissions returns the payloads accepted by the JSON sink.
func (s *Server) Submissions() []StoredSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StoredSubmission{}, s.submissions...)
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	out, err := openapi.MarshalJSON(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "openapi document failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "openapi document unavailable"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
