package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// Frame types exchanged on the live channel.
const (
	FrameChange    = "change"
	FrameSubmit    = "submit"
	FrameErrors    = "errors"
	FrameSubmitted = "submitted"
	FrameRejected  = "rejected"
)

const writeTimeout = 5 * time.Second

// InboundFrame is sent by the browser. Change frames carry an InputEvent.
type InboundFrame struct {
	Type    string            `json:"type"`
	Field   model.FieldName   `json:"field,omitempty"`
	Kind    model.ControlKind `json:"kind,omitempty"`
	Value   string            `json:"value,omitempty"`
	Checked bool              `json:"checked,omitempty"`
}

// OutboundFrame is pushed to the browser after every applied change, every
// submit and every rejected frame.
type OutboundFrame struct {
	Type   string           `json:"type"`
	Errors model.ErrorState `json:"errors"`
	Status model.Status     `json:"status"`
	Error  string           `json:"error,omitempty"`
}

// handleLive gives the connection its own widget. Frames are read and
// answered on this goroutine only, so the widget and the connection writer
// are never used concurrently.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	s.metrics.SessionOpened()
	defer s.metrics.SessionClosed()

	fw := s.newWidget()
	logger := s.logger.With(slog.String("widget", fw.ID()))
	logger.DebugContext(r.Context(), "live session opened")

	send := func(frame OutboundFrame) bool {
		if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			logger.DebugContext(r.Context(), "live write deadline failed", slog.Any("error", err))
			return false
		}
		if err := conn.WriteJSON(frame); err != nil {
			logger.DebugContext(r.Context(), "live write failed", slog.Any("error", err))
			return false
		}
		return true
	}

	var writeFailed bool
	cancel := fw.OnChange(func(view model.View) {
		if !send(OutboundFrame{Type: FrameErrors, Errors: view.Errors, Status: view.Status}) {
			writeFailed = true
		}
	})
	defer cancel()

	view := fw.View()
	if !send(OutboundFrame{Type: FrameErrors, Errors: view.Errors, Status: view.Status}) {
		return
	}

	for !writeFailed {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WarnContext(r.Context(), "live read failed", slog.Any("error", err))
			}
			break
		}

		var frame InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			current := fw.View()
			if !send(OutboundFrame{Type: FrameRejected, Errors: current.Errors, Status: current.Status, Error: "malformed frame: " + err.Error()}) {
				writeFailed = true
			}
			continue
		}

		switch frame.Type {
		case FrameChange:
			ev := model.InputEvent{Field: frame.Field, Kind: frame.Kind, Value: frame.Value, Checked: frame.Checked}
			if err := fw.HandleChange(ev); err != nil {
				current := fw.View()
				if !send(OutboundFrame{Type: FrameRejected, Errors: current.Errors, Status: current.Status, Error: err.Error()}) {
					writeFailed = true
				}
			}
		case FrameSubmit:
			sub := fw.Submit(r.Context())
			out := OutboundFrame{Type: FrameSubmitted, Errors: sub.Errors, Status: sub.Status}
			if sub.Err != nil {
				out.Error = sub.Err.Error()
			}
			if !send(out) {
				writeFailed = true
			}
		default:
			current := fw.View()
			if !send(OutboundFrame{Type: FrameRejected, Errors: current.Errors, Status: current.Status, Error: "unknown frame type " + frame.Type}) {
				writeFailed = true
			}
		}
	}
	logger.DebugContext(r.Context(), "live session closed")
}
