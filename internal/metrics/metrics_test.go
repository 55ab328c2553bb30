package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/submit"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// value returns the counter or gauge value of the series matching labels.
func value(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if !matches(metric, labels) {
				continue
			}
			if c := metric.GetCounter(); c != nil {
				return c.GetValue()
			}
			return metric.GetGauge().GetValue()
		}
	}
	return 0
}

func matches(metric *dto.Metric, labels map[string]string) bool {
	if len(metric.GetLabel()) != len(labels) {
		return false
	}
	for _, pair := range metric.GetLabel() {
		if labels[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}

func TestMetrics_RecordsWidgetActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg), WithNamespace("test"))

	w := widget.New(widget.WithRecorder(m))
	if err := w.HandleChange(model.InputEvent{Field: model.NameField, Kind: model.ControlText, Value: "Ada"}); err != nil {
		t.Fatalf("handle change: %v", err)
	}
	if err := w.HandleChange(model.InputEvent{Field: model.NameField, Kind: model.ControlText, Value: "Adam"}); err != nil {
		t.Fatalf("handle change: %v", err)
	}
	w.Submit(context.Background())

	if got := value(t, reg, "test_changes_total", map[string]string{"field": "name", "status": "invalid"}); got != 2 {
		t.Fatalf("expected 2 name changes, got %v", got)
	}
	if got := value(t, reg, "test_submissions_total", map[string]string{"status": "invalid", "result": "ok"}); got != 1 {
		t.Fatalf("expected 1 invalid submission, got %v", got)
	}
}

func TestMetrics_SubmitErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg))

	w := widget.New(
		widget.WithRecorder(m),
		widget.WithSubmitter(submit.SubmitterFunc(func(context.Context, model.FormState) error {
			return errors.New("down")
		})),
	)
	w.Submit(context.Background())

	if got := value(t, reg, "formwidget_submissions_total", map[string]string{"status": "invalid", "result": "error"}); got != 1 {
		t.Fatalf("expected 1 failed submission, got %v", got)
	}
}

func TestMetrics_LiveSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg))
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	if got := value(t, reg, "formwidget_live_sessions", nil); got != 1 {
		t.Fatalf("expected 1 live session, got %v", got)
	}
}
