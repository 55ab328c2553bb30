package testsupport

import (
	"context"
	"sync"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// RecordingSubmitter captures every submitted FormState. Err, when set, is
// returned from each call.
type RecordingSubmitter struct {
	Err error

	mu    sync.Mutex
	calls []model.FormState
}

func (r *RecordingSubmitter) Submit(_ context.Context, state model.FormState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, state)
	return r.Err
}

// Calls returns the submitted states in order.
func (r *RecordingSubmitter) Calls() []model.FormState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.FormState(nil), r.calls...)
}
