package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// ErrUnexpectedStatus is returned when the endpoint answers outside 2xx.
var ErrUnexpectedStatus = errors.New("submit: unexpected status")

// HTTPOption configures the HTTP submitter.
type HTTPOption func(*httpSubmitter)

// WithClient overrides the HTTP client. The default client times out after
// ten seconds.
func WithClient(client *http.Client) HTTPOption {
	return func(s *httpSubmitter) {
		if client != nil {
			s.client = client
		}
	}
}

// WithHeader adds a request header to every submission.
func WithHeader(name, value string) HTTPOption {
	return func(s *httpSubmitter) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		s.headers.Set(name, value)
	}
}

type httpSubmitter struct {
	endpoint string
	client   *http.Client
	headers  http.Header
}

// HTTP returns a Submitter that POSTs the snapshot as JSON to endpoint.
func HTTP(endpoint string, options ...HTTPOption) Submitter {
	s := &httpSubmitter{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: 10 * time.Second},
		headers:  make(http.Header),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

func (s *httpSubmitter) Submit(ctx context.Context, state model.FormState) error {
	if s.endpoint == "" {
		return errors.New("submit: endpoint is required")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("submit: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("submit: build request: %w", err)
	}
	for name, values := range s.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit: post %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, s.endpoint, resp.StatusCode)
	}
	return nil
}
