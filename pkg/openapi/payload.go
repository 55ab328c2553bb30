package openapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwidget/pkg/model"
)

// ErrInvalidPayload wraps every decode or schema failure.
var ErrInvalidPayload = errors.New("openapi: invalid payload")

var (
	payloadSchemaOnce sync.Once
	payloadSchema     *openapi3.Schema
)

func cachedPayloadSchema() *openapi3.Schema {
	payloadSchemaOnce.Do(func() {
		payloadSchema = PayloadSchema()
	})
	return payloadSchema
}

// DecodePayload parses data, checks it against PayloadSchema and returns the
// FormState it describes. Missing properties keep their zero values.
func DecodePayload(data []byte) (model.FormState, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.FormState{}, fmt.Errorf("%w: empty body", ErrInvalidPayload)
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return model.FormState{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := cachedPayloadSchema().VisitJSON(generic, openapi3.MultiErrors()); err != nil {
		return model.FormState{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var state model.FormState
	if err := json.Unmarshal(data, &state); err != nil {
		return model.FormState{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return state, nil
}
