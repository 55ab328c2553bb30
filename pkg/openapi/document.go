package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwidget/pkg/model"
)

const (
	// SubmissionsPath is the JSON sink path described by the document.
	SubmissionsPath = "/api/submissions"
	// FormStateSchemaName is the component name of the payload schema.
	FormStateSchemaName = "FormState"

	documentVersion = "1.0.0"
)

// Option configures the generated document.
type Option func(*config)

type config struct {
	title   string
	version string
	servers []string
}

// WithTitle sets info.title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title != "" {
			cfg.title = title
		}
	}
}

// WithVersion sets info.version.
func WithVersion(version string) Option {
	return func(cfg *config) {
		if version != "" {
			cfg.version = version
		}
	}
}

// WithServer appends a server URL.
func WithServer(url string) Option {
	return func(cfg *config) {
		if url != "" {
			cfg.servers = append(cfg.servers, url)
		}
	}
}

// PayloadSchema returns the schema of a submitted FormState. Property types
// and the gender choices are enforced; field content rules are not, since a
// submission may carry an invalid form.
func PayloadSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty(string(model.NameField), openapi3.NewStringSchema()).
		WithProperty(string(model.EmailField), openapi3.NewStringSchema()).
		WithProperty(string(model.AgreeTermsField), openapi3.NewBoolSchema()).
		WithProperty(string(model.GenderField), openapi3.NewStringSchema().
			WithEnum(model.GenderUnset, model.GenderMale, model.GenderFemale))
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	schema.Title = FormStateSchemaName
	return schema
}

// Build assembles and validates the document.
func Build(ctx context.Context, options ...Option) (*openapi3.T, error) {
	cfg := config{
		title:   "Form widget submissions",
		version: documentVersion,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	payload := PayloadSchema()
	ref := &openapi3.SchemaRef{Ref: "#/components/schemas/" + FormStateSchemaName, Value: payload}

	operation := &openapi3.Operation{
		OperationID: "createSubmission",
		Summary:     "Accept a submitted form snapshot",
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchemaRef(ref),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusAccepted, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Submission accepted"),
			}),
			openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Payload does not match the FormState schema"),
			}),
		),
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.version,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(SubmissionsPath, &openapi3.PathItem{Post: operation}),
		),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				FormStateSchemaName: openapi3.NewSchemaRef("", payload),
			},
		},
	}
	for _, url := range cfg.servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: url})
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// MarshalJSON builds the document and encodes it as indented JSON.
func MarshalJSON(ctx context.Context, options ...Option) ([]byte, error) {
	doc, err := Build(ctx, options...)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode json: %w", err)
	}
	return out, nil
}

// MarshalYAML builds the document and encodes it as YAML.
func MarshalYAML(ctx context.Context, options ...Option) ([]byte, error) {
	raw, err := MarshalJSON(ctx, options...)
	if err != nil {
		return nil, err
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("openapi: decode json: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode yaml: %w", err)
	}
	return out, nil
}
