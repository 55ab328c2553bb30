package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/render"
	"github.com/goliatone/go-formwidget/pkg/render/template"
	"github.com/goliatone/go-formwidget/pkg/render/template/gotemplate"
)

const (
	formTemplate     = "templates/form.tmpl"
	documentTemplate = "templates/document.tmpl"
	defaultTitle     = "Form"
)

// Option configures the vanilla renderer.
type Option func(*config)

type config struct {
	templatesFS  fs.FS
	templates    template.TemplateRenderer
	theme        *theme.RendererConfig
	termsMarkup  string
	assetsPrefix string
}

// WithTemplatesFS overrides the template bundle used by the renderer. The
// bundle must provide templates/form.tmpl and templates/document.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templatesFS = files
		}
	}
}

// WithTemplateRenderer injects a preconfigured template engine.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithTheme applies a go-theme renderer configuration to the form chrome.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithTermsMarkup replaces the plain terms label with sanitized markup, for
// example a link to the terms document.
func WithTermsMarkup(markup string) Option {
	return func(cfg *config) {
		cfg.termsMarkup = markup
	}
}

// WithAssetsPrefix sets the URL prefix for the stylesheet and live script
// referenced by standalone documents.
func WithAssetsPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetsPrefix = prefix
	}
}

// Renderer produces an HTML form for a widget view.
type Renderer struct {
	templates template.TemplateRenderer
	theme     *theme.RendererConfig
	termsHTML string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templatesFS:  TemplatesFS(),
		assetsPrefix: "/assets/",
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	globals := map[string]any{
		"assets_prefix": cfg.assetsPrefix,
		"stylesheet":    StylesheetName,
		"live_script":   LiveScriptName,
		"error_class":   string(ClassError),
		"actions_class": string(ClassActions),
		"submit_label":  model.SubmitLabel,
	}

	templates := cfg.templates
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templatesFS),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template engine: %w", err)
		}
		templates = engine
	} else if err := templates.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("vanilla renderer: seed template globals: %w", err)
	}

	return &Renderer{
		templates: templates,
		theme:     cfg.theme,
		termsHTML: sanitizeLabelMarkup(cfg.termsMarkup),
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the form template against the view. Values and messages are
// escaped by the template engine.
func (r *Renderer) Render(_ context.Context, view model.View, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer not configured")
	}

	data := r.formContext(view, options)
	formHTML, err := r.templates.RenderTemplate(formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render form template: %w", err)
	}
	if !options.Document {
		return []byte(formHTML), nil
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = defaultTitle
	}
	page, err := r.templates.RenderTemplate(documentTemplate, map[string]any{
		"title":     title,
		"form_html": formHTML,
		"live":      options.LiveEndpoint != "",
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render document template: %w", err)
	}
	return []byte(page), nil
}

func (r *Renderer) formContext(view model.View, options render.RenderOptions) map[string]any {
	formID := FormID(view.ID)
	method := strings.ToLower(strings.TrimSpace(options.Method))
	if method == "" {
		method = "post"
	}

	hidden := make([]map[string]any, 0, len(options.Hidden))
	for _, field := range render.SortedHiddenFields(options.Hidden) {
		hidden = append(hidden, map[string]any{
			"name":  field.Name,
			"value": field.Value,
		})
	}

	form := map[string]any{
		"id":     formID,
		"class":  string(ClassForm),
		"method": method,
		"action": options.Action,
		"status": string(view.Status),
		"live":   options.LiveEndpoint,
		"hidden": hidden,
	}
	applyTheme(form, r.theme)

	fields := make([]map[string]any, 0, len(model.FieldOrder))
	for _, field := range model.Fields() {
		fields = append(fields, r.fieldContext(formID, field, view))
	}

	return map[string]any{
		"form":   form,
		"fields": fields,
	}
}

func (r *Renderer) fieldContext(formID string, field model.Field, view model.View) map[string]any {
	controlID := ControlID(formID, field.Name)
	message, invalid := view.Errors[field.Name]

	class := string(ClassField)
	if invalid {
		class += " " + string(ClassInvalid)
	}

	ctx := map[string]any{
		"name":        string(field.Name),
		"kind":        string(field.Kind),
		"id":          controlID,
		"label":       field.Label,
		"placeholder": field.Placeholder,
		"class":       class,
		"invalid":     invalid,
		"error":       message,
		"error_id":    controlID + "-error",
	}

	switch field.Kind {
	case model.ControlCheckbox:
		ctx["checked"] = view.State.Bool(field.Name)
		if field.Name == model.AgreeTermsField && r.termsHTML != "" {
			ctx["label_html"] = r.termsHTML
		}
	case model.ControlRadio:
		current := view.State.Text(field.Name)
		options := make([]map[string]any, 0, len(field.Options))
		for _, opt := range field.Options {
			options = append(options, map[string]any{
				"id":      controlID + "-" + opt.Value,
				"value":   opt.Value,
				"label":   opt.Label,
				"checked": opt.Value == current,
			})
		}
		ctx["options"] = options
	default:
		ctx["value"] = view.State.Text(field.Name)
	}
	return ctx
}

// FormID returns the DOM id of the form element for a widget instance.
func FormID(instanceID string) string {
	id := strings.TrimSpace(instanceID)
	if id == "" {
		return "fw"
	}
	return "fw-" + id
}

// ControlID returns the DOM id of a field control inside the form.
func ControlID(formID string, field model.FieldName) string {
	return formID + "-" + string(field)
}
