// Package catalog renders a Model as a markdown table of its parameters and
// state fields, for documentation sites and code review.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/render"
	rendertemplate "github.com/goliatone/go-modelgen/pkg/render/template"
	"github.com/goliatone/go-modelgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Name is the registry key of the catalog renderer.
const Name = "catalog"

const templateName = "catalog"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// catalog.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the markdown catalog.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the catalog renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("catalog renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, policy: bluemonday.StrictPolicy()}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) FileExtension() string {
	return ".md"
}

func (r *Renderer) Render(ctx context.Context, m *model.Model, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("catalog renderer: model is nil")
	}
	if r.templates == nil {
		return nil, errors.New("catalog renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(templateName, r.viewData(m, options))
	if err != nil {
		return nil, fmt.Errorf("catalog renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) viewData(m *model.Model, options render.RenderOptions) map[string]any {
	args := make([]any, 0, len(m.Args()))
	for _, a := range m.Args() {
		args = append(args, a.Name())
	}

	var fields []any
	field := func(group schema.Group, name, member, spec, comment string) {
		fields = append(fields, map[string]any{
			"group":   string(group),
			"name":    name,
			"member":  member,
			"type":    spec,
			"comment": r.policy.Sanitize(comment),
		})
	}
	for _, p := range m.Params() {
		field(schema.GroupParams, p.Name().String(), p.MemberName(), p.TypeSpecifier(), p.Comment())
	}
	for _, f := range m.Adds() {
		field(schema.GroupAdds, f.Name().String(), f.MemberName(), f.TypeSpecifier(), f.Comment())
	}
	for _, f := range m.Gets() {
		field(schema.GroupGets, f.Name().String(), f.MemberName(), f.TypeSpecifier(), f.Comment())
	}

	return map[string]any{
		"model": map[string]any{
			"name":    m.Name(),
			"comment": r.policy.Sanitize(m.Comment()),
			"args":    args,
		},
		"source": options.Source,
		"fields": fields,
	}
}
