package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-modelgen/internal/atomicfile"
	internalLoader "github.com/goliatone/go-modelgen/internal/schema/loader"
	internalParser "github.com/goliatone/go-modelgen/internal/schema/parser"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/render"
	"github.com/goliatone/go-modelgen/pkg/renderers/catalog"
	"github.com/goliatone/go-modelgen/pkg/renderers/cpp"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

const defaultRendererName = cpp.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom schema loader.
func WithLoader(loader schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom schema parser.
func WithParser(parser schema.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom model builder. It takes precedence over
// WithLenient.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithLenient configures the default builder to skip the placeholder and
// member-name collision checks.
func WithLenient(lenient bool) Option {
	return func(o *Orchestrator) {
		o.lenient = lenient
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger routes stage logs to logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from schema document to rendered
// artifact. Missing dependencies fall back to the built-in implementations.
type Orchestrator struct {
	loader          schema.Loader
	parser          schema.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	lenient         bool
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one compilation.
type Request struct {
	// Source identifies where the schema document lives. Optional when
	// Document is supplied.
	Source schema.Source

	// Document bypasses the loader when the payload is already in memory.
	Document *schema.Document

	// Renderer names the renderer to use. Empty selects the default.
	Renderer string

	// RenderOptions is passed to the renderer. Source is filled in from the
	// document location when left empty.
	RenderOptions render.RenderOptions
}

// Build loads, parses and validates the schema document without rendering.
func (o *Orchestrator) Build(ctx context.Context, req Request) (*model.Model, error) {
	m, _, err := o.build(ctx, req)
	return m, err
}

func (o *Orchestrator) build(ctx context.Context, req Request) (*model.Model, schema.Document, error) {
	if ctx == nil {
		return nil, schema.Document{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, schema.Document{}, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, schema.Document{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, schema.Document{}, err
	}
	o.logger.Debug("schema loaded", "location", doc.Location(), "format", doc.Format(), "bytes", len(doc.Raw()))

	def, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return nil, schema.Document{}, fmt.Errorf("orchestrator: parse schema: %w", err)
	}

	m, err := o.builder.Build(def)
	if err != nil {
		return nil, schema.Document{}, fmt.Errorf("orchestrator: build model %s: %w", doc.Location(), err)
	}
	o.logger.Debug("model built",
		"model", m.Name(),
		"args", len(m.Args()),
		"params", len(m.Params()),
		"adds", len(m.Adds()),
		"gets", len(m.Gets()),
	)
	return m, doc, nil
}

// Generate executes the loader → parser → model builder → renderer sequence and
// returns the rendered bytes (a C++ header for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	m, doc, err := o.build(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Source == "" {
		opts.Source = doc.Location()
	}
	output, err := renderer.Render(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug("artifact rendered", "model", m.Name(), "renderer", renderer.Name(), "bytes", len(output))
	return output, nil
}

// Compile generates the artifact and writes it to outputPath. The output is
// only replaced after the whole pipeline succeeded, so a failing run leaves
// any previous artifact in place.
func (o *Orchestrator) Compile(ctx context.Context, req Request, outputPath string) error {
	if outputPath == "" {
		return errors.New("orchestrator: output path is required")
	}
	output, err := o.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := atomicfile.Write(outputPath, output, 0o644); err != nil {
		return fmt.Errorf("orchestrator: write %s: %w", outputPath, err)
	}
	o.logger.Debug("artifact written", "path", outputPath, "bytes", len(output))
	return nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (schema.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return schema.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return schema.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}
	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

// Registry exposes the renderer registry, e.g. to list renderer names.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.loader == nil {
		o.loader = internalLoader.New(schema.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New()
	}
	if o.builder == nil {
		o.builder = model.NewBuilder(model.WithLenientChecks(o.lenient))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(cpp.New())
		renderer, err := catalog.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: catalog renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
