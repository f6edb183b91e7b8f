package modelgen

import (
	"context"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/orchestrator"
	"github.com/goliatone/go-modelgen/pkg/render"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// RenderOptions aliases render.RenderOptions for callers of the facade.
type RenderOptions = render.RenderOptions

// SchemaError aliases model.SchemaError so callers can inspect failures
// without importing the model package.
type SchemaError = model.SchemaError

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the schema document, builds the model and renders it with
// the named renderer. An empty name selects the C++ header renderer.
func Generate(ctx context.Context, source schema.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a pre-loaded document, bypassing the loader.
func GenerateFromDocument(ctx context.Context, doc schema.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// Compile turns the schema document at source into a C++ header at
// outputPath. Nothing is written unless the whole pipeline succeeds.
func Compile(ctx context.Context, source schema.Source, outputPath string, options ...orchestrator.Option) error {
	return orchestrator.New(options...).Compile(ctx, orchestrator.Request{Source: source}, outputPath)
}
