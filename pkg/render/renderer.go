package render

import (
	"context"

	"github.com/goliatone/go-modelgen/pkg/model"
)

// Renderer turns a validated Model into an output artifact (C++ header,
// markdown catalog, ...).
type Renderer interface {
	Name() string
	// FileExtension is the conventional suffix for the artifact, e.g. ".hpp".
	FileExtension() string
	Render(ctx context.Context, m *model.Model, options RenderOptions) ([]byte, error)
}
