// Package cpp renders a Model as the C++ mixin header consumed by the
// simulation framework.
package cpp

import (
	"context"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/render"
)

// Name is the registry key of the header renderer.
const Name = "cpp"

// Renderer emits Model.Code unchanged.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the header renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) FileExtension() string {
	return ".hpp"
}

func (r *Renderer) Render(ctx context.Context, m *model.Model, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errNilModel
	}
	return []byte(m.Code()), nil
}
