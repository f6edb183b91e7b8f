package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Parser implements schema.Parser for YAML (and JSON) and HCL documents.
type Parser struct{}

// Ensure the implementation satisfies the public interface.
var _ schema.Parser = (*Parser)(nil)

// New constructs a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse decodes doc according to its format.
func (p *Parser) Parse(ctx context.Context, doc schema.Document) (schema.Definition, error) {
	if err := ctx.Err(); err != nil {
		return schema.Definition{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return schema.Definition{}, errors.New("schema parser: document payload is empty")
	}

	var (
		def schema.Definition
		err error
	)
	switch doc.Format() {
	case schema.FormatHCL:
		def, err = decodeHCL(doc.Location(), raw)
	default:
		def, err = decodeYAML(raw)
	}
	if err != nil {
		return schema.Definition{}, fmt.Errorf("schema parser: %s: %w", doc.Location(), err)
	}
	return def, nil
}

func structural(path, value, format string, args ...any) error {
	return &model.SchemaError{
		Kind:   model.ErrStructural,
		Path:   path,
		Value:  value,
		Detail: fmt.Sprintf(format, args...),
	}
}
