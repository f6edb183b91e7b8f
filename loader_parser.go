package modelgen

import (
	internalLoader "github.com/goliatone/go-modelgen/internal/schema/loader"
	internalParser "github.com/goliatone/go-modelgen/internal/schema/parser"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	cfg := schema.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs the YAML/HCL schema parser.
func NewParser() schema.Parser {
	return internalParser.New()
}
