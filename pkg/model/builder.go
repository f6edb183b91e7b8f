package model

import "github.com/goliatone/go-modelgen/pkg/schema"

// Builder converts decoded schema definitions into validated models.
type Builder interface {
	Build(def schema.Definition) (*Model, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	lenient bool
}

// WithLenientChecks disables the placeholder and member-name collision checks
// for every model the builder produces.
func WithLenientChecks(lenient bool) BuilderOption {
	return func(opts *builderOptions) {
		opts.lenient = lenient
	}
}

// NewBuilder returns the default Builder.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return builder{opts: cfg}
}

type builder struct {
	opts builderOptions
}

func (b builder) Build(def schema.Definition) (*Model, error) {
	return New(def, WithLenient(b.opts.lenient))
}
