package model

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Model is a validated model definition. It is immutable once built.
type Model struct {
	name    string
	base    string
	comment string
	args    []Argument
	params  []*Parameter
	adds    []*AddsStateField
	gets    []*GetsStateField

	codeOnce sync.Once
	code     string
}

// Option configures Model construction.
type Option func(*options)

type options struct {
	lenient bool
}

// WithLenient skips the cross-group checks: undeclared {arg} placeholders,
// colliding member names and names reserved by the generated class are
// accepted as they are.
func WithLenient(lenient bool) Option {
	return func(o *options) {
		o.lenient = lenient
	}
}

// New validates def and assembles a Model. Either every record is valid and a
// Model is returned, or nothing is.
func New(def schema.Definition, opts ...Option) (*Model, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if def.Name == "" {
		return nil, schemaErr(ErrLexical, "name", "", "model name is required")
	}
	if !ValidModelName(def.Name) {
		return nil, schemaErr(ErrLexical, "name", def.Name, "model name must be %s", modelNameGrammar)
	}
	if def.Type != schema.ModelBaseType {
		return nil, schemaErr(ErrStructural, "type", def.Type, "model type must be %q", schema.ModelBaseType)
	}
	if err := checkComment(def.Comment); err != nil {
		return nil, err
	}

	m := &Model{
		name:    def.Name,
		base:    def.Type,
		comment: def.Comment,
	}

	for i, raw := range def.Args {
		arg, err := NewArgument(raw)
		if err != nil {
			return nil, withPathPrefix(err, indexPath("args", i))
		}
		m.args = append(m.args, arg)
	}
	for i, rec := range def.Params {
		p, err := NewParameter(rec)
		if err != nil {
			return nil, withPathPrefix(err, indexPath(string(schema.GroupParams), i))
		}
		m.params = append(m.params, p)
	}
	for i, rec := range def.Adds {
		f, err := NewAddsStateField(rec)
		if err != nil {
			return nil, withPathPrefix(err, indexPath(string(schema.GroupAdds), i))
		}
		m.adds = append(m.adds, f)
	}
	for i, rec := range def.Gets {
		f, err := NewGetsStateField(rec)
		if err != nil {
			return nil, withPathPrefix(err, indexPath(string(schema.GroupGets), i))
		}
		m.gets = append(m.gets, f)
	}

	if !cfg.lenient {
		if err := m.checkReferences(); err != nil {
			return nil, err
		}
		if err := m.checkReservedNames(); err != nil {
			return nil, err
		}
		if err := m.checkMemberNames(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew panics when def is invalid. Useful for tests.
func MustNew(def schema.Definition, opts ...Option) *Model {
	m, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func indexPath(group string, i int) string {
	return fmt.Sprintf("%s[%d]", group, i)
}

// variables walks params, adds and gets in emission order.
func (m *Model) variables(fn func(path string, v variable)) {
	for i, p := range m.params {
		fn(indexPath(string(schema.GroupParams), i), p.variable)
	}
	for i, f := range m.adds {
		fn(indexPath(string(schema.GroupAdds), i), f.variable)
	}
	for i, f := range m.gets {
		fn(indexPath(string(schema.GroupGets), i), f.variable)
	}
}

func (m *Model) checkReferences() error {
	declared := make(map[string]bool, len(m.args))
	for _, a := range m.args {
		declared[a.Name()] = true
	}
	var err error
	m.variables(func(path string, v variable) {
		if err != nil {
			return
		}
		for _, ref := range v.name.Args() {
			if !declared[ref] {
				err = schemaErr(ErrReference, path+".name", v.name.String(), "placeholder {%s} does not name a declared argument", ref)
				return
			}
		}
	})
	return err
}

func (m *Model) checkMemberNames() error {
	owners := make(map[string]string)
	claim := func(member, path string) error {
		if prev, ok := owners[member]; ok {
			return schemaErr(ErrStructural, path+".name", member, "member name already declared by %s", prev)
		}
		owners[member] = path
		return nil
	}

	for i, a := range m.args {
		if err := claim(a.MemberName(), indexPath("args", i)); err != nil {
			return err
		}
	}
	var err error
	m.variables(func(path string, v variable) {
		if err == nil {
			err = claim(v.member, path)
		}
	})
	return err
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Base returns the declared base type token.
func (m *Model) Base() string { return m.base }

// Comment returns the model comment, if any.
func (m *Model) Comment() string { return m.comment }

// Args returns the constructor arguments in declaration order.
func (m *Model) Args() []Argument { return append([]Argument(nil), m.args...) }

// Params returns the parameters in declaration order.
func (m *Model) Params() []*Parameter { return append([]*Parameter(nil), m.params...) }

// Adds returns the owned state fields in declaration order.
func (m *Model) Adds() []*AddsStateField { return append([]*AddsStateField(nil), m.adds...) }

// Gets returns the consumed state fields in declaration order.
func (m *Model) Gets() []*GetsStateField { return append([]*GetsStateField(nil), m.gets...) }

// Members returns every member in constructor order: arguments, parameters,
// adds-fields, then gets-fields.
func (m *Model) Members() []Member {
	out := make([]Member, 0, len(m.args)+len(m.params)+len(m.adds)+len(m.gets))
	for _, a := range m.args {
		out = append(out, a)
	}
	for _, p := range m.params {
		out = append(out, p)
	}
	for _, f := range m.adds {
		out = append(out, f)
	}
	for _, f := range m.gets {
		out = append(out, f)
	}
	return out
}
