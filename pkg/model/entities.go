package model

import (
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Member is anything that contributes a declaration and a constructor
// initializer to the generated class.
type Member interface {
	MemberName() string
	Declaration() string
	Constructor() string
}

var (
	_ Member = Argument{}
	_ Member = (*Parameter)(nil)
	_ Member = (*AddsStateField)(nil)
	_ Member = (*GetsStateField)(nil)
)

// Argument is a constructor argument retained as a private string member.
type Argument struct {
	name string
}

// NewArgument validates an argument name.
func NewArgument(name string) (Argument, error) {
	if name == "" {
		return Argument{}, schemaErr(ErrLexical, "", "", "argument name is required")
	}
	if !ValidArgumentName(name) {
		return Argument{}, schemaErr(ErrLexical, "", name, "argument name must be %s", argumentNameGrammar)
	}
	return Argument{name: name}, nil
}

func (a Argument) Name() string       { return a.name }
func (a Argument) MemberName() string { return argumentMember(a.name) }

func (a Argument) Declaration() string {
	return "std::string const " + a.MemberName() + ";"
}

func (a Argument) Constructor() string {
	return a.MemberName() + "(" + a.name + ")"
}

// FormalParameter is the constructor parameter that feeds the member.
func (a Argument) FormalParameter() string {
	return "std::string const &" + a.name
}

// variable holds what parameters and state fields share: a templated name,
// the raw type specifier, and the derived projections.
type variable struct {
	name       NameTemplate
	spec       string
	underlying UnderlyingType
	comment    string
	member     string
	str        string
}

func newVariable(rec schema.FieldRecord) (variable, typeSpec, error) {
	name, err := ParseName(rec.Name)
	if err != nil {
		return variable{}, typeSpec{}, err
	}
	if err := checkComment(rec.Comment); err != nil {
		return variable{}, typeSpec{}, err
	}
	spec, err := parseTypeSpecifier(rec.Type)
	if err != nil {
		return variable{}, typeSpec{}, err
	}
	return variable{
		name:       name,
		spec:       rec.Type,
		underlying: spec.underlying,
		comment:    rec.Comment,
		member:     name.MemberName(),
		str:        name.StringExpr(),
	}, spec, nil
}

func checkComment(comment string) error {
	if comment != "" && !ValidComment(comment) {
		return schemaErr(ErrLexical, "comment", comment, "comment must be %s", commentGrammar)
	}
	return nil
}

// Name returns the parsed field name.
func (v variable) Name() NameTemplate { return v.name }

// TypeSpecifier returns the type specifier as written in the schema.
func (v variable) TypeSpecifier() string { return v.spec }

func (v variable) Underlying() UnderlyingType { return v.underlying }
func (v variable) Comment() string            { return v.comment }
func (v variable) MemberName() string         { return v.member }

// StringExpr is the run-time string expression for the field path.
func (v variable) StringExpr() string { return v.str }

func (v variable) configLookup() string {
	return "config[" + v.str + "].template get<" + string(v.underlying) + ">()"
}

// Parameter is a read-only value pulled from the configuration at
// construction. It takes no modifiers.
type Parameter struct {
	variable
	declaration string
	constructor string
}

// NewParameter validates one params record.
func NewParameter(rec schema.FieldRecord) (*Parameter, error) {
	v, spec, err := newVariable(rec)
	if err != nil {
		return nil, err
	}
	if err := spec.requireModifiers(rec.Type); err != nil {
		return nil, err
	}
	return &Parameter{
		variable:    v,
		declaration: "Parameter<" + string(v.underlying) + "> const " + v.member + ";",
		constructor: v.member + "(" + v.configLookup() + ")",
	}, nil
}

func (p *Parameter) Declaration() string { return p.declaration }
func (p *Parameter) Constructor() string { return p.constructor }

// AddsKind selects how an adds-field is backed.
type AddsKind int

const (
	// AddsPlain fields start unseeded and are set by the model itself.
	AddsPlain AddsKind = iota
	// AddsInitialized fields are seeded from the configuration.
	AddsInitialized
	// AddsLazy fields are computed on demand by the derived model and reset
	// every step.
	AddsLazy
)

func (k AddsKind) String() string {
	switch k {
	case AddsInitialized:
		return "initialized"
	case AddsLazy:
		return "lazy"
	default:
		return "plain"
	}
}

// AddsStateField is a state field owned by the model and registered into the
// shared state.
type AddsStateField struct {
	variable
	kind        AddsKind
	writable    bool
	declaration string
	constructor string
	adds        string
	reset       string
}

// NewAddsStateField validates one adds record.
func NewAddsStateField(rec schema.FieldRecord) (*AddsStateField, error) {
	v, spec, err := newVariable(rec)
	if err != nil {
		return nil, err
	}
	if err := spec.requireModifiers(rec.Type, ModifierInitialized, ModifierLazy, ModifierWritable); err != nil {
		return nil, err
	}

	f := &AddsStateField{variable: v, writable: spec.has(ModifierWritable)}
	switch {
	case spec.has(ModifierLazy):
		if spec.has(ModifierInitialized) || f.writable {
			return nil, schemaErr(ErrModifier, "type", rec.Type, "a Lazy field cannot also be Initialized or Writable")
		}
		f.kind = AddsLazy
	case spec.has(ModifierInitialized):
		f.kind = AddsInitialized
	}

	switch f.kind {
	case AddsLazy:
		f.declaration = "StateFieldLazy<" + string(v.underlying) + "> " + v.member + ";"
		f.constructor = v.member + "(" + v.str + ", std::bind(&D::" + v.member + ", &derived()))"
		f.reset = v.member + ".reset();"
	case AddsInitialized:
		f.declaration = "StateFieldValued<" + string(v.underlying) + "> " + v.member + ";"
		f.constructor = v.member + "(" + v.str + ", " + v.configLookup() + ")"
	default:
		f.declaration = "StateFieldValued<" + string(v.underlying) + "> " + v.member + ";"
		f.constructor = v.member + "(" + v.str + ")"
	}
	if f.writable {
		f.adds = "state.add_writable(&" + v.member + ");"
	} else {
		f.adds = "state.add(&" + v.member + ");"
	}
	return f, nil
}

func (f *AddsStateField) Kind() AddsKind      { return f.kind }
func (f *AddsStateField) Writable() bool      { return f.writable }
func (f *AddsStateField) Lazy() bool          { return f.kind == AddsLazy }
func (f *AddsStateField) Initialized() bool   { return f.kind == AddsInitialized }
func (f *AddsStateField) Declaration() string { return f.declaration }
func (f *AddsStateField) Constructor() string { return f.constructor }

// AddsExpression registers the field with the shared state.
func (f *AddsStateField) AddsExpression() string { return f.adds }

// ResetExpression invalidates a lazy field. It is empty for other kinds.
func (f *AddsStateField) ResetExpression() string { return f.reset }

// GetsStateField is a state field resolved by name from the shared state.
type GetsStateField struct {
	variable
	writable    bool
	declaration string
	gets        string
}

// NewGetsStateField validates one gets record. Only Writable is accepted.
func NewGetsStateField(rec schema.FieldRecord) (*GetsStateField, error) {
	v, spec, err := newVariable(rec)
	if err != nil {
		return nil, err
	}
	if err := spec.requireModifiers(rec.Type, ModifierWritable); err != nil {
		return nil, err
	}

	f := &GetsStateField{variable: v, writable: spec.has(ModifierWritable)}
	t := string(v.underlying)
	if f.writable {
		f.declaration = "StateFieldWritable<" + t + "> *" + v.member + ";"
		f.gets = v.member + " = get_writable_field<" + t + ">(state, " + v.str + ");"
	} else {
		f.declaration = "StateField<" + t + "> const *" + v.member + ";"
		f.gets = v.member + " = get_field<" + t + ">(state, " + v.str + ");"
	}
	return f, nil
}

func (f *GetsStateField) Writable() bool      { return f.writable }
func (f *GetsStateField) Declaration() string { return f.declaration }
func (f *GetsStateField) Constructor() string { return f.member + "(nullptr)" }

// GetsExpression resolves the field pointer from the shared state.
func (f *GetsStateField) GetsExpression() string { return f.gets }
