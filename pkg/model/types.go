package model

import "strings"

// UnderlyingType is the numeric kind backing a parameter or state field.
type UnderlyingType string

const (
	TypeInteger UnderlyingType = "Integer"
	TypeReal    UnderlyingType = "Real"
	TypeVector2 UnderlyingType = "Vector2"
	TypeVector3 UnderlyingType = "Vector3"
	TypeVector4 UnderlyingType = "Vector4"
)

// UnderlyingTypes lists every underlying type in declaration order.
func UnderlyingTypes() []UnderlyingType {
	return []UnderlyingType{TypeInteger, TypeReal, TypeVector2, TypeVector3, TypeVector4}
}

func (t UnderlyingType) valid() bool {
	for _, known := range UnderlyingTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Modifier annotates a state field type specifier.
type Modifier string

const (
	ModifierInitialized Modifier = "Initialized"
	ModifierLazy        Modifier = "Lazy"
	ModifierWritable    Modifier = "Writable"
)

// Modifiers lists every modifier in canonical order.
func Modifiers() []Modifier {
	return []Modifier{ModifierInitialized, ModifierLazy, ModifierWritable}
}

func (m Modifier) valid() bool {
	for _, known := range Modifiers() {
		if m == known {
			return true
		}
	}
	return false
}

// typeSpec is a type specifier split into its underlying type, recognised
// modifiers, and anything left over.
type typeSpec struct {
	underlying UnderlyingType
	modifiers  map[Modifier]bool
	leftovers  []string
}

func (s typeSpec) has(m Modifier) bool {
	return s.modifiers[m]
}

// parseTypeSpecifier runs the grammar check, underlying-type extraction, and
// modifier extraction in that order. Entity constructors decide which
// modifiers they accept.
func parseTypeSpecifier(spec string) (typeSpec, error) {
	if spec == "" {
		return typeSpec{}, schemaErr(ErrLexical, "type", "", "type specifier is required")
	}
	if !ValidTypeSpecifier(spec) {
		return typeSpec{}, schemaErr(ErrLexical, "type", spec, "type specifier must be %s", typeSpecifierGrammar)
	}

	parsed := typeSpec{modifiers: make(map[Modifier]bool)}
	var (
		underlying []string
		repeated   Modifier
	)
	for _, token := range typeTokens(spec) {
		if UnderlyingType(token).valid() {
			underlying = append(underlying, token)
			parsed.underlying = UnderlyingType(token)
			continue
		}
		if m := Modifier(token); m.valid() {
			if parsed.modifiers[m] && repeated == "" {
				repeated = m
			}
			parsed.modifiers[m] = true
			continue
		}
		parsed.leftovers = append(parsed.leftovers, token)
	}

	if len(underlying) != 1 {
		detail := "no underlying type"
		if len(underlying) > 1 {
			detail = "multiple underlying types (" + strings.Join(underlying, ", ") + ")"
		}
		return typeSpec{}, schemaErr(ErrTyping, "type", spec,
			"expected exactly one underlying type of %s, found %s", joinTypes(UnderlyingTypes()), detail)
	}
	if repeated != "" {
		return typeSpec{}, schemaErr(ErrModifier, "type", spec, "modifier %s is repeated", repeated)
	}
	return parsed, nil
}

// requireModifiers rejects leftover tokens and modifiers outside allowed.
func (s typeSpec) requireModifiers(spec string, allowed ...Modifier) error {
	permitted := make(map[Modifier]bool, len(allowed))
	for _, m := range allowed {
		permitted[m] = true
	}
	unsupported := append([]string(nil), s.leftovers...)
	for _, m := range Modifiers() {
		if s.modifiers[m] && !permitted[m] {
			unsupported = append(unsupported, string(m))
		}
	}
	if len(unsupported) == 0 {
		return nil
	}
	if len(allowed) == 0 {
		return schemaErr(ErrModifier, "type", spec, "modifiers are not allowed here, found %s", strings.Join(unsupported, ", "))
	}
	return schemaErr(ErrModifier, "type", spec, "unsupported modifiers %s (allowed: %s)",
		strings.Join(unsupported, ", "), joinModifiers(allowed))
}

func joinTypes(types []UnderlyingType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinModifiers(mods []Modifier) string {
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
