package model

import "strings"

// Segment is one piece of a NameTemplate: either literal text or a reference
// to a constructor argument.
type Segment struct {
	Literal string
	Arg     string
}

// IsArg reports whether the segment is an {argument} placeholder.
func (s Segment) IsArg() bool {
	return s.Arg != ""
}

// NameTemplate is a parsed field name such as "sensor.{index}.temp".
type NameTemplate struct {
	raw      string
	segments []Segment
}

// ParseName validates a field name against the variable grammar and splits it
// into literal and placeholder segments.
func ParseName(name string) (NameTemplate, error) {
	if name == "" {
		return NameTemplate{}, schemaErr(ErrLexical, "name", "", "name is required")
	}
	if !ValidVariableName(name) {
		return NameTemplate{}, schemaErr(ErrLexical, "name", name, "name must be a %s", variableNameGrammar)
	}

	var (
		segments []Segment
		literal  strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{Literal: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(name); i++ {
		if name[i] != '{' {
			literal.WriteByte(name[i])
			continue
		}
		end := strings.IndexByte(name[i:], '}')
		flush()
		segments = append(segments, Segment{Arg: name[i+1 : i+end]})
		i += end
	}
	flush()

	return NameTemplate{raw: name, segments: segments}, nil
}

// String returns the name as written in the schema.
func (t NameTemplate) String() string {
	return t.raw
}

// Segments returns a copy of the parsed segments.
func (t NameTemplate) Segments() []Segment {
	return append([]Segment(nil), t.segments...)
}

// Args lists the argument names referenced by placeholders, in order of
// appearance. Repeated references are reported once.
func (t NameTemplate) Args() []string {
	var (
		out  []string
		seen = make(map[string]bool)
	)
	for _, seg := range t.segments {
		if seg.IsArg() && !seen[seg.Arg] {
			seen[seg.Arg] = true
			out = append(out, seg.Arg)
		}
	}
	return out
}

// MemberName strips placeholder braces and replaces dots with underscores.
func (t NameTemplate) MemberName() string {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.IsArg() {
			b.WriteString(seg.Arg)
			continue
		}
		b.WriteString(strings.ReplaceAll(seg.Literal, ".", "_"))
	}
	return b.String()
}

// StringExpr renders the name as a string concatenation expression where each
// placeholder references the matching argument member, e.g.
// "sensor."+_index+".temp".
func (t NameTemplate) StringExpr() string {
	parts := make([]string, 0, len(t.segments))
	for _, seg := range t.segments {
		if seg.IsArg() {
			parts = append(parts, argumentMember(seg.Arg))
			continue
		}
		parts = append(parts, `"`+seg.Literal+`"`)
	}
	return strings.Join(parts, "+")
}

func argumentMember(name string) string {
	return "_" + name
}
