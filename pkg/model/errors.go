package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every *SchemaError unwraps to exactly one of these so callers
// can branch with errors.Is regardless of how deep the error was wrapped.
var (
	// ErrLexical reports a name, type specifier, or comment that fails its
	// grammar.
	ErrLexical = errors.New("lexical error")
	// ErrTyping reports a type specifier without exactly one underlying type.
	ErrTyping = errors.New("typing error")
	// ErrModifier reports an illegal or unrecognised modifier combination.
	ErrModifier = errors.New("modifier error")
	// ErrStructural reports a document whose shape is wrong: not a mapping,
	// wrong base type, unknown keys, or colliding member names.
	ErrStructural = errors.New("structural error")
	// ErrReference reports a name placeholder that does not match a declared
	// argument.
	ErrReference = errors.New("reference error")
)

// SchemaError describes why one schema record was rejected.
type SchemaError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Path locates the offending value inside the document, e.g. "adds[1].type".
	Path string
	// Value is the rejected input, when there is one.
	Value string
	// Detail explains the violated rule.
	Detail string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("model: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
		b.WriteString(": ")
	}
	b.WriteString(e.Detail)
	if e.Value != "" {
		fmt.Fprintf(&b, " (got %q)", e.Value)
	}
	return b.String()
}

// Unwrap exposes the error kind to errors.Is.
func (e *SchemaError) Unwrap() error {
	return e.Kind
}

func schemaErr(kind error, path, value, format string, args ...any) *SchemaError {
	return &SchemaError{
		Kind:   kind,
		Path:   path,
		Value:  value,
		Detail: fmt.Sprintf(format, args...),
	}
}

// withPathPrefix nests a SchemaError path under prefix ("adds[2]" + "type" →
// "adds[2].type"). Other errors are returned untouched.
func withPathPrefix(err error, prefix string) error {
	var se *SchemaError
	if !errors.As(err, &se) {
		return err
	}
	clone := *se
	switch {
	case clone.Path == "":
		clone.Path = prefix
	case prefix != "":
		clone.Path = prefix + "." + clone.Path
	}
	return &clone
}
