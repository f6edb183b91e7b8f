package model

import (
	"regexp"
	"strings"
)

// Lexical grammars shared by every entity constructor.
var (
	argumentNamePattern  = regexp.MustCompile(`^[a-z][a-z_]*$`)
	modelNamePattern     = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	variableNamePattern  = regexp.MustCompile(`^([a-zA-Z]|\{[a-z][a-z_]*\})([a-zA-Z0-9_.]|\{[a-z][a-z_]*\})*$`)
	typeSpecifierPattern = regexp.MustCompile(`^[A-Z][a-z0-9]*( ?[A-Z][a-z0-9]*)*$`)
	typeTokenPattern     = regexp.MustCompile(`[A-Z][a-z0-9]*`)
	commentPattern       = regexp.MustCompile(`^[^"\n\r\t]+$`)
)

// Grammar descriptions used in error messages.
const (
	argumentNameGrammar  = "lower-case letters and underscores, starting with a letter"
	modelNameGrammar     = "upper camel case alphanumeric"
	variableNameGrammar  = "dotted path of identifiers and {argument} placeholders"
	typeSpecifierGrammar = "capitalised alphanumeric tokens separated by single spaces or concatenated"
	commentGrammar       = `text without double quotes, tabs or line breaks that neither contains "*/" nor ends in a backslash`
)

// ValidArgumentName reports whether s is a legal constructor argument name.
func ValidArgumentName(s string) bool {
	return argumentNamePattern.MatchString(s)
}

// ValidModelName reports whether s is a legal model name.
func ValidModelName(s string) bool {
	return modelNamePattern.MatchString(s)
}

// ValidVariableName reports whether s is a legal parameter or state field
// name, e.g. "truth.{satellite}.orbit.r".
func ValidVariableName(s string) bool {
	return variableNamePattern.MatchString(s)
}

// ValidTypeSpecifier reports whether s passes the loose type specifier
// grammar. It does not check which tokens are present.
func ValidTypeSpecifier(s string) bool {
	return typeSpecifierPattern.MatchString(s)
}

// ValidComment reports whether s is a legal free-text comment. Comments are
// emitted inside "/** */" and "//" C++ comments, so "*/" and a trailing
// line-continuation backslash are rejected along with line breaks.
func ValidComment(s string) bool {
	return commentPattern.MatchString(s) &&
		!strings.Contains(s, "*/") &&
		!strings.HasSuffix(s, `\`)
}

func typeTokens(spec string) []string {
	return typeTokenPattern.FindAllString(spec, -1)
}
