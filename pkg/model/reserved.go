package model

// generatedIdentifiers are names the emitted class already uses. A member with
// one of these names hides a generated method or the state parameter of the
// registration methods.
var generatedIdentifiers = setOf("derived", "add_fields", "get_fields", "step", "state")

// constructorIdentifiers are formal parameter names of the generated
// constructor that arguments may not reuse.
var constructorIdentifiers = setOf("config")

var cppKeywords = setOf(
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
	"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires", "return",
	"short", "signed", "sizeof", "static", "static_assert", "static_cast",
	"struct", "switch", "template", "this", "thread_local", "throw", "true",
	"try", "typedef", "typeid", "typename", "union", "unsigned", "using",
	"virtual", "void", "volatile", "wchar_t", "while", "xor", "xor_eq",
)

func setOf(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// checkReservedNames rejects arguments and members whose generated
// identifiers clash with the class scaffolding, the model or base class
// names, or C++ keywords.
func (m *Model) checkReservedNames() error {
	for i, a := range m.args {
		switch {
		case constructorIdentifiers[a.Name()]:
			return schemaErr(ErrStructural, indexPath("args", i), a.Name(),
				"argument %q clashes with a constructor parameter of the generated class", a.Name())
		case cppKeywords[a.Name()]:
			return schemaErr(ErrStructural, indexPath("args", i), a.Name(),
				"argument %q is a C++ keyword", a.Name())
		}
	}

	var err error
	m.variables(func(path string, v variable) {
		if err != nil {
			return
		}
		switch member := v.member; {
		case generatedIdentifiers[member]:
			err = schemaErr(ErrStructural, path+".name", member,
				"member name %q clashes with an identifier of the generated class", member)
		case member == m.name || member == m.base:
			err = schemaErr(ErrStructural, path+".name", member,
				"member name %q clashes with the class name %s or its base %s", member, m.name, m.base)
		case cppKeywords[member]:
			err = schemaErr(ErrStructural, path+".name", member, "member name %q is a C++ keyword", member)
		}
	})
	return err
}
