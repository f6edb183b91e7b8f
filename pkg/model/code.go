package model

import "strings"

// Includes lists the framework headers every generated class depends on.
var Includes = []string{
	"psim/core/configuration.hpp",
	"psim/core/model.hpp",
	"psim/core/parameter.hpp",
	"psim/core/state.hpp",
	"psim/core/state_field_lazy.hpp",
	"psim/core/state_field_valued.hpp",
	"psim/core/types.hpp",
}

// GuardMacro returns the include guard used for the generated header.
func (m *Model) GuardMacro() string {
	return "PSIM_AUTOCODED_" + strings.ToUpper(m.name) + "_HPP_"
}

// Code returns the generated C++ header. It is built on first use and cached.
func (m *Model) Code() string {
	m.codeOnce.Do(func() {
		m.code = m.emit()
	})
	return m.code
}

type emitter struct {
	strings.Builder
}

func (e *emitter) line(parts ...string) {
	for _, p := range parts {
		e.WriteString(p)
	}
	e.WriteByte('\n')
}

func (e *emitter) declaration(comment, decl string) {
	if comment != "" {
		e.line("  // ", comment)
	}
	e.line("  ", decl)
}

func (m *Model) emit() string {
	var e emitter

	e.line("/* This file has been autogenerated. Do not edit manually. */")
	e.line()
	e.line("#ifndef ", m.GuardMacro())
	e.line("#define ", m.GuardMacro())
	e.line()
	for _, inc := range Includes {
		e.line("#include <", inc, ">")
	}
	e.line()
	e.line("#include <functional>")
	e.line()
	e.line("namespace psim {")
	e.line()
	if m.comment != "" {
		e.line("/** ", m.comment, " */")
	}
	e.line("template <class D>")
	e.line("class ", m.name, " : public ", m.base, " {")

	e.line(" private:")
	for _, a := range m.args {
		e.line("  ", a.Declaration())
	}
	e.line()
	e.line("  D const &derived() const {")
	e.line("    return static_cast<D const &>(*this);")
	e.line("  }")
	e.line()
	e.line("  D &derived() {")
	e.line("    return static_cast<D &>(*this);")
	e.line("  }")
	e.line()

	e.line(" protected:")
	if len(m.params) > 0 {
		for _, p := range m.params {
			e.declaration(p.comment, p.Declaration())
		}
		e.line()
	}
	if len(m.adds) > 0 {
		for _, f := range m.adds {
			e.declaration(f.comment, f.Declaration())
		}
		e.line()
	}
	if len(m.gets) > 0 {
		for _, f := range m.gets {
			e.declaration(f.comment, f.Declaration())
		}
		e.line()
	}

	e.line(" public:")
	e.line("  ", m.name, "() = delete;")
	e.line()
	e.line("  virtual ~", m.name, "() = default;")
	e.line()
	e.WriteString("  " + m.name + "(Configuration const &config")
	for _, a := range m.args {
		e.WriteString(", " + a.FormalParameter())
	}
	e.line(")")
	e.WriteString("  : " + m.base + "()")
	for _, member := range m.Members() {
		e.WriteString(",\n    " + member.Constructor())
	}
	e.line()
	e.line("  { }")
	e.line()

	e.line("  virtual void add_fields(State &state) override {")
	e.line("    this->", m.base, "::add_fields(state);")
	e.line()
	for _, f := range m.adds {
		e.line("    ", f.AddsExpression())
	}
	e.line("  }")
	e.line()

	e.line("  virtual void get_fields(State &state) override {")
	e.line("    this->", m.base, "::get_fields(state);")
	e.line()
	for _, f := range m.gets {
		e.line("    ", f.GetsExpression())
	}
	e.line("  }")
	e.line()

	e.line("  virtual void step() override {")
	e.line("    this->", m.base, "::step();")
	e.line()
	for _, f := range m.adds {
		if f.Lazy() {
			e.line("    ", f.ResetExpression())
		}
	}
	e.line("  }")
	e.line("};")
	e.line("} // namespace psim")
	e.line()
	e.line("#endif")

	return e.String()
}
