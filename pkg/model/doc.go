// Package model validates decoded schema definitions and emits the generated
// C++ header for each one.
//
// A definition becomes a Model in a single pass: every name, type specifier
// and comment is checked against its grammar, each type specifier must carry
// exactly one underlying type (Integer, Real, Vector2, Vector3, Vector4) and a
// legal modifier set, and, unless the lenient option is used, every {arg}
// placeholder must name a declared argument and no two members may share a
// generated identifier. Failures are *SchemaError values whose Kind is one of
// ErrLexical, ErrTyping, ErrModifier, ErrStructural or ErrReference.
//
// Model.Code renders the header that derives from the framework's Model base
// as a template over its final derived class. Members appear in the order
// arguments, parameters, adds-fields, gets-fields and, inside each group, in
// schema order, so identical input always yields identical output.
package model
