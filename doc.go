// Package modelgen compiles declarative simulation model schemas into C++
// class headers.
//
// A schema document (YAML, JSON or HCL) names a model, its constructor
// arguments, the parameters it reads from configuration, and the state fields
// it adds to or gets from the shared state store. Generate and Compile run the
// loader, parser, model builder and renderer in one call:
//
//	err := modelgen.Compile(ctx, schema.SourceFromFile("estimator.yml"), "estimator.hpp")
//
// Lower level pieces live under pkg/: pkg/model validates schemas and emits
// code, pkg/orchestrator wires the pipeline, and pkg/renderers holds the
// output formats.
package modelgen
