// Package orchestrator wires the loader → parser → model builder → renderer
// pipeline and writes artifacts so that a failed run never replaces an
// existing output.
package orchestrator
