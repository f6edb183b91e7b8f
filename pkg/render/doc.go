// Package render defines the Renderer contract and a name-keyed Registry.
// Renderers receive a validated *model.Model and return the artifact bytes;
// writing them anywhere is left to the caller.
package render
