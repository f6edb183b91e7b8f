package render

// RenderOptions carry per-invocation context that is not part of the Model.
type RenderOptions struct {
	// Source is the schema document location the Model was built from.
	Source string
}
