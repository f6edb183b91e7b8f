// Package template defines the template engine seam used by text renderers
// such as the field catalog. Engines live in subpackages.
package template
