// Package search finds state fields declared by the adds lists of every
// schema document under a directory tree.
package search
