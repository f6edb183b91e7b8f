// Package scaffold builds a new model schema document interactively.
//
// The Wizard asks for the model name, comment, and constructor arguments, then
// loops over fields until the user declines to add more. Every field is
// checked by building the partial model; a field that would make the model
// invalid is reported through the PromptDriver and dropped. Marshal encodes
// the finished definition as YAML.
package scaffold
