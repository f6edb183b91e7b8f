package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

var groups = []schema.Group{schema.GroupParams, schema.GroupAdds, schema.GroupGets}

// modifiersFor lists the modifiers offered per group.
func modifiersFor(group schema.Group) []model.Modifier {
	switch group {
	case schema.GroupAdds:
		return model.Modifiers()
	case schema.GroupGets:
		return []model.Modifier{model.ModifierWritable}
	default:
		return nil
	}
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithLenient accepts placeholders that do not name a declared argument,
// colliding member names and names reserved by the generated class.
func WithLenient(lenient bool) Option {
	return func(w *Wizard) {
		w.lenient = lenient
	}
}

// Wizard prompts for a model definition field by field.
type Wizard struct {
	driver  PromptDriver
	lenient bool
}

// New constructs a Wizard. The survey driver is used unless another is given.
func New(options ...Option) *Wizard {
	w := &Wizard{}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver(nil)
	}
	return w
}

// Run asks for the model and returns the definition once it builds into a
// valid Model. Fields that would make the model invalid are reported and
// dropped so the session can continue.
func (w *Wizard) Run(ctx context.Context) (schema.Definition, error) {
	def := schema.Definition{Type: schema.ModelBaseType}

	name, err := w.driver.Input(ctx, InputConfig{
		Message:   "Model name",
		Help:      "Upper camel case, e.g. AttitudeEstimator",
		Validator: grammar(model.ValidModelName, "must be upper camel case"),
	})
	if err != nil {
		return schema.Definition{}, err
	}
	def.Name = strings.TrimSpace(name)

	if def.Comment, err = w.comment(ctx, "Model comment"); err != nil {
		return schema.Definition{}, err
	}

	args, err := w.driver.Input(ctx, InputConfig{
		Message:   "Constructor arguments",
		Help:      "Space separated lower case names, e.g. satellite",
		Validator: validArgumentList,
	})
	if err != nil {
		return schema.Definition{}, err
	}
	def.Args = strings.Fields(args)

	for {
		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add a field?"})
		if err != nil {
			return schema.Definition{}, err
		}
		if !more {
			break
		}

		group, rec, err := w.field(ctx)
		if err != nil {
			return schema.Definition{}, err
		}
		candidate := withRecord(def, group, rec)
		if _, err := model.New(candidate, model.WithLenient(w.lenient)); err != nil {
			if infoErr := w.driver.Info(ctx, fmt.Sprintf("field skipped: %v", err)); infoErr != nil {
				return schema.Definition{}, infoErr
			}
			continue
		}
		def = candidate
	}

	if _, err := model.New(def, model.WithLenient(w.lenient)); err != nil {
		return schema.Definition{}, err
	}
	return def, nil
}

func (w *Wizard) field(ctx context.Context) (schema.Group, schema.FieldRecord, error) {
	options := make([]string, len(groups))
	for i, g := range groups {
		options[i] = string(g)
	}
	idx, err := w.driver.Select(ctx, SelectConfig{Message: "Group", Options: options, DefaultIndex: 1})
	if err != nil {
		return "", schema.FieldRecord{}, err
	}
	if idx < 0 || idx >= len(groups) {
		return "", schema.FieldRecord{}, errors.New("scaffold: no group selected")
	}
	group := groups[idx]

	name, err := w.driver.Input(ctx, InputConfig{
		Message:   "Field name",
		Help:      "Dotted path, {argument} placeholders allowed",
		Validator: grammar(model.ValidVariableName, "must be a dotted path of identifiers and {argument} placeholders"),
	})
	if err != nil {
		return "", schema.FieldRecord{}, err
	}

	types := model.UnderlyingTypes()
	typeOptions := make([]string, len(types))
	for i, t := range types {
		typeOptions[i] = string(t)
	}
	tIdx, err := w.driver.Select(ctx, SelectConfig{Message: "Underlying type", Options: typeOptions, DefaultIndex: 1})
	if err != nil {
		return "", schema.FieldRecord{}, err
	}
	if tIdx < 0 || tIdx >= len(types) {
		return "", schema.FieldRecord{}, errors.New("scaffold: no type selected")
	}
	spec := []string{string(types[tIdx])}

	if mods := modifiersFor(group); len(mods) > 0 {
		modOptions := make([]string, len(mods))
		for i, m := range mods {
			modOptions[i] = string(m)
		}
		picked, err := w.driver.MultiSelect(ctx, SelectConfig{Message: "Modifiers", Options: modOptions})
		if err != nil {
			return "", schema.FieldRecord{}, err
		}
		for _, i := range picked {
			if i >= 0 && i < len(mods) {
				spec = append(spec, string(mods[i]))
			}
		}
	}

	comment, err := w.comment(ctx, "Field comment")
	if err != nil {
		return "", schema.FieldRecord{}, err
	}

	return group, schema.FieldRecord{
		Name:    strings.TrimSpace(name),
		Type:    strings.Join(spec, " "),
		Comment: comment,
	}, nil
}

func (w *Wizard) comment(ctx context.Context, message string) (string, error) {
	comment, err := w.driver.Input(ctx, InputConfig{
		Message: message,
		Help:    `Optional; no double quotes, tabs, line breaks or "*/"`,
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" || model.ValidComment(strings.TrimSpace(s)) {
				return nil
			}
			return errors.New(`must not contain double quotes, tabs, line breaks or "*/", nor end in a backslash`)
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(comment), nil
}

func withRecord(def schema.Definition, group schema.Group, rec schema.FieldRecord) schema.Definition {
	out := def
	records := append(append([]schema.FieldRecord(nil), def.Records(group)...), rec)
	switch group {
	case schema.GroupParams:
		out.Params = records
	case schema.GroupAdds:
		out.Adds = records
	case schema.GroupGets:
		out.Gets = records
	}
	return out
}

func grammar(valid func(string) bool, detail string) func(string) error {
	return func(s string) error {
		if !valid(strings.TrimSpace(s)) {
			return errors.New(detail)
		}
		return nil
	}
}

func validArgumentList(s string) error {
	for _, arg := range strings.Fields(s) {
		if !model.ValidArgumentName(arg) {
			return fmt.Errorf("%q must be lower case letters and underscores", arg)
		}
	}
	return nil
}

// Marshal encodes def as a YAML schema document.
func Marshal(def schema.Definition) ([]byte, error) {
	out, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("scaffold: encode yaml: %w", err)
	}
	return out, nil
}
