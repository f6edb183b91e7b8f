package search

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Field is one adds-field found while scanning.
type Field struct {
	Name      string
	Specifier string
	Comment   string
	Source    string
}

// Index holds every adds-field collected from a tree, in walk order.
type Index struct {
	fields []Field
}

// Option configures Collect.
type Option func(*collector)

type collector struct {
	logger *slog.Logger
}

// WithLogger reports skipped documents through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Collect walks fsys for .yml, .yaml and .hcl documents and gathers their
// adds-fields. Documents that cannot be read or decoded are logged and
// skipped. Hidden directories are not entered.
func Collect(ctx context.Context, fsys fs.FS, parser schema.Parser, options ...Option) (*Index, error) {
	if fsys == nil {
		return nil, errors.New("search: filesystem is required")
	}
	if parser == nil {
		return nil, errors.New("search: parser is required")
	}
	c := collector{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range options {
		if opt != nil {
			opt(&c)
		}
	}

	idx := &Index{}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !searchable(p) {
			return nil
		}

		def, err := decode(ctx, fsys, parser, p)
		if err != nil {
			c.logger.Warn("skipping schema document", "path", p, "error", err)
			return nil
		}
		for _, rec := range def.Records(schema.GroupAdds) {
			idx.fields = append(idx.fields, Field{
				Name:      rec.Name,
				Specifier: rec.Type,
				Comment:   rec.Comment,
				Source:    p,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search: walk: %w", err)
	}
	return idx, nil
}

func searchable(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yml", ".yaml", ".hcl":
		return true
	default:
		return false
	}
}

func decode(ctx context.Context, fsys fs.FS, parser schema.Parser, p string) (schema.Definition, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return schema.Definition{}, err
	}
	doc, err := schema.NewDocument(schema.SourceFromFS(p), data)
	if err != nil {
		return schema.Definition{}, err
	}
	return parser.Parse(ctx, doc)
}

// Fields returns every collected field.
func (i *Index) Fields() []Field {
	return append([]Field(nil), i.fields...)
}

// Match returns the fields whose name matches pattern at its start. The
// pattern uses RE2 syntax.
func (i *Index) Match(pattern string) ([]Field, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("search: compile %q: %w", pattern, err)
	}
	var out []Field
	for _, f := range i.fields {
		if re.MatchString(f.Name) {
			out = append(out, f)
		}
	}
	return out, nil
}
