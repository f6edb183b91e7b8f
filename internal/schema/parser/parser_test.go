package parser_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelgen/internal/schema/parser"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

func wantDefinition() schema.Definition {
	return schema.Definition{
		Name:    "Estimator",
		Type:    "Model",
		Comment: "Estimates attitude",
		Args:    []string{"satellite"},
		Params: []schema.FieldRecord{
			{Name: "gain", Type: "Real", Comment: "Filter gain"},
		},
		Adds: []schema.FieldRecord{
			{Name: "truth.{satellite}.bias", Type: "Real Lazy"},
			{Name: "count", Type: "Integer Initialized"},
		},
		Gets: []schema.FieldRecord{
			{Name: "dt", Type: "Real"},
		},
	}
}

func parse(t *testing.T, location, body string) (schema.Definition, error) {
	t.Helper()
	doc := schema.MustNewDocument(schema.SourceFromFile(location), []byte(body))
	return parser.New().Parse(context.Background(), doc)
}

func TestParser_YAML(t *testing.T) {
	body := `name: Estimator
type: Model
comment: Estimates attitude
args:
  - satellite
params:
  - name: gain
    type: Real
    comment: Filter gain
adds:
  - name: truth.{satellite}.bias
    type: Real Lazy
  - name: count
    type: Integer Initialized
gets:
  - name: dt
    type: Real
`
	got, err := parse(t, "estimator.yml", body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(wantDefinition(), got); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_JSON(t *testing.T) {
	body := `{"name": "Estimator", "type": "Model", "comment": "Estimates attitude",
"args": ["satellite"],
"params": [{"name": "gain", "type": "Real", "comment": "Filter gain"}],
"adds": [{"name": "truth.{satellite}.bias", "type": "Real Lazy"}, {"name": "count", "type": "Integer Initialized"}],
"gets": [{"name": "dt", "type": "Real"}]}`
	got, err := parse(t, "estimator.json", body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(wantDefinition(), got); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_HCL(t *testing.T) {
	body := `
name    = "Estimator"
type    = "Model"
comment = "Estimates attitude"
args    = ["satellite"]

param "gain" {
  type    = "Real"
  comment = "Filter gain"
}

adds "truth.{satellite}.bias" {
  type = "Real Lazy"
}

adds "count" {
  type = "Integer Initialized"
}

gets "dt" {
  type = "Real"
}
`
	got, err := parse(t, "models/estimator.hcl", body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(wantDefinition(), got); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_HCLUnknownAttribute(t *testing.T) {
	body := `
name = "Estimator"
type = "Model"
color = "red"
`
	_, err := parse(t, "estimator.hcl", body)
	if !errors.Is(err, model.ErrStructural) {
		t.Fatalf("expected structural error, got %v", err)
	}
}

func TestParser_StructuralErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		path string
	}{
		{"list root", "- a\n- b\n", ""},
		{"scalar root", "Model\n", ""},
		{"unknown top-level key", "name: Foo\ntype: Model\nowner: me\n", "owner"},
		{"unknown record key", "name: Foo\ntype: Model\nadds:\n  - name: x\n    type: Real\n    unit: m\n", "adds[0].unit"},
		{"record not mapping", "name: Foo\ntype: Model\ngets:\n  - x\n", "gets[0]"},
		{"group not list", "name: Foo\ntype: Model\nparams:\n  name: x\n", "params"},
		{"args not list", "name: Foo\ntype: Model\nargs: index\n", "args"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, "broken.yml", tc.body)
			if !errors.Is(err, model.ErrStructural) {
				t.Fatalf("expected structural error, got %v", err)
			}
			var se *model.SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected *model.SchemaError, got %T", err)
			}
			if se.Path != tc.path {
				t.Fatalf("path = %q, want %q", se.Path, tc.path)
			}
		})
	}
}

func TestParser_NullGroups(t *testing.T) {
	got, err := parse(t, "empty.yml", "name: Foo\ntype: Model\nparams:\nadds: []\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got.Params) != 0 || len(got.Adds) != 0 {
		t.Fatalf("expected empty groups, got %+v", got)
	}
}

func TestParser_InvalidYAML(t *testing.T) {
	_, err := parse(t, "broken.yml", "name: [unterminated\n")
	if err == nil || !strings.Contains(err.Error(), "decode yaml") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestParser_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc := schema.MustNewDocument(schema.SourceFromFile("x.yml"), []byte("name: Foo\n"))
	if _, err := parser.New().Parse(ctx, doc); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
