package search_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelgen/internal/schema/parser"
	"github.com/goliatone/go-modelgen/pkg/search"
)

func tree() fstest.MapFS {
	return fstest.MapFS{
		"fc/estimator.yml": &fstest.MapFile{Data: []byte(`name: Estimator
type: Model
args: [satellite]
adds:
  - name: fc.{satellite}.q_body_eci
    type: Vector4
    comment: Attitude estimate
  - name: fc.{satellite}.w_bias
    type: Vector3 Lazy
`)},
		"truth/orbit.hcl": &fstest.MapFile{Data: []byte(`
name = "Orbit"
type = "Model"

adds "truth.dt" {
  type = "Real Initialized"
}
`)},
		"broken/list.yml":    &fstest.MapFile{Data: []byte("- not\n- a mapping\n")},
		".cache/ignored.yml": &fstest.MapFile{Data: []byte("name: Hidden\ntype: Model\nadds:\n  - name: fc.hidden\n    type: Real\n")},
		"README.txt":         &fstest.MapFile{Data: []byte("adds: nothing")},
	}
}

func collect(t *testing.T, logs *bytes.Buffer) *search.Index {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(logs, nil))
	idx, err := search.Collect(context.Background(), tree(), parser.New(), search.WithLogger(logger))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return idx
}

func TestCollect(t *testing.T) {
	var logs bytes.Buffer
	idx := collect(t, &logs)

	want := []search.Field{
		{Name: "fc.{satellite}.q_body_eci", Specifier: "Vector4", Comment: "Attitude estimate", Source: "fc/estimator.yml"},
		{Name: "fc.{satellite}.w_bias", Specifier: "Vector3 Lazy", Source: "fc/estimator.yml"},
		{Name: "truth.dt", Specifier: "Real Initialized", Source: "truth/orbit.hcl"},
	}
	if diff := cmp.Diff(want, idx.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "broken/list.yml") {
		t.Fatalf("expected warning for broken document, got logs:\n%s", logs.String())
	}
}

func TestIndex_Match(t *testing.T) {
	idx := collect(t, &bytes.Buffer{})

	cases := []struct {
		pattern string
		want    []string
	}{
		{`fc\.`, []string{"fc.{satellite}.q_body_eci", "fc.{satellite}.w_bias"}},
		{`.*bias`, []string{"fc.{satellite}.w_bias"}},
		{`dt`, nil},
		{`truth|fc.*eci`, []string{"fc.{satellite}.q_body_eci", "truth.dt"}},
	}
	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			fields, err := idx.Match(tc.pattern)
			if err != nil {
				t.Fatalf("match: %v", err)
			}
			var got []string
			for _, f := range fields {
				got = append(got, f.Name)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("matches mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := idx.Match("("); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestPrinters(t *testing.T) {
	f := search.Field{
		Name:      "fc.q",
		Specifier: "Vector4",
		Source:    "fc/estimator.yml",
		Comment:   strings.Repeat("word ", 20),
	}

	var brief bytes.Buffer
	if err := search.PrinterFor(false)(&brief, f); err != nil {
		t.Fatalf("brief: %v", err)
	}
	if brief.String() != "fc.q [Vector4]\n" {
		t.Fatalf("unexpected brief output %q", brief.String())
	}

	var verbose bytes.Buffer
	if err := search.PrinterFor(true)(&verbose, f); err != nil {
		t.Fatalf("verbose: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(verbose.String(), "\n"), "\n")
	wantHead := []string{"fc.q :", "\ttype: Vector4", "\tsource: fc/estimator.yml", "\tcomment:"}
	if diff := cmp.Diff(wantHead, lines[:4]); diff != "" {
		t.Fatalf("verbose header mismatch (-want +got):\n%s", diff)
	}
	if len(lines) != 6 {
		t.Fatalf("expected comment wrapped onto two lines, got:\n%s", verbose.String())
	}
	if !strings.HasPrefix(lines[4], "\t\tword") || !strings.HasPrefix(lines[5], "\tword") {
		t.Fatalf("unexpected comment indentation:\n%q", lines[4:])
	}
}
