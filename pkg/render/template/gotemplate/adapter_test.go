package gotemplate_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-modelgen/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"row.tpl":    &fstest.MapFile{Data: []byte("| {{ name|code }} | {{ comment|cell }} |")},
		"global.tpl": &fstest.MapFile{Data: []byte("{{ generator }}:{{ name }}")},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var out bytes.Buffer
	got, err := engine.RenderTemplate("row", map[string]any{
		"name":    "truth.{satellite}.bias",
		"comment": " bias a|b ",
	}, &out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "| `truth.{satellite}.bias` | bias a\\|b |"
	if got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
	if out.String() != want {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", want, out.String())
	}
}

func TestEngine_GlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{"generator": "modelgen"}))

	got, err := engine.RenderTemplate("global.tpl", map[string]any{"name": "Counter"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "modelgen:Counter" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderString("{{ name|trim }}!", map[string]any{"name": "  Counter "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Counter!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("modelgen_test_shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("modelgen_test_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatal("expected duplicate filter error")
	}

	got, err := engine.RenderString("{{ name|modelgen_test_shout }}", map[string]any{"name": "gain"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "GAIN!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}
