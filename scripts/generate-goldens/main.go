package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-modelgen/pkg/orchestrator"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

// Regenerates the renderer golden files from the schema fixtures next to them:
// every <name>.yml under -dir becomes <name>.golden<ext> for the renderer.
func main() {
	var (
		dir      = flag.String("dir", "pkg/renderers/cpp/testdata", "directory holding schema fixtures")
		renderer = flag.String("renderer", "cpp", "renderer used to produce the goldens")
	)
	flag.Parse()

	ctx := context.Background()
	orch := orchestrator.New()
	r, err := orch.Registry().Get(*renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	fixtures, err := filepath.Glob(filepath.Join(*dir, "*.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "glob fixtures: %v\n", err)
		os.Exit(1)
	}
	for _, fixture := range fixtures {
		target := strings.TrimSuffix(fixture, ".yml") + ".golden" + r.FileExtension()
		req := orchestrator.Request{Source: schema.SourceFromFile(fixture), Renderer: *renderer}
		if err := orch.Compile(ctx, req, target); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", fixture, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", target)
	}
}
