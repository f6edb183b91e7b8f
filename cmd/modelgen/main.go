// Command modelgen compiles model schema documents into C++ headers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goliatone/go-modelgen"
	"github.com/goliatone/go-modelgen/internal/atomicfile"
	"github.com/goliatone/go-modelgen/internal/config"
	"github.com/goliatone/go-modelgen/internal/logging"
	"github.com/goliatone/go-modelgen/pkg/orchestrator"
	"github.com/goliatone/go-modelgen/pkg/scaffold"
	"github.com/goliatone/go-modelgen/pkg/schema"
	"github.com/goliatone/go-modelgen/pkg/search"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// usageError marks bad invocations; they exit with exitUsage.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(ctx context.Context, c *cli, args []string) error
}

var commands = []command{
	{
		name:  "compile",
		short: "Compile a schema document into a C++ header",
		usage: "modelgen compile [-renderer NAME] [-lenient] <input> <output>",
		long: `Load the schema document at <input> (a path, or an http(s) URL when
MODELGEN_ALLOW_HTTP=true), validate it, and write the rendered artifact to
<output>. The output is only replaced when every step succeeds.

'modelgen <input> <output>' is shorthand for this command.

Flags:
  -renderer NAME   output format: cpp (default) or catalog
  -lenient         accept undeclared {arg} placeholders and member name clashes
`,
		run: runCompile,
	},
	{
		name:  "search",
		short: "Find state fields across schema documents",
		usage: "modelgen search [-v] [-root DIR] REGEX...",
		long: `Walk DIR (default .) for .yml, .yaml and .hcl schema documents and print
every adds-field whose name matches REGEX. Patterns are anchored at the
start of the name.

Flags:
  -v         print type, source and comment for each field
  -root DIR  directory to search
`,
		run: runSearch,
	},
	{
		name:  "new",
		short: "Create a schema document interactively",
		usage: "modelgen new <output>",
		long: `Prompt for the model name, comment, constructor arguments and fields,
then write the schema as YAML to <output>. Nothing is written when the
session is aborted.
`,
		run: runNew,
	},
}

// cli carries the process environment for a single invocation.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	logger *slog.Logger
	prompt scaffold.PromptDriver
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "modelgen: %v\n", err)
		return exitUsage
	}
	c := &cli{
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		logger: logging.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr),
	}
	return c.exec(ctx, args)
}

func (c *cli) exec(ctx context.Context, args []string) int {
	err := c.dispatch(ctx, args)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(c.stderr, "modelgen: %v\n", err)
	var usage usageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	return exitFail
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(c.stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			return printCommandHelp(c.stdout, args[1])
		}
		printUsage(c.stdout)
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(ctx, c, args[1:])
		}
	}
	if len(args) == 2 {
		return runCompile(ctx, c, args)
	}
	return usagef("unknown command %q\n\nRun 'modelgen help' for usage.", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "modelgen: compile model schemas into C++ headers\n\n")
	fmt.Fprintf(w, "Usage:\n  modelgen <input> <output>\n  modelgen <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'modelgen help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) error {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return nil
		}
	}
	return usagef("unknown command %q\n\nRun 'modelgen help' for usage.", name)
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

func runCompile(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet("compile", c.stderr)
	renderer := fs.String("renderer", c.cfg.Renderer, "renderer to use")
	lenient := fs.Bool("lenient", c.cfg.Lenient, "skip placeholder and member name checks")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}
	if fs.NArg() != 2 {
		return usagef("usage: modelgen compile [-renderer NAME] [-lenient] <input> <output>")
	}

	src := schema.ParseSource(fs.Arg(0))
	if src == nil {
		return usagef("invalid input %q", fs.Arg(0))
	}

	var loaderOpts []schema.LoaderOption
	if c.cfg.AllowHTTP {
		loaderOpts = append(loaderOpts, schema.WithHTTPFallback(c.cfg.HTTPTimeout))
	}
	gen := modelgen.NewOrchestrator(
		orchestrator.WithLoader(modelgen.NewLoader(loaderOpts...)),
		orchestrator.WithLenient(*lenient),
		orchestrator.WithLogger(c.logger),
	)
	if !gen.Registry().Has(*renderer) {
		return usagef("unknown renderer %q (available: %v)", *renderer, gen.Registry().List())
	}

	output := fs.Arg(1)
	if err := gen.Compile(ctx, orchestrator.Request{Source: src, Renderer: *renderer}, output); err != nil {
		return err
	}
	c.logger.Debug("compiled", "input", src.Location(), "output", output, "renderer", *renderer)
	return nil
}

func runSearch(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet("search", c.stderr)
	verbose := fs.Bool("v", false, "verbose output")
	root := fs.String("root", ".", "directory to search")
	if err := fs.Parse(args); err != nil {
		return usageError{msg: err.Error()}
	}
	if fs.NArg() == 0 {
		return usagef("usage: modelgen search [-v] [-root DIR] REGEX...")
	}

	idx, err := search.Collect(ctx, os.DirFS(*root), modelgen.NewParser(), search.WithLogger(c.logger))
	if err != nil {
		return err
	}
	printField := search.PrinterFor(*verbose)
	for _, pattern := range fs.Args() {
		fields, err := idx.Match(pattern)
		if err != nil {
			return usageError{msg: err.Error()}
		}
		for _, f := range fields {
			if err := printField(c.stdout, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func runNew(ctx context.Context, c *cli, args []string) error {
	if len(args) != 1 {
		return usagef("usage: modelgen new <output>")
	}
	driver := c.prompt
	if driver == nil {
		driver = scaffold.NewSurveyDriver(c.stderr)
	}

	def, err := scaffold.New(scaffold.WithPromptDriver(driver), scaffold.WithLenient(c.cfg.Lenient)).Run(ctx)
	if err != nil {
		return err
	}
	data, err := scaffold.Marshal(def)
	if err != nil {
		return err
	}
	if err := atomicfile.Write(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}
	fmt.Fprintf(c.stdout, "schema written to %s\n", args[0])
	return nil
}
