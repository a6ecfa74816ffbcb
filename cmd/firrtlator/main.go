// Command firrtlator is the thin CLI front end: it wires flags to the
// driver and maps failures to exit codes. No IR semantics live here,
// per spec.md §1's out-of-scope note; the library does all the work.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/urfave/cli/v2"

	"github.com/firrtlator/firrtlator/driver"
	"github.com/firrtlator/firrtlator/ferr"

	_ "github.com/firrtlator/firrtlator/backend/dot"
	_ "github.com/firrtlator/firrtlator/backend/firrtl"
	_ "github.com/firrtlator/firrtlator/backend/tree"
	_ "github.com/firrtlator/firrtlator/frontend"
	_ "github.com/firrtlator/firrtlator/pass/stripinfo"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/frontend"
	"github.com/firrtlator/firrtlator/pass"
	"github.com/firrtlator/firrtlator/registry"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	app := &cli.App{
		Name:  "firrtlator",
		Usage: "parse, transform, and re-emit FIRRTL circuits",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "input", Aliases: []string{"i"}, Usage: "input FIRRTL file (repeat to warn and keep the last)"},
			&cli.StringSliceFlag{Name: "pass", Aliases: []string{"p"}, Usage: "pass to run, in order given"},
		},
		CustomAppHelpTemplate: helpTemplate(),
		// ExitErrHandler overrides the library's default os.Exit(1)-on-any-error
		// behavior, since spec.md §6 wants failures mapped to a specific code
		// per ferr.Kind rather than a flat 1.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(ctx *cli.Context) error {
			return runCompile(ctx)
		},
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, "firrtlator:", err)
		return exitCodeFor(err)
	}
	return 0
}

// usageError is a command-line usage mistake (missing input, wrong number
// of positional args) — spec.md §6 gives these their own exit code (2),
// distinct from an unknown frontend/backend/pass name (1).
type usageError string

func (e usageError) Error() string { return string(e) }

func runCompile(ctx *cli.Context) error {
	inputs := ctx.StringSlice("input")
	if len(inputs) == 0 {
		return usageError("missing required -i/--input")
	}
	input := inputs[len(inputs)-1]
	if len(inputs) > 1 {
		glog.Warningf("-i given %d times, using the last (%s)", len(inputs), input)
	}

	if ctx.NArg() != 1 {
		return usageError("expected exactly one output path argument")
	}
	output := ctx.Args().Get(0)

	src, err := os.ReadFile(input)
	if err != nil {
		return ferr.IOError(err, "cannot read input %q", input)
	}

	frontendName, err := driver.GetFrontend(filepath.Ext(input))
	if err != nil {
		return err
	}
	backendName, err := driver.GetBackend(filepath.Ext(output))
	if err != nil {
		return err
	}

	d := driver.New()
	if ok, err := d.Parse(string(src), frontendName); !ok {
		return err
	}
	for _, p := range ctx.StringSlice("pass") {
		if err := d.Pass(p); err != nil {
			return err
		}
	}
	return d.Generate(output, backendName)
}

// exitCodeFor maps a ferr.Kind to spec.md §6's exit code table; a
// usageError maps to 2, and any other non-ferr error (such as a flag
// parsing error from the cli library) falls back to 1.
func exitCodeFor(err error) int {
	if _, ok := err.(usageError); ok {
		return 2
	}
	fe, ok := err.(*ferr.Error)
	if !ok {
		return 1
	}
	switch fe.Kind {
	case ferr.Registry:
		return 1
	case ferr.Parse, ferr.Lex, ferr.Semantic:
		return 3
	case ferr.IO:
		return 4
	default:
		return 1
	}
}

func helpTemplate() string {
	return cli.AppHelpTemplate + "\nREGISTERED PLUGINS:\n" +
		pluginList("frontends", frontendDescriptors()) +
		pluginList("passes", passDescriptors()) +
		pluginList("backends", backendDescriptors())
}

func frontendDescriptors() []string { return names(frontend.Frontends.List()) }
func passDescriptors() []string     { return names(pass.Passes.List()) }
func backendDescriptors() []string  { return names(backend.Backends.List()) }

func names(descs []registry.Descriptor) []string {
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = fmt.Sprintf("%-10s %s %v", d.Name, d.Description, d.Filetypes)
	}
	return out
}

func pluginList(label string, items []string) string {
	s := fmt.Sprintf("  %s:\n", label)
	for _, item := range items {
		s += "    " + item + "\n"
	}
	return s
}
