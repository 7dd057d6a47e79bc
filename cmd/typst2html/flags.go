package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for a build invocation.
type buildFlags struct {
	root     string
	template string
	format   string
	typst    string
	config   string
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("typst2html", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.root, "root", "r", "", "project root passed to the compiler")
	fs.StringVarP(&f.template, "template", "t", "", "page template file")
	fs.StringVarP(&f.format, "format", "f", "", "output format: auto, html, svg")
	fs.StringVar(&f.typst, "typst", "", "typst binary name or path")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show build timing")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: typst2html [flags] <source.typ> <output.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a standalone blog page from a Typst source file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source.typ     Typst source file with #let metadata declarations")
	fmt.Fprintln(w, "  output.html    Destination file (overwritten if it exists)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --root <dir>        Project root passed to the compiler")
	fmt.Fprintln(w, "                          (default: parent of the install directory)")
	fmt.Fprintln(w, "  -t, --template <path>   Page template file")
	fmt.Fprintln(w, "                          (default: <root>/templates/blog-post.html)")
	fmt.Fprintln(w, "  -f, --format <s>        Output format: auto, html, svg (default: auto,")
	fmt.Fprintln(w, "                          which picks svg for sources containing math)")
	fmt.Fprintln(w, "      --typst <path>      Typst binary name or path")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show build timing")
	fmt.Fprintln(w, "      --version           Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  unexpected error")
	fmt.Fprintln(w, "  2  invalid arguments, flags, or configuration")
	fmt.Fprintln(w, "  3  missing or unreadable file, write failure")
	fmt.Fprintln(w, "  4  compiler failure or malformed compiler output")
}
