package typst2html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alnah/go-typst2html/internal/fileutil"
)

// DefaultTypstBin is the compiler binary looked up on PATH.
const DefaultTypstBin = "typst"

// svgPagePattern is the output pattern passed to typst for paginated
// SVG; the compiler replaces {n} with the page number.
const svgPagePattern = "page-{n}.svg"

// Compiler abstracts document compilation to allow fakes in tests.
type Compiler interface {
	// CompileHTML compiles the source to a complete HTML document and
	// returns its full text.
	CompileHTML(ctx context.Context, sourcePath, rootDir string) (string, error)

	// CompileSVG compiles the source to paginated SVG and returns the
	// page contents in page order.
	CompileSVG(ctx context.Context, sourcePath, rootDir string) ([]string, error)
}

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// TypstCompiler compiles Typst sources by invoking the typst CLI.
type TypstCompiler struct {
	Bin    string        // Binary name or path (default: DefaultTypstBin)
	Runner CommandRunner // Command execution (default: ExecRunner)
	Stderr io.Writer     // Destination for compiler diagnostics
}

// NewTypstCompiler creates a TypstCompiler with a real command runner.
// Diagnostics go to w; nil means os.Stderr.
func NewTypstCompiler(bin string, w io.Writer) *TypstCompiler {
	if bin == "" {
		bin = DefaultTypstBin
	}
	if w == nil {
		w = os.Stderr
	}
	return &TypstCompiler{Bin: bin, Runner: &ExecRunner{}, Stderr: w}
}

// CompileHTML compiles the source file to a single HTML document in a
// temporary file and returns the document text. The temporary file is
// removed on every path. Compiler stderr is forwarded even on success
// since it may carry non-fatal warnings.
func (c *TypstCompiler) CompileHTML(ctx context.Context, sourcePath, rootDir string) (string, error) {
	tmpPath, cleanup, err := fileutil.TempFile("html")
	if err != nil {
		return "", err
	}
	defer cleanup()

	args := []string{
		"compile",
		"--features", "html",
		"--format", "html",
		"--root", rootDir,
		sourcePath,
		tmpPath,
	}
	if err := c.run(ctx, args); err != nil {
		return "", err
	}

	doc, err := os.ReadFile(tmpPath) // #nosec G304 -- path created by TempFile above
	if err != nil {
		return "", fmt.Errorf("reading compiled HTML: %w", err)
	}

	return string(doc), nil
}

// CompileSVG compiles the source file to one SVG per page in a
// temporary directory and returns the page contents in page order.
// The temporary directory is removed on every path. Returns ErrNoPages
// if the compiler produced no output files.
func (c *TypstCompiler) CompileSVG(ctx context.Context, sourcePath, rootDir string) ([]string, error) {
	tmpDir, cleanup, err := fileutil.TempDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	args := []string{
		"compile",
		"--format", "svg",
		"--root", rootDir,
		sourcePath,
		filepath.Join(tmpDir, svgPagePattern),
	}
	if err := c.run(ctx, args); err != nil {
		return nil, err
	}

	return collectSVGPages(tmpDir)
}

// run invokes the compiler, forwards its diagnostics, and maps a
// non-zero exit to ErrCompileFailed carrying the captured text.
func (c *TypstCompiler) run(ctx context.Context, args []string) error {
	_, stderr, err := c.Runner.Run(ctx, c.Bin, args...)

	if stderr != "" {
		fmt.Fprint(c.Stderr, stderr)
	}

	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrCompilerNotFound, c.Bin)
		}
		return fmt.Errorf("%w: %s: %v", ErrCompileFailed, strings.TrimSpace(stderr), err)
	}
	return nil
}

// Compile-time interface check.
var _ Compiler = (*TypstCompiler)(nil)
