package typst2html

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner implements CommandRunner without spawning subprocesses.
// writeOutput, when set, is called with the output path (the last
// argument) to simulate the compiler writing its result.
type fakeRunner struct {
	called      bool
	name        string
	args        []string
	stderr      string
	err         error
	writeOutput func(t *testing.T, outputPath string)
	t           *testing.T
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	r.called = true
	r.name = name
	r.args = args
	if r.writeOutput != nil && r.err == nil {
		r.writeOutput(r.t, args[len(args)-1])
	}
	return "", r.stderr, r.err
}

// writeFile is a writeOutput helper that fills the output path with content.
func writeFile(content string) func(t *testing.T, outputPath string) {
	return func(t *testing.T, outputPath string) {
		t.Helper()
		if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
			t.Fatalf("fake runner: writing output: %v", err)
		}
	}
}

// writePages is a writeOutput helper that expands a page-{n}.svg
// pattern into one file per page.
func writePages(pages ...string) func(t *testing.T, outputPath string) {
	return func(t *testing.T, outputPath string) {
		t.Helper()
		for i, content := range pages {
			path := strings.ReplaceAll(outputPath, "{n}", fmt.Sprint(i))
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("fake runner: writing page %d: %v", i, err)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestCompileHTML - Single-document HTML compilation
// ---------------------------------------------------------------------------

func TestCompileHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns compiled document", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, writeOutput: writeFile("<html><body>hi</body></html>")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		doc, err := c.CompileHTML(context.Background(), "post.typ", "/project")
		if err != nil {
			t.Fatalf("CompileHTML() error = %v", err)
		}
		if doc != "<html><body>hi</body></html>" {
			t.Errorf("CompileHTML() = %q, want compiled document", doc)
		}
	})

	t.Run("passes html feature and root flags", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, writeOutput: writeFile("x")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		if _, err := c.CompileHTML(context.Background(), "post.typ", "/project"); err != nil {
			t.Fatalf("CompileHTML() error = %v", err)
		}

		if runner.name != "typst" {
			t.Errorf("ran %q, want typst", runner.name)
		}
		got := strings.Join(runner.args, " ")
		for _, want := range []string{"compile", "--features html", "--format html", "--root /project", "post.typ"} {
			if !strings.Contains(got, want) {
				t.Errorf("args %q missing %q", got, want)
			}
		}
	})

	t.Run("removes temp file on success", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, writeOutput: writeFile("x")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		if _, err := c.CompileHTML(context.Background(), "post.typ", "/project"); err != nil {
			t.Fatalf("CompileHTML() error = %v", err)
		}

		tmpPath := runner.args[len(runner.args)-1]
		if _, err := os.Stat(tmpPath); !os.IsNotExist(err) {
			t.Errorf("temp file %s still exists after build", tmpPath)
		}
	})

	t.Run("forwards warnings on success", func(t *testing.T) {
		t.Parallel()

		var diag strings.Builder
		runner := &fakeRunner{t: t, stderr: "warning: html export is experimental\n", writeOutput: writeFile("x")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &diag}

		if _, err := c.CompileHTML(context.Background(), "post.typ", "/project"); err != nil {
			t.Fatalf("CompileHTML() error = %v", err)
		}
		if !strings.Contains(diag.String(), "experimental") {
			t.Errorf("diagnostics = %q, want compiler warning forwarded", diag.String())
		}
	})

	t.Run("non-zero exit surfaces diagnostics", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, stderr: "error: unknown variable: foo\n", err: errors.New("exit status 1")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		_, err := c.CompileHTML(context.Background(), "post.typ", "/project")
		if !errors.Is(err, ErrCompileFailed) {
			t.Fatalf("CompileHTML() error = %v, want ErrCompileFailed", err)
		}
		if !strings.Contains(err.Error(), "unknown variable: foo") {
			t.Errorf("error %q should carry the captured diagnostics", err)
		}
	})

	t.Run("missing binary maps to ErrCompilerNotFound", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, err: &exec.Error{Name: "typst", Err: exec.ErrNotFound}}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		_, err := c.CompileHTML(context.Background(), "post.typ", "/project")
		if !errors.Is(err, ErrCompilerNotFound) {
			t.Fatalf("CompileHTML() error = %v, want ErrCompilerNotFound", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestCompileSVG - Paginated SVG compilation
// ---------------------------------------------------------------------------

func TestCompileSVG(t *testing.T) {
	t.Parallel()

	t.Run("returns pages in page order", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, writeOutput: writePages("<svg>A</svg>", "<svg>B</svg>", "<svg>C</svg>")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		pages, err := c.CompileSVG(context.Background(), "post.typ", "/project")
		if err != nil {
			t.Fatalf("CompileSVG() error = %v", err)
		}
		want := []string{"<svg>A</svg>", "<svg>B</svg>", "<svg>C</svg>"}
		if len(pages) != len(want) {
			t.Fatalf("CompileSVG() returned %d pages, want %d", len(pages), len(want))
		}
		for i := range want {
			if pages[i] != want[i] {
				t.Errorf("page %d = %q, want %q", i, pages[i], want[i])
			}
		}
	})

	t.Run("passes svg format and page pattern", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, writeOutput: writePages("<svg/>")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		if _, err := c.CompileSVG(context.Background(), "post.typ", "/project"); err != nil {
			t.Fatalf("CompileSVG() error = %v", err)
		}

		got := strings.Join(runner.args, " ")
		if !strings.Contains(got, "--format svg") {
			t.Errorf("args %q missing --format svg", got)
		}
		if !strings.HasSuffix(runner.args[len(runner.args)-1], "page-{n}.svg") {
			t.Errorf("output pattern = %q, want page-{n}.svg suffix", runner.args[len(runner.args)-1])
		}
	})

	t.Run("removes temp directory on success", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, writeOutput: writePages("<svg/>")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		if _, err := c.CompileSVG(context.Background(), "post.typ", "/project"); err != nil {
			t.Fatalf("CompileSVG() error = %v", err)
		}

		tmpDir := filepath.Dir(runner.args[len(runner.args)-1])
		if _, err := os.Stat(tmpDir); !os.IsNotExist(err) {
			t.Errorf("temp directory %s still exists after build", tmpDir)
		}
	})

	t.Run("zero pages is malformed output", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t} // compiler "succeeds" but writes nothing
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		_, err := c.CompileSVG(context.Background(), "post.typ", "/project")
		if !errors.Is(err, ErrNoPages) {
			t.Fatalf("CompileSVG() error = %v, want ErrNoPages", err)
		}
	})

	t.Run("non-zero exit aborts before reading pages", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{t: t, stderr: "error: cannot load file\n", err: errors.New("exit status 1")}
		c := &TypstCompiler{Bin: "typst", Runner: runner, Stderr: &strings.Builder{}}

		_, err := c.CompileSVG(context.Background(), "post.typ", "/project")
		if !errors.Is(err, ErrCompileFailed) {
			t.Fatalf("CompileSVG() error = %v, want ErrCompileFailed", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestNewTypstCompiler - Defaults
// ---------------------------------------------------------------------------

func TestNewTypstCompiler(t *testing.T) {
	t.Parallel()

	c := NewTypstCompiler("", nil)
	if c.Bin != DefaultTypstBin {
		t.Errorf("Bin = %q, want %q", c.Bin, DefaultTypstBin)
	}
	if c.Runner == nil {
		t.Error("Runner is nil, want ExecRunner")
	}
	if c.Stderr == nil {
		t.Error("Stderr is nil, want os.Stderr")
	}
}
