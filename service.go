package typst2html

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Service orchestrates the Typst-to-page build pipeline.
type Service struct {
	cfg      serviceConfig
	compiler Compiler
	renderer *Renderer
}

// New creates a Service with default configuration: the typst binary
// from PATH, diagnostics to os.Stderr, and the embedded page template.
// Use options to customize behavior.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{typstBin: DefaultTypstBin, stderr: os.Stderr},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = newDefaultRenderer()
	}

	// Create compiler if not injected (e.g., by tests)
	if s.compiler == nil {
		s.compiler = NewTypstCompiler(s.cfg.typstBin, s.cfg.stderr)
	}

	return s
}

// Build runs the full pipeline for one source file and returns the
// finished page. The rendering mode is resolved once, before
// compilation. The context cancels the compiler subprocess.
func (s *Service) Build(ctx context.Context, input Input) (*Result, error) {
	if input.SourcePath == "" {
		return nil, ErrEmptySourcePath
	}
	if err := input.Format.Validate(); err != nil {
		return nil, err
	}

	source, err := os.ReadFile(input.SourcePath) // #nosec G304 -- caller-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	meta := ExtractMetadata(string(source))
	mode := resolveMode(input.Format, string(source))

	rootDir := input.RootDir
	if rootDir == "" {
		rootDir = filepath.Dir(input.SourcePath)
	}

	content, err := s.compileContent(ctx, input.SourcePath, rootDir, mode)
	if err != nil {
		return nil, err
	}

	page, err := s.renderer.Render(meta, content, mode)
	if err != nil {
		return nil, err
	}

	return &Result{HTML: page, Mode: mode, Meta: meta}, nil
}

// compileContent runs the compiler in the resolved mode and extracts
// the embeddable content.
func (s *Service) compileContent(ctx context.Context, sourcePath, rootDir string, mode Mode) (string, error) {
	if mode == ModeSVG {
		pages, err := s.compiler.CompileSVG(ctx, sourcePath, rootDir)
		if err != nil {
			return "", err
		}
		// Pages are concatenated as-is, in page order.
		var b strings.Builder
		for _, page := range pages {
			b.WriteString(page)
		}
		return b.String(), nil
	}

	doc, err := s.compiler.CompileHTML(ctx, sourcePath, rootDir)
	if err != nil {
		return "", err
	}
	return ExtractBody(doc)
}

// resolveMode maps the requested format to a rendering mode.
// Auto picks SVG for sources containing math, since Typst's HTML
// export does not render math, and HTML otherwise.
func resolveMode(format Format, source string) Mode {
	switch format {
	case FormatHTML:
		return ModeHTML
	case FormatSVG:
		return ModeSVG
	default:
		if ContainsMath(source) {
			return ModeSVG
		}
		return ModeHTML
	}
}
