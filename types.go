package typst2html

import (
	"fmt"
	"io"
)

// Mode identifies the rendering path chosen for a build.
// It is decided once, before compilation, and never changes mid-build.
type Mode string

// Rendering modes.
const (
	ModeHTML Mode = "html"
	ModeSVG  Mode = "svg"
)

// Format selects the requested output format for a build.
type Format string

// Output formats. FormatAuto picks SVG when the source contains math,
// HTML otherwise.
const (
	FormatAuto Format = "auto"
	FormatHTML Format = "html"
	FormatSVG  Format = "svg"
)

// Validate checks that the format is a known value.
// The empty string is valid and means FormatAuto.
func (f Format) Validate() error {
	switch f {
	case "", FormatAuto, FormatHTML, FormatSVG:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be auto, html, or svg)", ErrInvalidFormat, string(f))
	}
}

// Input contains build parameters.
type Input struct {
	SourcePath string // Typst source file (required)
	RootDir    string // Project root for typst --root (empty = source directory)
	Format     Format // Requested output format (empty = auto)
}

// Result holds the outcome of one build.
type Result struct {
	HTML string   // Finished page
	Mode Mode     // Rendering mode that was used
	Meta Metadata // Metadata extracted from the source
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	typstBin string
	stderr   io.Writer
}

// WithRenderer sets the template renderer.
func WithRenderer(r *Renderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}

// WithCompiler sets the document compiler.
// Intended for tests and callers that wrap compilation.
func WithCompiler(c Compiler) Option {
	return func(s *Service) {
		s.compiler = c
	}
}

// WithTypstBin sets the typst binary name or path.
// Ignored when WithCompiler is also given.
func WithTypstBin(bin string) Option {
	return func(s *Service) {
		s.cfg.typstBin = bin
	}
}

// WithStderr sets the writer for compiler diagnostics.
// Ignored when WithCompiler is also given.
func WithStderr(w io.Writer) Option {
	return func(s *Service) {
		s.cfg.stderr = w
	}
}
