package typst2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySourcePath  = errors.New("source path cannot be empty")
	ErrReadSource       = errors.New("failed to read source file")
	ErrCompilerNotFound = errors.New("typst binary not found")
	ErrCompileFailed    = errors.New("typst compilation failed")
	ErrNoBodyContent    = errors.New("no body content in compiled HTML")
	ErrNoPages          = errors.New("no SVG pages produced")
	ErrTemplateParse    = errors.New("template parsing failed")
	ErrTemplateRender   = errors.New("template rendering failed")
	ErrInvalidFormat    = errors.New("invalid output format")
)
