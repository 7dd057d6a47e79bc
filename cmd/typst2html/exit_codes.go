package main

import (
	"errors"
	"os"

	typst2html "github.com/alnah/go-typst2html"
	"github.com/alnah/go-typst2html/internal/config"
)

// Exit codes for the typst2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful build
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitCompiler = 4 // Compiler failure or malformed compiler output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Compiler errors (exit 4)
	if errors.Is(err, typst2html.ErrCompileFailed) ||
		errors.Is(err, typst2html.ErrNoBodyContent) ||
		errors.Is(err, typst2html.ErrNoPages) {
		return ExitCompiler
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, typst2html.ErrReadSource) ||
		errors.Is(err, typst2html.ErrCompilerNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrMissingArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidFormat) ||
		errors.Is(err, typst2html.ErrInvalidFormat) ||
		errors.Is(err, typst2html.ErrTemplateParse) ||
		errors.Is(err, typst2html.ErrEmptySourcePath) {
		return ExitUsage
	}

	return ExitGeneral
}
