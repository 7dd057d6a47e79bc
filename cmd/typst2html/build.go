package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	typst2html "github.com/alnah/go-typst2html"
	"github.com/alnah/go-typst2html/internal/assets"
	"github.com/alnah/go-typst2html/internal/config"
	"github.com/alnah/go-typst2html/internal/fileutil"
	"github.com/alnah/go-typst2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingArgs      = errors.New("usage: typst2html [flags] <source.typ> <output.html>")
	ErrSourceNotFound   = errors.New("source file not found")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrReadTemplate     = errors.New("failed to read template file")
	ErrWriteOutput      = errors.New("failed to write output file")
)

// executablePath is overridable in tests.
var executablePath = os.Executable

// runBuild orchestrates one build: validate inputs, build the page,
// write the destination atomically.
func runBuild(ctx context.Context, args []string, flags *buildFlags, env *Environment) error {
	if len(args) < 2 {
		return ErrMissingArgs
	}
	sourcePath, outputPath := args[0], args[1]

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	rootDir, err := resolveRootDir(cfg)
	if err != nil {
		return err
	}

	// Validate inputs before any work
	if !fileutil.FileExists(sourcePath) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}

	templateText, err := loadTemplate(cfg, rootDir)
	if err != nil {
		return err
	}
	renderer, err := typst2html.NewRenderer(templateText)
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Building %s...\n", filepath.Base(sourcePath))
	}

	start := env.Now()
	builder := env.NewBuilder(renderer, cfg.Compiler.Bin, env.Stderr)
	result, err := builder.Build(ctx, typst2html.Input{
		SourcePath: sourcePath,
		RootDir:    rootDir,
		Format:     typst2html.Format(strings.ToLower(cfg.Build.Format)),
	})
	if err != nil {
		if errors.Is(err, typst2html.ErrCompilerNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForCompilerNotFound(compilerBin(cfg)))
		}
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "  mode: %s\n", result.Mode)
	}

	if err := atomic.WriteFile(outputPath, strings.NewReader(result.HTML)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		if flags.verbose {
			fmt.Fprintf(env.Stdout, "  -> %s (%v)\n", outputPath, env.Now().Sub(start).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "  -> %s\n", outputPath)
		}
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.typst != "" {
		cfg.Compiler.Bin = flags.typst
	}
	if flags.template != "" {
		cfg.Template.Path = flags.template
	}
	if flags.root != "" {
		cfg.Build.Root = flags.root
	}
	if flags.format != "" {
		cfg.Build.Format = flags.format
	}
}

// resolveRootDir determines the compiler project root: config/flag
// value, or the parent of the directory containing the executable.
func resolveRootDir(cfg *config.Config) (string, error) {
	if cfg.Build.Root != "" {
		return cfg.Build.Root, nil
	}

	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("resolving install root: %w", err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// loadTemplate reads the page template text: an explicit configured
// path, or the install default loaded through the containment-checked
// filesystem loader rooted at rootDir.
func loadTemplate(cfg *config.Config, rootDir string) (string, error) {
	if cfg.Template.Path != "" {
		if !fileutil.FileExists(cfg.Template.Path) {
			return "", fmt.Errorf("%w: %s%s", ErrTemplateNotFound, cfg.Template.Path, hints.ForTemplateNotFound(cfg.Template.Path))
		}
		text, err := os.ReadFile(cfg.Template.Path) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		return string(text), nil
	}

	loader, err := assets.NewFilesystemLoader(rootDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}
	text, err := loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) {
			path := loader.TemplatePath(assets.DefaultTemplateName)
			return "", fmt.Errorf("%w: %s%s", ErrTemplateNotFound, path, hints.ForTemplateNotFound(path))
		}
		return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}
	return text, nil
}

// compilerBin returns the effective compiler binary name for hints.
func compilerBin(cfg *config.Config) string {
	if cfg.Compiler.Bin != "" {
		return cfg.Compiler.Bin
	}
	return typst2html.DefaultTypstBin
}
