package main

import (
	"context"
	"io"
	"os"
	"time"

	typst2html "github.com/alnah/go-typst2html"
)

// Builder is the interface for the build service.
type Builder interface {
	Build(ctx context.Context, input typst2html.Input) (*typst2html.Result, error)
}

// Compile-time interface implementation check.
var _ Builder = (*typst2html.Service)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	NewBuilder func(renderer *typst2html.Renderer, typstBin string, stderr io.Writer) Builder
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewBuilder: func(renderer *typst2html.Renderer, typstBin string, stderr io.Writer) Builder {
			return typst2html.New(
				typst2html.WithRenderer(renderer),
				typst2html.WithTypstBin(typstBin),
				typst2html.WithStderr(stderr),
			)
		},
	}
}
