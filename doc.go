// Package typst2html builds standalone blog pages from Typst sources.
//
// # Quick Start
//
// Create a service and build a page:
//
//	svc := typst2html.New()
//	result, err := svc.Build(ctx, typst2html.Input{
//	    SourcePath: "posts/hello.typ",
//	    RootDir:    "/path/to/project",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(result.HTML), 0644)
//
// # Build Pipeline
//
// A build runs these stages:
//
//  1. Metadata extraction (#let key = "value" declarations)
//  2. Math detection ($...$ spans) to pick the rendering mode
//  3. Typst compilation via the external typst binary (HTML or
//     paginated SVG, written to a temporary location)
//  4. Content extraction (<body> fragment, or SVG pages concatenated
//     in page order)
//  5. Template rendering (metadata + content into the page template)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	renderer, err := typst2html.NewRenderer(templateText)
//	svc := typst2html.New(
//	    typst2html.WithRenderer(renderer),
//	    typst2html.WithTypstBin("/opt/typst/bin/typst"),
//	)
//
// # Compiler Requirements
//
// Compilation requires the typst binary on PATH (or set via
// WithTypstBin). Compiler warnings are forwarded to stderr even on
// success; a non-zero exit aborts the build.
package typst2html
