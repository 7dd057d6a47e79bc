package typst2html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alnah/go-typst2html/internal/assets"
)

// DefaultTitle is used when the source declares no title.
const DefaultTitle = "Untitled"

// pageContext carries the resolved values substituted into the page
// template. Content is pre-rendered markup from the compiler and is
// embedded without escaping.
type pageContext struct {
	Title       string
	Slug        string
	DateDisplay string
	DateISO     string
	Description string
	Keywords    string
	Content     template.HTML // #nosec G203 -- compiler output, not user input
	SVG         bool
}

// Renderer substitutes metadata and compiled content into a page
// template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses templateText into a Renderer.
// The template may reference .Title, .Slug, .DateDisplay, .DateISO,
// .Description, .Keywords, .Content, and the .SVG mode flag.
func NewRenderer(templateText string) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// newDefaultRenderer loads the embedded page template.
// Panics if the embedded template cannot be loaded or parsed
// (programmer error).
func newDefaultRenderer() *Renderer {
	text, err := assets.NewEmbeddedLoader().LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		panic("failed to load default page template: " + err.Error())
	}
	r, err := NewRenderer(text)
	if err != nil {
		panic("failed to parse default page template: " + err.Error())
	}
	return r
}

// Render substitutes metadata and content into the template.
// Missing metadata keys fall back to defaults: "Untitled" for the
// title, empty strings otherwise. The SVG flag lets the template wrap
// paginated SVG content differently from HTML prose.
func (r *Renderer) Render(meta Metadata, content string, mode Mode) (string, error) {
	pageCtx := pageContext{
		Title:       meta.Get("title", DefaultTitle),
		Slug:        meta.Get("slug", ""),
		DateDisplay: meta.Get("date_display", ""),
		DateISO:     meta.Get("date_iso", ""),
		Description: meta.Get("description", ""),
		Keywords:    meta.Get("keywords", ""),
		Content:     template.HTML(content), // #nosec G203 -- compiler output
		SVG:         mode == ModeSVG,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, pageCtx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return buf.String(), nil
}
