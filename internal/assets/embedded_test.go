package assets_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-typst2html/internal/assets"
)

// ---------------------------------------------------------------------------
// TestLoadTemplate - Embedded template loading
// ---------------------------------------------------------------------------

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	loader := assets.NewEmbeddedLoader()

	t.Run("default template loads", func(t *testing.T) {
		t.Parallel()

		content, err := loader.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		for _, want := range []string{"{{.Title}}", "{{.Content}}", "{{if .SVG}}", "{{.DateISO}}"} {
			if !strings.Contains(content, want) {
				t.Errorf("template missing placeholder %q", want)
			}
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("no-such-template")
		if !errors.Is(err, assets.ErrTemplateNotFound) {
			t.Fatalf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateAssetName - Name validation
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		assetName string
		wantErr   bool
	}{
		{name: "valid name", assetName: "blog-post", wantErr: false},
		{name: "empty name", assetName: "", wantErr: true},
		{name: "path separator", assetName: "a/b", wantErr: true},
		{name: "backslash", assetName: "a\\b", wantErr: true},
		{name: "dot traversal", assetName: "..", wantErr: true},
		{name: "extension smuggling", assetName: "name.html", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := assets.ValidateAssetName(tt.assetName)
			if tt.wantErr && !errors.Is(err, assets.ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.assetName, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) = %v, want nil", tt.assetName, err)
			}
		})
	}
}
