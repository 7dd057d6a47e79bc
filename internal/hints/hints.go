// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForCompilerNotFound returns a hint for a missing typst binary.
func ForCompilerNotFound(bin string) string {
	hints := []string{"install typst (https://typst.app) or use --typst /path/to/typst"}
	if bin != "typst" {
		hints = append(hints, "checked: "+bin)
	}
	return formatHints(hints)
}

// ForTemplateNotFound returns a hint for a missing page template.
func ForTemplateNotFound(path string) string {
	return format("create " + path + " or pass --template /path/to/template.html")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/typst2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/typst2html) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/typst2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
