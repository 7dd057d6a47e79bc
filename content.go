package typst2html

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// bodyPattern matches the first <body>...</body> region across lines.
var bodyPattern = regexp.MustCompile(`(?s)<body>(.*?)</body>`)

// ExtractBody returns the trimmed inner text of the first <body>
// region in a compiled HTML document. A document without body markers
// is malformed compiler output and yields ErrNoBodyContent.
func ExtractBody(htmlDoc string) (string, error) {
	match := bodyPattern.FindStringSubmatch(htmlDoc)
	if match == nil {
		return "", ErrNoBodyContent
	}
	return strings.TrimSpace(match[1]), nil
}

// pageNumberPattern extracts the page number from a generated filename.
var pageNumberPattern = regexp.MustCompile(`(\d+)`)

// collectSVGPages reads all .svg files in dir and returns their
// contents ordered by the page number embedded in each filename
// (lexical order breaks past page 9). Zero pages is malformed
// compiler output and yields ErrNoPages.
func collectSVGPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading SVG output directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".svg" {
			continue
		}
		names = append(names, entry.Name())
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPages, dir)
	}

	sort.Slice(names, func(i, j int) bool {
		ni, iok := pageNumber(names[i])
		nj, jok := pageNumber(names[j])
		if iok && jok && ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})

	pages := make([]string, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- dir is process-local temp
		if err != nil {
			return nil, fmt.Errorf("reading SVG page %s: %w", name, err)
		}
		pages = append(pages, string(content))
	}

	return pages, nil
}

// pageNumber parses the first integer in a generated filename.
func pageNumber(name string) (int, bool) {
	match := pageNumberPattern.FindString(name)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}
