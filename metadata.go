package typst2html

import "regexp"

// Metadata maps declaration keys to their string values.
type Metadata map[string]string

// Get returns the value for key, or fallback if the key is absent.
func (m Metadata) Get(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// metadataPattern matches declarations of the form: #let key = "value"
var metadataPattern = regexp.MustCompile(`#let\s+(\w+)\s*=\s*"([^"]*)"`)

// ExtractMetadata scans source text for #let key = "value" declarations
// and returns the resulting mapping. Duplicate keys keep the last match.
// Zero matches yield an empty map; downstream defaults apply at render.
func ExtractMetadata(source string) Metadata {
	meta := Metadata{}
	for _, match := range metadataPattern.FindAllStringSubmatch(source, -1) {
		meta[match[1]] = match[2]
	}
	return meta
}
