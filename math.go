package typst2html

import "regexp"

// mathPattern matches a $...$ span with no unescaped $ inside.
var mathPattern = regexp.MustCompile(`\$(?:\\.|[^\\$])+\$`)

// ContainsMath reports whether the source text contains a math span.
// This is a delimiter heuristic, not a parse of Typst syntax: a literal
// dollar sign in prose can produce a false positive. Used solely to
// pick the rendering mode; request an explicit Format to override.
func ContainsMath(source string) bool {
	return mathPattern.MatchString(source)
}
