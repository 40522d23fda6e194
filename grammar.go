package calcute

import "regexp"

// Grammar is the pattern every complete machine-form expression matches:
// unsigned decimal numbers joined by single operators.
const Grammar = `^\d+(\.\d+)?([+\-*/]\d+(\.\d+)?)*$`

var grammar = regexp.MustCompile(Grammar)

// Valid reports whether expr is a complete machine-form expression.
func Valid(expr string) bool {
	return grammar.MatchString(expr)
}
