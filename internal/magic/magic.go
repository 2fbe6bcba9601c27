package magic

// Synthesized bindings are named after human-readable labels such as
// "imported module [project]/lib/a.js". Mangle encodes a label into a legal
// JavaScript identifier: alphanumerics pass through, a space becomes "__",
// and every other character is hex-escaped as "$xx$". Distinct labels always
// produce distinct identifiers, and the same label always produces the same
// identifier, so mangled names are safe to use as cache keys.

import (
	"fmt"
	"strings"
)

func Mangle(content string) string {
	var sb strings.Builder
	sb.WriteString("__TURBOPACK__")
	for _, c := range content {
		switch {
		case c == ' ':
			sb.WriteString("__")
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			sb.WriteRune(c)
		default:
			// "_" and "$" are escaped too, otherwise "a_b" and "a b" would
			// collide
			fmt.Fprintf(&sb, "$%x$", c)
		}
	}
	sb.WriteString("__")
	return sb.String()
}
