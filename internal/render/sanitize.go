package render

import "strings"

// escaper covers the five characters that can break out of markup or an
// attribute value. Single pass, so already-escaped text is not re-escaped
// twice within one call.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape makes externally sourced text safe for the page tree. Empty input
// yields empty output; the function never fails.
func Escape(s string) string {
	return escaper.Replace(s)
}
