// Package latex generates printable candidate lists and compiles them with
// an external TeX engine.
package latex

import "strings"

// escaper rewrites characters with special meaning in LaTeX source. A single
// Replacer pass is safe here: replacement text is never rescanned, so the
// braces and backslashes in the substitutions stay literal.
var escaper = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Escape makes arbitrary user text safe for embedding in LaTeX source.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return escaper.Replace(text)
}
