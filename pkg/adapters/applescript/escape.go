package applescript

import "strings"

// EscapeDoubleQuotes prepares text for an AppleScript string literal.
// Only double quotes are escaped; newlines, backslashes and control
// characters pass through untouched.
func EscapeDoubleQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// jsonEscape is one step of the bulk escape sequence.
type jsonEscape struct {
	char        string // character as it appears in note text
	scriptToken string // AppleScript expression evaluating to char
	replacement string // JSON escape sequence written in its place
}

// jsonEscapes is applied in order. Backslash must come first so the
// backslashes introduced by later steps are not escaped twice.
var jsonEscapes = []jsonEscape{
	{char: `\`, scriptToken: `"\\"`, replacement: `\\`},
	{char: `"`, scriptToken: `"\""`, replacement: `\"`},
	{char: "\r", scriptToken: "return", replacement: `\r`},
	{char: "\n", scriptToken: "linefeed", replacement: `\n`},
	{char: "\t", scriptToken: "tab", replacement: `\t`},
}

// EscapeJSONText applies the bulk escape sequence in Go. It produces the
// same text the enumeration script builds inside the host.
func EscapeJSONText(s string) string {
	for _, e := range jsonEscapes {
		s = strings.ReplaceAll(s, e.char, e.replacement)
	}
	return s
}

// scriptLiteral renders s as a complete AppleScript string literal.
func scriptLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + EscapeDoubleQuotes(s) + `"`
}
