package ics

import "strings"

// Escape protects the four reserved characters of the event file format:
// backslash, semicolon, comma, and newline. The backslash must be
// rewritten first or the output becomes ambiguous. No other characters
// are touched; control characters other than newline pass through.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `;`, `\;`)
	s = strings.ReplaceAll(s, `,`, `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// Unescape applies the exact inverse of Escape, in reverse order.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\,`, `,`)
	s = strings.ReplaceAll(s, `\;`, `;`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
