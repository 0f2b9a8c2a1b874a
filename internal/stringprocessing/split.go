// Package stringprocessing provides the text utilities behind command-line
// parsing and help rendering: splitting a raw command line into tokens with
// quoting and escaping, and wrapping text to a line width with indentation.
package stringprocessing

import "strings"

// Quoting characters recognized by the splitter.
const (
	quoteChars = `"'`
	escapeChar = '\\'
)

// SplitCommandLine splits a command-line string into tokens on the given
// delimiter characters. Segments enclosed in double or single quotes are kept
// atomic even when they contain delimiters, and a backslash escapes the
// following character. Quote and escape characters themselves are removed
// from the tokens. Consecutive delimiters produce no empty tokens, but an
// empty quoted string ("") does produce one.
func SplitCommandLine(s, delims string) []string {
	var tokens []string
	var current strings.Builder
	inToken := false
	escaped := false
	var quote rune // 0 when outside quotes

	for _, c := range s {
		switch {
		case escaped:
			current.WriteRune(c)
			escaped = false
		case c == escapeChar:
			escaped = true
			inToken = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				current.WriteRune(c)
			}
		case strings.ContainsRune(quoteChars, c):
			quote = c
			inToken = true
		case strings.ContainsRune(delims, c):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(c)
			inToken = true
		}
	}

	// A trailing escape character stands for itself.
	if escaped {
		current.WriteRune(escapeChar)
		inToken = true
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens
}
