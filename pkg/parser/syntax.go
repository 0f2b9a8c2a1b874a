package parser

import (
	"fmt"
	"strings"
)

// Default syntax strings, matching conventional getopt-style command lines.
const (
	DefaultShortPrefix  = "-"
	DefaultLongPrefix   = "--"
	DefaultAssignment   = "="
	DefaultEndOfOptions = "--"
	DefaultDelims       = " \t\n\r\v\f"
)

// Syntax holds the strings that give command-line tokens their meaning: the
// prefixes that introduce short and long options, the separator for inline
// arguments, the end-of-options marker, and the delimiter set used when a
// whole command line is split into tokens.
type Syntax struct {
	// ShortPrefix introduces a short option or option group, "-" by default.
	ShortPrefix string
	// LongPrefix introduces a long option, "--" by default.
	LongPrefix string
	// Assignment separates a specifier from its inline argument, "=" by
	// default.
	Assignment string
	// EndOfOptions terminates option parsing when it appears alone as a
	// token, "--" by default.
	EndOfOptions string
	// Delims is the set of characters that separate tokens when parsing a
	// single command-line string. Defaults to ASCII whitespace.
	Delims string
}

// DefaultSyntax returns the conventional getopt-style syntax.
func DefaultSyntax() Syntax {
	return Syntax{
		ShortPrefix:  DefaultShortPrefix,
		LongPrefix:   DefaultLongPrefix,
		Assignment:   DefaultAssignment,
		EndOfOptions: DefaultEndOfOptions,
		Delims:       DefaultDelims,
	}
}

// Validate checks that the syntax strings are usable: none may be empty and
// the short and long prefixes must be distinguishable. Ambiguous syntax is
// rejected here, eagerly, rather than producing undefined parses later.
func (s Syntax) Validate() error {
	if s.ShortPrefix == "" {
		return fmt.Errorf("short option prefix must not be empty")
	}
	if s.LongPrefix == "" {
		return fmt.Errorf("long option prefix must not be empty")
	}
	if s.Assignment == "" {
		return fmt.Errorf("assignment separator must not be empty")
	}
	if s.EndOfOptions == "" {
		return fmt.Errorf("end-of-options marker must not be empty")
	}
	if s.Delims == "" {
		return fmt.Errorf("delimiter set must not be empty")
	}
	if s.ShortPrefix == s.LongPrefix {
		return fmt.Errorf("short and long option prefixes must differ")
	}
	return nil
}

// isLongOption reports whether the specifier names a long option: it carries
// the long prefix and has at least one character after it.
func (s Syntax) isLongOption(specifier string) bool {
	return len(specifier) > len(s.LongPrefix) &&
		strings.HasPrefix(specifier, s.LongPrefix)
}

// isShortGroup reports whether the specifier is a short option or group of
// short options. Long options are checked first by the caller; a bare prefix
// with nothing after it is an operand, not a group.
func (s Syntax) isShortGroup(specifier string) bool {
	return len(specifier) > len(s.ShortPrefix) &&
		strings.HasPrefix(specifier, s.ShortPrefix)
}

// looksLikeOption reports whether a token would be classified as an option or
// the end-of-options marker. The optional-argument lookahead uses this to
// decide whether the next token may be consumed as an argument.
func (s Syntax) looksLikeOption(token string) bool {
	return token == s.EndOfOptions || s.isLongOption(token) || s.isShortGroup(token)
}
