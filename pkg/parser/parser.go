// Package parser implements a getopt-style command-line parser. It reads a
// sequence of raw tokens against a registry of option descriptors and
// produces an ordered result of recognized options and plain operands,
// handling grouped short options, inline and separate arguments, optional
// arguments, and typed argument conversion.
package parser

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/gkikola/optpp/internal/logger"
	"github.com/gkikola/optpp/internal/stringprocessing"
	"github.com/gkikola/optpp/pkg/option"
)

const parseFunc = "parser.Parse"

// Parser converts raw command-line tokens into a Result according to a
// registered option schema. One Parser may serve many Parse calls; each call
// builds a fresh Result. Concurrent Parse calls are safe as long as the
// registry is not mutated while any of them runs.
type Parser struct {
	registry     *option.Registry
	syntax       Syntax
	allowUnknown bool
	allowBadArgs bool
	logger       *log.Logger
}

// New creates a parser over the given registry with default syntax. A nil
// registry is replaced with an empty one.
func New(registry *option.Registry) *Parser {
	if registry == nil {
		registry = option.NewRegistry()
	}
	return &Parser{
		registry: registry,
		syntax:   DefaultSyntax(),
		logger:   logger.NewStyledLogger("Parser"),
	}
}

// Registry returns the option registry the parser reads from.
func (p *Parser) Registry() *option.Registry { return p.registry }

// Add registers an option in the parser's registry and returns it, so a
// schema can be built directly on the parser:
//
//	p.Add("verbose", 'v').WithDescription("print extra detail")
func (p *Parser) Add(longName string, shortName rune) *option.Option {
	return p.registry.Add(option.New(longName, shortName))
}

// Syntax returns the parser's current syntax configuration.
func (p *Parser) Syntax() Syntax { return p.syntax }

// SetSyntax replaces the syntax configuration. Empty fields keep their
// current values; the merged result is validated before it takes effect, so
// an ambiguous configuration is rejected here rather than producing undefined
// parses later.
func (p *Parser) SetSyntax(s Syntax) error {
	merged := p.syntax
	if s.ShortPrefix != "" {
		merged.ShortPrefix = s.ShortPrefix
	}
	if s.LongPrefix != "" {
		merged.LongPrefix = s.LongPrefix
	}
	if s.Assignment != "" {
		merged.Assignment = s.Assignment
	}
	if s.EndOfOptions != "" {
		merged.EndOfOptions = s.EndOfOptions
	}
	if s.Delims != "" {
		merged.Delims = s.Delims
	}
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("invalid syntax configuration: %w", err)
	}
	p.syntax = merged
	return nil
}

// AllowUnknown controls tolerance for unrecognized options. When enabled, a
// token that would fail with an unknown-option error is recorded as an
// operand instead.
func (p *Parser) AllowUnknown(allow bool) { p.allowUnknown = allow }

// AllowBadArgs controls tolerance for malformed option arguments. When
// enabled, a token whose argument fails type conversion is recorded as an
// operand instead of aborting the parse.
func (p *Parser) AllowBadArgs(allow bool) { p.allowBadArgs = allow }

// Parse reads the token sequence and returns the parse result, or the first
// error detected. When ignoreFirst is true the first token is taken as the
// program name: it is recorded in the operand list but never interpreted as
// an option.
//
// The driver loop here owns the one token of lookahead the grammar needs:
// classifyToken reports whether the current token left an argument pending,
// and this loop decides whether the next token is consumed to satisfy it. A
// required argument must be satisfied; an optional one is taken only when the
// next token does not itself look like an option and is not the
// end-of-options marker.
func (p *Parser) Parse(args []string, ignoreFirst bool) (*Result, error) {
	result := NewResult()
	tokens := args
	if ignoreFirst && len(tokens) > 0 {
		result.pushOperand(tokens[0])
		tokens = tokens[1:]
	}
	p.logger.Debug("parse start", "tokens", len(tokens))

	seenEnd := false
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		// Everything after the end-of-options marker is an operand, even if
		// it looks like an option.
		if seenEnd {
			p.commitOperand(result, token)
			continue
		}

		entries, kind, err := p.classifyToken(token)
		if err != nil {
			if p.tolerated(err) {
				p.logger.Debug("tolerated token", "token", token, "error", err)
				p.commitOperand(result, token)
				continue
			}
			return nil, err
		}

		switch kind {
		case tokenEndMarker:
			seenEnd = true
			continue

		case tokenArgRequired, tokenArgOptional:
			pending := &entries[len(entries)-1]
			next, consumed, err := p.resolvePendingArg(pending, kind, tokens, i)
			if err != nil {
				if p.tolerated(err) {
					p.logger.Debug("tolerated token", "token", token, "error", err)
					p.commitOperand(result, token)
					if consumed {
						p.commitOperand(result, next)
						i++
					}
					continue
				}
				return nil, err
			}
			if consumed {
				i++
			}
		}

		for _, e := range entries {
			result.pushEntry(e)
			if !e.IsOption {
				result.pushOperand(e.OriginalText)
			}
		}
	}

	p.logger.Debug("parse done", "entries", result.Len(), "operands", len(result.Operands()))
	return result, nil
}

// ParseString splits a whole command line into tokens using the configured
// delimiter set, honoring quoting with " and ' and escaping with \, and then
// parses the tokens.
func (p *Parser) ParseString(cmdLine string, ignoreFirst bool) (*Result, error) {
	tokens := stringprocessing.SplitCommandLine(cmdLine, p.syntax.Delims)
	return p.Parse(tokens, ignoreFirst)
}

// resolvePendingArg applies the lookahead rule for an entry that is still
// waiting for its argument. It reports the consumed token, whether the cursor
// should advance, and any error.
func (p *Parser) resolvePendingArg(pending *Entry, kind tokenKind, tokens []string, i int) (string, bool, error) {
	var next string
	hasNext := i+1 < len(tokens)
	if hasNext {
		next = tokens[i+1]
	}

	if hasNext && !p.syntax.looksLikeOption(next) {
		pending.Argument = next
		pending.OriginalText += " " + next
		opt := p.registry.At(pending.OptionIndex)
		if err := bindArgument(pending, opt); err != nil {
			return next, true, err
		}
		return next, true, nil
	}

	if kind == tokenArgRequired {
		return "", false, newParseError(ErrMissingArgument,
			fmt.Sprintf("option '%s' requires an argument", pending.OriginalSpecifier),
			parseFunc, pending.OriginalSpecifier)
	}

	// Optional argument with no usable next token: the option stands alone.
	return "", false, nil
}

// tolerated reports whether the configured tolerance flags demote err from an
// abort into treat-as-operand.
func (p *Parser) tolerated(err error) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}
	switch pe.Kind {
	case ErrUnknownOption:
		return p.allowUnknown
	case ErrArgumentType:
		return p.allowBadArgs
	default:
		return false
	}
}

func (p *Parser) commitOperand(result *Result, token string) {
	result.pushEntry(operandEntry(token))
	result.pushOperand(token)
}
