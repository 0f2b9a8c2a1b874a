package parser

import (
	"fmt"
	"strings"
)

// tokenKind is the classification the state machine reports for one token.
// The driver loop uses it to decide whether the next token must be consumed
// as an argument.
type tokenKind int

const (
	// tokenNoArg: the token was fully consumed; no argument is pending.
	tokenNoArg tokenKind = iota
	// tokenArgRequired: the last staged entry needs an argument from the next
	// token.
	tokenArgRequired
	// tokenArgOptional: the last staged entry may take the next token as an
	// argument if it does not itself look like an option.
	tokenArgOptional
	// tokenEndMarker: the token is the end-of-options marker.
	tokenEndMarker
	// tokenOperand: the token is a plain operand.
	tokenOperand
)

const (
	classifyFunc   = "parser.classifyToken"
	shortGroupFunc = "parser.parseShortGroup"
)

// classifyToken decides what a single token means. It returns the entries the
// token produced, in order, together with the classification. The entries are
// staged: the driver commits them to the result only after any pending
// argument has been resolved, which keeps the state machine itself stateless
// across tokens.
func (p *Parser) classifyToken(token string) ([]Entry, tokenKind, error) {
	if token == p.syntax.EndOfOptions {
		return nil, tokenEndMarker, nil
	}

	// Split off an inline argument at the first assignment separator.
	specifier := token
	var inlineArg string
	assignmentFound := false
	if idx := strings.Index(token, p.syntax.Assignment); idx >= 0 {
		assignmentFound = true
		specifier = token[:idx]
		inlineArg = token[idx+len(p.syntax.Assignment):]

		// A bare prefix directly followed by the separator, like "-=" or
		// "--=", names no option at all.
		if specifier == p.syntax.ShortPrefix || specifier == p.syntax.LongPrefix {
			bad := specifier + p.syntax.Assignment
			return nil, tokenNoArg, newParseError(ErrSyntax,
				fmt.Sprintf("invalid option: '%s'", bad), classifyFunc, bad)
		}
	}

	switch {
	case p.syntax.isLongOption(specifier):
		entry, kind, err := p.classifyLong(token, specifier, inlineArg, assignmentFound)
		if err != nil {
			return nil, tokenNoArg, err
		}
		return []Entry{entry}, kind, nil

	case p.syntax.isShortGroup(specifier):
		return p.parseShortGroup(specifier[len(p.syntax.ShortPrefix):], inlineArg, assignmentFound)

	default:
		return []Entry{operandEntry(token)}, tokenOperand, nil
	}
}

// classifyLong handles a token whose specifier carries the long-option
// prefix.
func (p *Parser) classifyLong(token, specifier, inlineArg string, assignmentFound bool) (Entry, tokenKind, error) {
	name := specifier[len(p.syntax.LongPrefix):]
	opt, index := p.registry.LookupLong(name)
	if opt == nil {
		return Entry{}, tokenNoArg, newParseError(ErrUnknownOption,
			fmt.Sprintf("invalid option: '%s'", specifier), classifyFunc, specifier)
	}

	entry := Entry{
		OriginalText:      token,
		OriginalSpecifier: specifier,
		IsOption:          true,
		LongName:          name,
		ShortName:         opt.ShortName(),
		OptionIndex:       index,
	}

	kind := tokenNoArg
	switch {
	case opt.TakesArg() && assignmentFound:
		entry.Argument = inlineArg
		if err := bindArgument(&entry, opt); err != nil {
			return Entry{}, tokenNoArg, err
		}
	case opt.TakesArg():
		if opt.ArgRequired() {
			kind = tokenArgRequired
		} else {
			kind = tokenArgOptional
		}
	case assignmentFound:
		return Entry{}, tokenNoArg, newParseError(ErrUnexpectedArgument,
			fmt.Sprintf("option '%s' does not accept arguments", specifier),
			classifyFunc, specifier)
	}

	opt.WriteBool(true)
	return entry, kind, nil
}

// parseShortGroup scans a run of short option names left to right. The first
// argument-taking option that is not last in the group consumes the rest of
// the group as its argument, greedily, ending the scan.
func (p *Parser) parseShortGroup(shortNames, inlineArg string, assignmentFound bool) ([]Entry, tokenKind, error) {
	var entries []Entry
	names := []rune(shortNames)

	for pos, name := range names {
		opt, index := p.registry.LookupShort(name)
		specifier := p.syntax.ShortPrefix + string(name)
		if opt == nil {
			return nil, tokenNoArg, newParseError(ErrUnknownOption,
				fmt.Sprintf("invalid option: '%s'", specifier), shortGroupFunc, specifier)
		}

		entry := Entry{
			OriginalText:      specifier,
			OriginalSpecifier: specifier,
			IsOption:          true,
			LongName:          opt.LongName(),
			ShortName:         name,
			OptionIndex:       index,
		}

		if opt.TakesArg() {
			if pos+1 < len(names) {
				// Not the last name in the group: everything that follows,
				// including any inline-assignment text, is this option's
				// argument.
				arg := string(names[pos+1:])
				if assignmentFound {
					arg += p.syntax.Assignment + inlineArg
				}
				entry.Argument = arg
				entry.OriginalText += arg
				if err := bindArgument(&entry, opt); err != nil {
					return nil, tokenNoArg, err
				}
				opt.WriteBool(true)
				entries = append(entries, entry)
				return entries, tokenNoArg, nil
			}

			// Last name in the group: same rules as a long option.
			kind := tokenNoArg
			switch {
			case assignmentFound:
				entry.OriginalText += p.syntax.Assignment + inlineArg
				entry.Argument = inlineArg
				if err := bindArgument(&entry, opt); err != nil {
					return nil, tokenNoArg, err
				}
			case opt.ArgRequired():
				kind = tokenArgRequired
			default:
				kind = tokenArgOptional
			}
			opt.WriteBool(true)
			entries = append(entries, entry)
			return entries, kind, nil
		}

		// Takes no argument, but an inline assignment with no remaining
		// argument-taking option means the text after the separator belongs
		// to no one. The error names the last character scanned.
		if pos+1 == len(names) && assignmentFound {
			return nil, tokenNoArg, newParseError(ErrUnexpectedArgument,
				fmt.Sprintf("option '%s' does not accept arguments", specifier),
				shortGroupFunc, specifier)
		}

		opt.WriteBool(true)
		entries = append(entries, entry)
	}

	return entries, tokenNoArg, nil
}

func operandEntry(token string) Entry {
	return Entry{
		OriginalText: token,
		OptionIndex:  -1,
	}
}
