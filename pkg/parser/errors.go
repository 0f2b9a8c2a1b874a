package parser

// ErrorKind classifies a parse failure.
type ErrorKind int

// Parse error kinds.
const (
	// ErrUnknownOption marks a short or long specifier that is not registered.
	ErrUnknownOption ErrorKind = iota
	// ErrUnexpectedArgument marks an argument supplied to an option that takes
	// none.
	ErrUnexpectedArgument
	// ErrMissingArgument marks a required-argument option with no argument
	// available.
	ErrMissingArgument
	// ErrArgumentType marks an argument that failed type conversion or fell
	// outside the representable range.
	ErrArgumentType
	// ErrSyntax marks a malformed specifier, such as a bare prefix followed
	// directly by the assignment separator.
	ErrSyntax
)

// String returns a stable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownOption:
		return "unknown option"
	case ErrUnexpectedArgument:
		return "unexpected argument"
	case ErrMissingArgument:
		return "missing argument"
	case ErrArgumentType:
		return "argument type error"
	case ErrSyntax:
		return "syntax error"
	default:
		return "parse error"
	}
}

// ParseError is the typed error returned for any failure detected while
// parsing. Token holds the offending text exactly as it appeared on the
// command line, and Function names the routine that detected the problem.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Function string
	Token    string
}

// Error returns the human-readable message.
func (e *ParseError) Error() string { return e.Message }

// Is reports whether target is a ParseError of the same kind, so callers can
// match kinds with errors.Is using a bare &ParseError{Kind: ...} sentinel.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Token == "" || t.Token == e.Token)
}

func newParseError(kind ErrorKind, msg, fn, token string) *ParseError {
	return &ParseError{Kind: kind, Message: msg, Function: fn, Token: token}
}
