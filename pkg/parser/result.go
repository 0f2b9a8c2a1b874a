package parser

import (
	"fmt"
	"iter"
)

// Entry is one observation produced by parsing: a recognized option together
// with its argument, or a plain operand. Entries refer back to their
// descriptor by registration index rather than by pointer, so a result stays
// meaningful even if the caller rebuilds the registry, as long as indices are
// interpreted against the registry that produced the result.
type Entry struct {
	// OriginalText is the token exactly as it appeared on the command line,
	// including a separately consumed argument when one was taken.
	OriginalText string
	// OriginalSpecifier is the option specifier portion of the token, prefix
	// included, without any argument. Empty for operands.
	OriginalSpecifier string
	// IsOption distinguishes recognized options from operands.
	IsOption bool
	// LongName and ShortName identify the matched descriptor; one may be
	// absent. Both are zero for operands.
	LongName  string
	ShortName rune
	// OptionIndex is the descriptor's registration index in the registry the
	// parse ran against, or -1 for operands.
	OptionIndex int
	// Argument is the raw argument text bound to the option, "" if none.
	Argument string
	// Value is the typed form of Argument. Its kind is ValueNone when the
	// option carried no argument and for operands.
	Value Value
}

// Result is the outcome of one parse invocation: the ordered sequence of
// entries (insertion order is command-line encounter order) and the ordered
// list of operands, which includes the program name when one was supplied.
// A Result is append-only during parsing and is not written to by the parser
// after the parse call returns.
type Result struct {
	entries  []Entry
	operands []string
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{}
}

// Len returns the number of entries.
func (r *Result) Len() int { return len(r.entries) }

// Empty reports whether the result holds no entries.
func (r *Result) Empty() bool { return len(r.entries) == 0 }

// Entries returns the entries in encounter order.
func (r *Result) Entries() []Entry { return r.entries }

// Operands returns the non-option tokens in encounter order.
func (r *Result) Operands() []string { return r.operands }

// At returns the entry at index i, or an error when i is out of bounds.
func (r *Result) At(i int) (Entry, error) {
	if i < 0 || i >= len(r.entries) {
		return Entry{}, fmt.Errorf("entry index %d out of range [0, %d)", i, len(r.entries))
	}
	return r.entries[i], nil
}

// Get returns the entry at index i without bounds checking beyond the
// runtime's own; callers who have validated i can skip the error path of At.
func (r *Result) Get(i int) Entry { return r.entries[i] }

// All iterates over the entries in encounter order.
func (r *Result) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range r.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Backward iterates over the entries in reverse encounter order.
func (r *Result) Backward() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i := len(r.entries) - 1; i >= 0; i-- {
			if !yield(i, r.entries[i]) {
				return
			}
		}
	}
}

// FindLong returns the first entry matching the given long name, or false
// when the option did not occur.
func (r *Result) FindLong(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.IsOption && e.LongName == name {
			return e, true
		}
	}
	return Entry{}, false
}

// FindShort returns the first entry matching the given short name, or false
// when the option did not occur.
func (r *Result) FindShort(name rune) (Entry, bool) {
	for _, e := range r.entries {
		if e.IsOption && e.ShortName == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Reset clears all entries and operands. Individual entries are never
// removed; clearing everything is the only mutation a Result supports.
func (r *Result) Reset() {
	r.entries = r.entries[:0]
	r.operands = r.operands[:0]
}

func (r *Result) pushEntry(e Entry) {
	r.entries = append(r.entries, e)
}

func (r *Result) pushOperand(text string) {
	r.operands = append(r.operands, text)
}

// lastEntry returns a pointer to the most recently appended entry. Only the
// driver loop uses this, to fill in a separately consumed argument.
func (r *Result) lastEntry() *Entry {
	return &r.entries[len(r.entries)-1]
}
