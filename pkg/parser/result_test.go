package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	r := NewResult()
	r.pushEntry(Entry{OriginalText: "--version", OriginalSpecifier: "--version", IsOption: true, LongName: "version", OptionIndex: 0})
	r.pushEntry(Entry{OriginalText: "-?", OriginalSpecifier: "-?", IsOption: true, LongName: "help", ShortName: '?', OptionIndex: 1})
	r.pushEntry(Entry{OriginalText: "command", OptionIndex: -1})
	r.pushEntry(Entry{OriginalText: "-f myfile.txt", OriginalSpecifier: "-f", IsOption: true, LongName: "file", ShortName: 'f', OptionIndex: 2, Argument: "myfile.txt"})
	r.pushOperand("command")
	return r
}

func TestResult_SizeAndEmptiness(t *testing.T) {
	r := NewResult()
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Len())

	r = sampleResult()
	assert.False(t, r.Empty())
	assert.Equal(t, 4, r.Len())
}

func TestResult_ForwardAndReverseTraversal(t *testing.T) {
	r := sampleResult()
	order := []string{"--version", "-?", "command", "-f myfile.txt"}

	var forward []string
	for _, e := range r.All() {
		forward = append(forward, e.OriginalText)
	}
	assert.Equal(t, order, forward)

	var backward []string
	for _, e := range r.Backward() {
		backward = append(backward, e.OriginalText)
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	assert.Equal(t, order, backward)
}

func TestResult_IndexedAccess(t *testing.T) {
	r := sampleResult()

	entry, err := r.At(0)
	require.NoError(t, err)
	assert.Equal(t, "--version", entry.OriginalText)

	entry, err = r.At(3)
	require.NoError(t, err)
	assert.Equal(t, "-f myfile.txt", entry.OriginalText)

	_, err = r.At(4)
	assert.Error(t, err)
	_, err = r.At(-1)
	assert.Error(t, err)

	assert.Equal(t, "command", r.Get(2).OriginalText)
}

func TestResult_Find(t *testing.T) {
	r := sampleResult()

	entry, ok := r.FindLong("file")
	require.True(t, ok)
	assert.Equal(t, "myfile.txt", entry.Argument)

	entry, ok = r.FindShort('?')
	require.True(t, ok)
	assert.Equal(t, "help", entry.LongName)

	_, ok = r.FindLong("missing")
	assert.False(t, ok)
	_, ok = r.FindShort('x')
	assert.False(t, ok)

	// Operands are never matched by name lookups.
	_, ok = r.FindLong("command")
	assert.False(t, ok)
}

func TestResult_Reset(t *testing.T) {
	r := sampleResult()
	require.False(t, r.Empty())
	require.NotEmpty(t, r.Operands())

	r.Reset()
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Operands())

	r.pushEntry(Entry{OriginalText: "x", OptionIndex: -1})
	assert.Equal(t, 1, r.Len())
}
