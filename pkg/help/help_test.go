package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkikola/optpp/internal/testutils"
	"github.com/gkikola/optpp/pkg/option"
	"github.com/gkikola/optpp/pkg/parser"
)

func newFormatter() *Formatter {
	return NewFormatter(DefaultConfig(), parser.DefaultSyntax())
}

// usageLine pads usage out to the description column and appends desc, the
// layout the formatter produces when both fit on one line.
func usageLine(usage, desc string) string {
	return usage + strings.Repeat(" ", DefaultDescFirstLineIndent-len(usage)) + desc
}

func TestFormat_UsageColumn(t *testing.T) {
	reg := option.NewRegistry()
	reg.Add(option.New("all", 'a').WithDescription("list all files"))
	reg.Add(option.New("block-size", 0).WithArg("SIZE", true).WithDescription("scale sizes by SIZE"))
	reg.Add(option.New("", 'P').WithArg("PROMPT", false).WithDescription("use custom prompt"))
	reg.Add(option.New("version", 0))

	want := strings.Join([]string{
		usageLine("  -a, --all", "list all files"),
		usageLine("      --block-size=SIZE", "scale sizes by SIZE"),
		usageLine("  -P[=PROMPT]", "use custom prompt"),
		"      --version",
	}, "\n")

	testutils.AssertTextEqual(t, want, newFormatter().Format(reg))
}

func TestFormat_GroupHeadings(t *testing.T) {
	reg := option.NewRegistry()
	reg.AddToGroup("Output options:", option.New("verbose", 'v').WithDescription("print extra detail"))
	reg.AddToGroup("Input options:", option.New("file", 'f').WithArg("FILE", true).WithDescription("read from FILE"))

	want := strings.Join([]string{
		"Output options:",
		usageLine("  -v, --verbose", "print extra detail"),
		"",
		"Input options:",
		usageLine("  -f, --file=FILE", "read from FILE"),
	}, "\n")

	testutils.AssertTextEqual(t, want, newFormatter().Format(reg))
}

func TestFormat_EmptyGroupsSkipped(t *testing.T) {
	reg := option.NewRegistry()
	reg.Group("Empty heading")
	reg.Add(option.New("quiet", 'q').WithDescription("quiet mode"))

	got := newFormatter().Format(reg)
	assert.NotContains(t, got, "Empty heading")
	assert.Contains(t, got, "--quiet")
}

func TestFormat_LongDescriptionWraps(t *testing.T) {
	reg := option.NewRegistry()
	reg.Add(option.New("color", 'c').WithArg("WHEN", true).WithDescription(
		"colorize the output; WHEN can be always, auto, or never, and defaults to auto when writing to a terminal"))

	got := newFormatter().Format(reg)
	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 1)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), DefaultMaxLineLength)
	}
	assert.True(t, strings.HasPrefix(lines[0], "  -c, --color=WHEN"))
	for _, cont := range lines[1:] {
		assert.True(t, strings.HasPrefix(cont, strings.Repeat(" ", DefaultDescMultilineIndent)))
	}
}

func TestFormat_WideUsageColumnPushesDescriptionDown(t *testing.T) {
	reg := option.NewRegistry()
	reg.Add(option.New("extremely-long-option-name", 'x').
		WithArg("VALUE", true).
		WithDescription("does something"))

	got := newFormatter().Format(reg)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  -x, --extremely-long-option-name=VALUE", lines[0])
	assert.Equal(t, strings.Repeat(" ", DefaultDescFirstLineIndent)+"does something", lines[1])
}

func TestFormat_CustomSyntaxStrings(t *testing.T) {
	syntax := parser.DefaultSyntax()
	syntax.ShortPrefix = "+"
	syntax.LongPrefix = "++"
	syntax.Assignment = ":"

	reg := option.NewRegistry()
	reg.Add(option.New("file", 'f').WithArg("FILE", true).WithDescription("read from FILE"))

	got := NewFormatter(DefaultConfig(), syntax).Format(reg)
	assert.Contains(t, got, "+f, ++file:FILE")
}

func TestWrite(t *testing.T) {
	reg := option.NewRegistry()
	reg.Add(option.New("quiet", 'q').WithDescription("quiet mode"))

	var out strings.Builder
	require.NoError(t, newFormatter().Write(&out, reg))
	assert.Equal(t, newFormatter().Format(reg), out.String())
}
