package stringprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommandLine(t *testing.T) {
	const delims = " \t\n\r\v\f"

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", nil},
		{"only delimiters", "   \t  ", nil},
		{"single token", "prog", []string{"prog"}},
		{"plain tokens", "prog -a file.txt", []string{"prog", "-a", "file.txt"}},
		{"consecutive delimiters collapse", "a   b\t\tc", []string{"a", "b", "c"}},
		{"leading and trailing delimiters", "  a b  ", []string{"a", "b"}},
		{"double quoted token", `a "b c" d`, []string{"a", "b c", "d"}},
		{"single quoted token", `a 'b c' d`, []string{"a", "b c", "d"}},
		{"quotes join adjacent text", `--name="two words"`, []string{"--name=two words"}},
		{"quote inside other quote kind", `"it's fine"`, []string{"it's fine"}},
		{"empty quoted token", `a "" b`, []string{"a", "", "b"}},
		{"escaped delimiter", `a\ b c`, []string{"a b", "c"}},
		{"escaped quote", `\"quoted\"`, []string{`"quoted"`}},
		{"escape inside quotes", `"a\"b"`, []string{`a"b`}},
		{"trailing escape stands alone", `a \`, []string{"a", `\`}},
		{"unterminated quote runs to end", `a "b c`, []string{"a", "b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCommandLine(tt.input, delims))
		})
	}
}

func TestSplitCommandLine_CustomDelims(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitCommandLine("a,b,,c", ","))
	assert.Equal(t, []string{"a,b"}, SplitCommandLine(`"a,b"`, ","))
}
