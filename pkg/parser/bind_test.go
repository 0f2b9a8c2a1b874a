package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkikola/optpp/pkg/option"
)

// typedRegistry declares one option per argument type.
func typedRegistry() *option.Registry {
	reg := option.NewRegistry()
	reg.Add(option.New("name", 'n').WithArg("NAME", true).WithType(option.ArgString))
	reg.Add(option.New("count", 'c').WithArg("N", true).WithType(option.ArgInt))
	reg.Add(option.New("size", 's').WithArg("N", true).WithType(option.ArgUint))
	reg.Add(option.New("ratio", 'r').WithArg("X", true).WithType(option.ArgFloat))
	reg.Add(option.New("verbose", 'v').WithType(option.ArgBool))
	return reg
}

func TestBind_TypedValues(t *testing.T) {
	p := New(typedRegistry())

	tests := []struct {
		name string
		args []string
		want Value
	}{
		{"string value", []string{"--name=hello"}, Value{Kind: ValueString, Str: "hello"}},
		{"empty string value", []string{"--name="}, Value{Kind: ValueString}},
		{"positive int", []string{"--count=42"}, Value{Kind: ValueInt, Int: 42}},
		{"negative int", []string{"--count=-42"}, Value{Kind: ValueInt, Int: -42}},
		{"explicit plus sign", []string{"--count=+7"}, Value{Kind: ValueInt, Int: 7}},
		{"uint value", []string{"--size=4096"}, Value{Kind: ValueUint, Uint: 4096}},
		{"uint zero", []string{"--size=0"}, Value{Kind: ValueUint, Uint: 0}},
		{"float value", []string{"--ratio=2.5"}, Value{Kind: ValueFloat, Float: 2.5}},
		{"float scientific", []string{"--ratio=1.5e2"}, Value{Kind: ValueFloat, Float: 150}},
		{"float integer form", []string{"--ratio=3"}, Value{Kind: ValueFloat, Float: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.Parse(tt.args, false)
			require.NoError(t, err)
			require.Equal(t, 1, result.Len())
			assert.Equal(t, tt.want, result.Get(0).Value)
		})
	}
}

func TestBind_ConversionFailures(t *testing.T) {
	p := New(typedRegistry())

	tests := []struct {
		name    string
		args    []string
		token   string
		message string
	}{
		{"int junk", []string{"--count=abc"}, "--count", "must be an integer"},
		{"int trailing characters", []string{"--count=12x"}, "--count", "must be an integer"},
		{"int out of range", []string{"--count=99999999999"}, "--count", "out of range"},
		{"int below range", []string{"--count=-99999999999"}, "--count", "out of range"},
		{"uint negative", []string{"--size=-5"}, "--size", "must not be negative"},
		{"uint junk", []string{"--size=abc"}, "--size", "must be an integer"},
		{"uint out of range", []string{"--size=5000000000"}, "--size", "out of range"},
		{"uint hugely negative", []string{"--size=-99999999999999999999"}, "--size", "must not be negative"},
		{"float junk", []string{"--ratio=abc"}, "--ratio", "must be a number"},
		{"float trailing characters", []string{"--ratio=1.5x"}, "--ratio", "must be a number"},
		{"short specifier in message", []string{"-c", "abc"}, "-c", "must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.args, false)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, ErrArgumentType, pe.Kind)
			assert.Equal(t, tt.token, pe.Token)
			assert.Contains(t, pe.Error(), tt.message)
			assert.Contains(t, pe.Error(), tt.token)
		})
	}
}

func TestBind_NegativeCheckedBeforeRange(t *testing.T) {
	p := New(typedRegistry())

	// A negative value beyond the unsigned range still reports negativity,
	// not range.
	_, err := p.Parse([]string{"--size=-5000000000"}, false)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Error(), "must not be negative")
}

func TestBind_PresenceFlag(t *testing.T) {
	reg := option.NewRegistry()
	var seen bool
	reg.Add(option.New("verbose", 'v').BindBool(&seen))
	p := New(reg)

	result, err := p.Parse([]string{"--verbose"}, false)
	require.NoError(t, err)
	assert.True(t, seen)

	entry := result.Get(0)
	assert.Equal(t, ValueNone, entry.Value.Kind)
	assert.Empty(t, entry.Argument)
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"none", Value{}, ""},
		{"string", Value{Kind: ValueString, Str: "x"}, "x"},
		{"int", Value{Kind: ValueInt, Int: -3}, "-3"},
		{"uint", Value{Kind: ValueUint, Uint: 7}, "7"},
		{"float", Value{Kind: ValueFloat, Float: 2.5}, "2.5"},
		{"bool", Value{Kind: ValueBool, Bool: true}, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}
