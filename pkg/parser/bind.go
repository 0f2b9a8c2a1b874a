package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gkikola/optpp/pkg/option"
)

// ValueKind tags the payload carried by a Value.
type ValueKind int

// Value kinds.
const (
	// ValueNone marks the absence of a typed argument.
	ValueNone ValueKind = iota
	// ValueString carries a string payload.
	ValueString
	// ValueInt carries a signed integer payload.
	ValueInt
	// ValueUint carries an unsigned integer payload.
	ValueUint
	// ValueFloat carries a floating-point payload.
	ValueFloat
	// ValueBool carries a presence flag.
	ValueBool
)

// Value is the typed form of an option argument: a tag plus exactly one
// meaningful payload field. Using a tagged variant instead of re-inspecting
// the raw string keeps type decisions in one place, the binder.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int
	Uint  uint
	Float float64
	Bool  bool
}

// String renders the payload for diagnostics.
func (v Value) String() string {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueInt:
		return strconv.Itoa(v.Int)
	case ValueUint:
		return strconv.FormatUint(uint64(v.Uint), 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Numeric argument widths match the original C types the library binds to:
// 32-bit signed and unsigned integers, regardless of platform word size.
const (
	intArgBits  = 32
	maxUintArg  = math.MaxUint32
	bindArgFunc = "parser.bindArgument"
)

// bindArgument converts the raw argument text recorded in entry according to
// the descriptor's declared type, stores the typed value back into the entry,
// and commits it to any bound destination. Conversion failures name the
// option specifier exactly as written on the command line.
func bindArgument(entry *Entry, opt *option.Option) error {
	arg := entry.Argument
	name := entry.OriginalSpecifier

	switch opt.Type() {
	case option.ArgInt:
		v, err := strconv.ParseInt(arg, 10, intArgBits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return argRangeError(name)
			}
			return argTypeError(name, "must be an integer")
		}
		entry.Value = Value{Kind: ValueInt, Int: int(v)}
		opt.WriteInt(int(v))

	case option.ArgUint:
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				if strings.HasPrefix(arg, "-") {
					return argNegativeError(name)
				}
				return argRangeError(name)
			}
			return argTypeError(name, "must be an integer")
		}
		if v < 0 {
			return argNegativeError(name)
		}
		if v > maxUintArg {
			return argRangeError(name)
		}
		entry.Value = Value{Kind: ValueUint, Uint: uint(v)}
		opt.WriteUint(uint(v))

	case option.ArgFloat:
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return argTypeError(name, "must be a number")
		}
		entry.Value = Value{Kind: ValueFloat, Float: v}
		opt.WriteFloat(v)

	default:
		entry.Value = Value{Kind: ValueString, Str: arg}
		opt.WriteString(arg)
	}

	return nil
}

func argTypeError(name, requirement string) *ParseError {
	return newParseError(ErrArgumentType,
		fmt.Sprintf("argument for option '%s' %s", name, requirement),
		bindArgFunc, name)
}

func argNegativeError(name string) *ParseError {
	return argTypeError(name, "must not be negative")
}

func argRangeError(name string) *ParseError {
	return newParseError(ErrArgumentType,
		fmt.Sprintf("argument for option '%s' is out of range", name),
		bindArgFunc, name)
}
