// Package option defines command-line option descriptors and the registry
// that stores them. Descriptors are created with a fluent builder and looked
// up by short or long name during parsing.
package option

// ArgType identifies the declared type of an option's argument. The type
// controls how the parser converts the raw argument text before committing it
// to the result and to any bound destination.
type ArgType int

// Argument types supported by the binder.
const (
	// ArgString accepts the argument text verbatim, including the empty string.
	ArgString ArgType = iota
	// ArgInt requires a base-10 signed integer.
	ArgInt
	// ArgUint requires a base-10 non-negative integer.
	ArgUint
	// ArgFloat requires a decimal number.
	ArgFloat
	// ArgBool marks a presence flag: the option takes no argument text and its
	// occurrence alone sets the bound value to true.
	ArgBool
)

// String returns the schema name of the argument type.
func (t ArgType) String() string {
	switch t {
	case ArgInt:
		return "int"
	case ArgUint:
		return "uint"
	case ArgFloat:
		return "float"
	case ArgBool:
		return "bool"
	default:
		return "string"
	}
}

// Option describes a single command-line option: its names, its argument
// requirements, and its help text. An Option must have a short name, a long
// name, or both. Fields are set through the builder methods and are not meant
// to change after the option has been handed to a parser.
type Option struct {
	longName    string
	shortName   rune
	description string
	argName     string
	argRequired bool
	argType     ArgType

	// Bound destinations, written by the parser when the option is seen.
	boundString *string
	boundInt    *int
	boundUint   *uint
	boundFloat  *float64
	boundBool   *bool
}

// New creates an option with the given long and short names. Either name may
// be empty (long) or zero (short), but not both.
func New(longName string, shortName rune) *Option {
	return &Option{longName: longName, shortName: shortName}
}

// LongName returns the option's long name, or "" if it has none.
func (o *Option) LongName() string { return o.longName }

// ShortName returns the option's short name, or 0 if it has none.
func (o *Option) ShortName() rune { return o.shortName }

// Description returns the option's help text.
func (o *Option) Description() string { return o.description }

// ArgName returns the name of the option's argument as shown in help text.
// An empty name means the option takes no argument.
func (o *Option) ArgName() string { return o.argName }

// TakesArg reports whether the option accepts an argument.
func (o *Option) TakesArg() bool { return o.argName != "" }

// ArgRequired reports whether the option's argument is mandatory. The value
// is only meaningful when TakesArg is true.
func (o *Option) ArgRequired() bool { return o.argRequired }

// Type returns the declared argument type.
func (o *Option) Type() ArgType { return o.argType }

// WithDescription sets the help text and returns the option.
func (o *Option) WithDescription(desc string) *Option {
	o.description = desc
	return o
}

// WithArg declares that the option takes an argument with the given display
// name. If required is false the argument is optional.
func (o *Option) WithArg(name string, required bool) *Option {
	o.argName = name
	o.argRequired = required
	return o
}

// WithType sets the declared argument type without binding a destination.
func (o *Option) WithType(t ArgType) *Option {
	o.argType = t
	return o
}

// BindString binds the option's argument to dest and declares the argument
// type as string.
func (o *Option) BindString(dest *string) *Option {
	o.boundString = dest
	o.argType = ArgString
	return o
}

// BindInt binds the option's argument to dest and declares the argument type
// as a signed integer.
func (o *Option) BindInt(dest *int) *Option {
	o.boundInt = dest
	o.argType = ArgInt
	return o
}

// BindUint binds the option's argument to dest and declares the argument type
// as an unsigned integer.
func (o *Option) BindUint(dest *uint) *Option {
	o.boundUint = dest
	o.argType = ArgUint
	return o
}

// BindFloat binds the option's argument to dest and declares the argument
// type as a floating-point number.
func (o *Option) BindFloat(dest *float64) *Option {
	o.boundFloat = dest
	o.argType = ArgFloat
	return o
}

// BindBool binds the option's presence to dest. The destination is set to
// true whenever the option occurs on the command line, independent of any
// argument.
func (o *Option) BindBool(dest *bool) *Option {
	o.boundBool = dest
	return o
}

// WriteString commits a string value to the bound destination, if any.
func (o *Option) WriteString(v string) {
	if o.boundString != nil {
		*o.boundString = v
	}
}

// WriteInt commits an integer value to the bound destination, if any.
func (o *Option) WriteInt(v int) {
	if o.boundInt != nil {
		*o.boundInt = v
	}
}

// WriteUint commits an unsigned value to the bound destination, if any.
func (o *Option) WriteUint(v uint) {
	if o.boundUint != nil {
		*o.boundUint = v
	}
}

// WriteFloat commits a float value to the bound destination, if any.
func (o *Option) WriteFloat(v float64) {
	if o.boundFloat != nil {
		*o.boundFloat = v
	}
}

// WriteBool commits a presence value to the bound destination, if any.
func (o *Option) WriteBool(v bool) {
	if o.boundBool != nil {
		*o.boundBool = v
	}
}
