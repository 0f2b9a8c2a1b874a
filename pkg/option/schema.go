package option

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is the on-disk representation of an option table. It lets a program
// keep its option definitions in a YAML document instead of building them in
// code:
//
//	groups:
//	  - name: Output options
//	    options:
//	      - long: verbose
//	        short: v
//	        description: print extra detail
//	      - long: width
//	        argument: COLS
//	        required: true
//	        type: uint
type Schema struct {
	Groups []SchemaGroup `yaml:"groups"`
}

// SchemaGroup is one named group of option definitions.
type SchemaGroup struct {
	Name    string         `yaml:"name"`
	Options []SchemaOption `yaml:"options"`
}

// SchemaOption is one option definition as it appears in a schema document.
type SchemaOption struct {
	Long        string `yaml:"long"`
	Short       string `yaml:"short"`
	Description string `yaml:"description"`
	Argument    string `yaml:"argument"`
	Required    bool   `yaml:"required"`
	Type        string `yaml:"type"`
}

// LoadSchema reads a YAML schema document and builds a registry from it.
func LoadSchema(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return schema.Build()
}

// LoadSchemaFile reads a YAML schema from the named file and builds a
// registry from it.
func LoadSchemaFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadSchema(f)
}

// Build converts the schema into a populated registry. Definitions are
// registered in document order so registration indices follow the file.
func (s *Schema) Build() (*Registry, error) {
	reg := NewRegistry()
	for _, g := range s.Groups {
		for _, so := range g.Options {
			opt, err := so.build()
			if err != nil {
				return nil, err
			}
			reg.AddToGroup(g.Name, opt)
		}
	}
	return reg, nil
}

func (so *SchemaOption) build() (*Option, error) {
	var short rune
	switch runes := []rune(so.Short); len(runes) {
	case 0:
	case 1:
		short = runes[0]
	default:
		return nil, fmt.Errorf("short name %q must be a single character", so.Short)
	}

	if so.Long == "" && short == 0 {
		return nil, fmt.Errorf("option needs a long or short name")
	}

	opt := New(so.Long, short).WithDescription(so.Description)
	if so.Argument != "" {
		opt.WithArg(so.Argument, so.Required)
	}

	argType, err := parseArgType(so.Type)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", so.name(), err)
	}
	opt.WithType(argType)
	return opt, nil
}

func (so *SchemaOption) name() string {
	if so.Long != "" {
		return so.Long
	}
	return so.Short
}

func parseArgType(s string) (ArgType, error) {
	switch s {
	case "", "string":
		return ArgString, nil
	case "int":
		return ArgInt, nil
	case "uint":
		return ArgUint, nil
	case "float":
		return ArgFloat, nil
	case "bool":
		return ArgBool, nil
	default:
		return ArgString, fmt.Errorf("unknown argument type %q", s)
	}
}
