// Package help renders a registry of option descriptors into human-readable
// usage text: options are listed under their group headings with a usage
// column and line-wrapped descriptions. All layout widths are explicit
// configuration rather than hidden constants.
package help

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gkikola/optpp/internal/stringprocessing"
	"github.com/gkikola/optpp/pkg/option"
	"github.com/gkikola/optpp/pkg/parser"
)

// Default layout widths.
const (
	DefaultMaxLineLength       = 80
	DefaultGroupIndent         = 0
	DefaultOptionIndent        = 2
	DefaultDescFirstLineIndent = 30
	DefaultDescMultilineIndent = 32
)

// Config holds the layout widths used when rendering help text.
type Config struct {
	// MaxLineLength is the column at which text wraps.
	MaxLineLength int
	// GroupIndent indents group headings.
	GroupIndent int
	// OptionIndent indents the usage column of each option.
	OptionIndent int
	// DescFirstLineIndent is the column where descriptions start when they
	// share a line with the usage text.
	DescFirstLineIndent int
	// DescMultilineIndent indents wrapped description continuation lines.
	DescMultilineIndent int
	// Styled enables lipgloss styling of group headings.
	Styled bool
}

// DefaultConfig returns the standard 80-column layout.
func DefaultConfig() Config {
	return Config{
		MaxLineLength:       DefaultMaxLineLength,
		GroupIndent:         DefaultGroupIndent,
		OptionIndent:        DefaultOptionIndent,
		DescFirstLineIndent: DefaultDescFirstLineIndent,
		DescMultilineIndent: DefaultDescMultilineIndent,
	}
}

// Formatter renders option registries as usage text. The syntax configuration
// supplies the prefix and assignment strings shown in the usage column, so
// the help matches what the parser actually accepts.
type Formatter struct {
	config     Config
	syntax     parser.Syntax
	groupStyle lipgloss.Style
}

// NewFormatter creates a formatter with the given layout and syntax.
func NewFormatter(config Config, syntax parser.Syntax) *Formatter {
	return &Formatter{
		config:     config,
		syntax:     syntax,
		groupStyle: lipgloss.NewStyle().Bold(true),
	}
}

// Format renders all non-empty groups of the registry.
func (f *Formatter) Format(reg *option.Registry) string {
	var out strings.Builder

	first := true
	for _, group := range reg.Groups() {
		if group.Empty() {
			continue
		}
		if !first {
			out.WriteString("\n\n")
		}
		first = false

		if group.Name() != "" {
			heading := stringprocessing.WrapText(group.Name(),
				f.config.MaxLineLength, f.config.GroupIndent)
			if f.config.Styled {
				heading = f.groupStyle.Render(heading)
			}
			out.WriteString(heading)
			out.WriteByte('\n')
		}

		for i, opt := range group.Options() {
			if i > 0 {
				out.WriteByte('\n')
			}
			out.WriteString(f.formatOption(opt))
		}
	}
	return out.String()
}

// Write renders the registry to w.
func (f *Formatter) Write(w io.Writer, reg *option.Registry) error {
	_, err := io.WriteString(w, f.Format(reg))
	return err
}

// formatOption renders one option: its usage column and, when present, its
// wrapped description.
func (f *Formatter) formatOption(opt *option.Option) string {
	usage := strings.Repeat(" ", f.config.OptionIndent)

	if opt.ShortName() != 0 {
		usage += f.syntax.ShortPrefix + string(opt.ShortName())
		if opt.LongName() != "" {
			usage += ", "
		}
	} else {
		// Keep long names aligned with options that do have a short name.
		usage += strings.Repeat(" ", len(f.syntax.ShortPrefix)+3)
	}

	if opt.LongName() != "" {
		usage += f.syntax.LongPrefix + opt.LongName()
	}

	if opt.ArgName() != "" {
		if opt.ArgRequired() {
			usage += f.syntax.Assignment + opt.ArgName()
		} else {
			usage += "[" + f.syntax.Assignment + opt.ArgName() + "]"
		}
	}

	desc := opt.Description()
	spacing := f.config.DescFirstLineIndent - len(usage)
	if spacing <= 1 {
		// Usage column is too wide to share a line with the description.
		if desc == "" {
			return usage
		}
		return usage + "\n" + stringprocessing.WrapTextHanging(desc,
			f.config.MaxLineLength, f.config.DescMultilineIndent,
			f.config.DescFirstLineIndent)
	}

	if desc == "" {
		return usage
	}

	wrapped := stringprocessing.WrapTextHanging(desc, f.config.MaxLineLength,
		f.config.DescMultilineIndent, f.config.DescFirstLineIndent)
	// The first wrapped line starts with DescFirstLineIndent spaces; the
	// usage text is shorter than that, so it can replace the left edge.
	return usage + wrapped[len(usage):]
}
