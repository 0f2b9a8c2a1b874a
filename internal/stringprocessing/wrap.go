package stringprocessing

import "strings"

// WrapText wraps text to the given maximum line length, indenting every line
// by indent spaces. Existing newlines are preserved as paragraph breaks.
func WrapText(text string, maxLength, indent int) string {
	return WrapTextHanging(text, maxLength, indent, indent)
}

// WrapTextHanging wraps text to the given maximum line length with a distinct
// first-line indent; continuation lines use indent. Words longer than the
// usable width are placed on their own line rather than broken.
func WrapTextHanging(text string, maxLength, indent, firstLineIndent int) string {
	var out strings.Builder

	first := true
	for i, paragraph := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
			first = true
		}
		wrapParagraph(&out, paragraph, maxLength, indent, firstLineIndent, &first)
	}
	return out.String()
}

func wrapParagraph(out *strings.Builder, paragraph string, maxLength, indent, firstLineIndent int, first *bool) {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		if *first {
			// An empty paragraph still keeps its (possibly pre-indented)
			// empty line.
			*first = false
		}
		return
	}

	lineLen := 0
	for _, word := range words {
		pad := indent
		if *first {
			pad = firstLineIndent
		}

		switch {
		case lineLen == 0:
			out.WriteString(strings.Repeat(" ", pad))
			out.WriteString(word)
			lineLen = pad + len(word)
			*first = false
		case lineLen+1+len(word) <= maxLength:
			out.WriteByte(' ')
			out.WriteString(word)
			lineLen += 1 + len(word)
		default:
			out.WriteByte('\n')
			out.WriteString(strings.Repeat(" ", indent))
			out.WriteString(word)
			lineLen = indent + len(word)
		}
	}
}
