package normalize

import "strings"

const specificationKey = "specification"

var indentationFixes = strings.NewReplacer(
	"extension tags:\n- ", "extension tags:\n  - ",
	"specification:\n- ", "specification:\n  - ",
)

// FixIndentation indents the first list item under "extension tags:" and
// "specification:" by two spaces. It is a literal substitution and does
// not look at YAML structure.
func FixIndentation(text string) string {
	return indentationFixes.Replace(text)
}

// DropSpecificationBlankLines removes blank lines inside the specification
// block when the line that follows is non-blank and indented by two spaces.
// The block starts at a line that is exactly "specification:" once trimmed
// and ends at the next non-blank line that does not start with a space.
// The first and last lines of text are always kept.
func DropSpecificationBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	inSpec := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == specificationKey+":":
			inSpec = true
		case inSpec && trimmed != "" && !strings.HasPrefix(line, " "):
			inSpec = false
		case inSpec && trimmed == "" && i > 0 && i < len(lines)-1:
			next := lines[i+1]
			if strings.TrimSpace(next) != "" && strings.HasPrefix(next, "  ") {
				continue
			}
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// Patch applies FixIndentation and then DropSpecificationBlankLines.
func Patch(text string) string {
	return DropSpecificationBlankLines(FixIndentation(text))
}

// FlattenText joins the trimmed, non-empty lines of s with single spaces.
func FlattenText(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// stripDirectives drops the directive lines ("%YAML 1.2", "%TAG ...") that
// precede the document. The parser only understands %YAML 1.1, and the
// header is written back unconditionally on encode.
func stripDirectives(text string) string {
	for strings.HasPrefix(text, "%") {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			return ""
		}
		text = text[nl+1:]
	}
	return text
}
