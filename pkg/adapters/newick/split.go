package newick

import "strings"

const (
	terminal     = ';'
	quote        = '\''
	commentStart = '['
	commentEnd   = ']'
)

// Split cuts raw Newick text into one string per tree, each ending with ';'.
// Separators inside quoted labels and [comments] are ignored. Blank text
// after the last terminal is dropped; any other trailing text is returned as
// a final, unterminated chunk so the parser can report it.
func Split(input string) []string {
	var (
		trees     []string
		start     int
		inQuote   bool
		inComment bool
	)

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case inComment:
			if c == commentEnd {
				inComment = false
			}
		case inQuote:
			if c == quote {
				inQuote = false
			}
		case c == quote:
			inQuote = true
		case c == commentStart:
			inComment = true
		case c == terminal:
			if chunk := strings.TrimSpace(input[start : i+1]); chunk != ";" {
				trees = append(trees, chunk)
			}
			start = i + 1
		}
	}

	if rest := strings.TrimSpace(input[start:]); rest != "" {
		trees = append(trees, rest)
	}
	return trees
}
