package newick

import (
	"errors"
	"strconv"
	"strings"
)

// Quoted labels are swapped for placeholders made of private-use runes
// before the text reaches gotree, whose scanner has no notion of quoting.
const (
	placeholderStart = '\uE000'
	placeholderEnd   = '\uE001'
)

var errUnterminatedQuote = errors.New("unterminated quoted label")

// maskQuoted replaces every quoted label of one tree with a placeholder and
// returns the unquoted labels in placeholder order. Inside a quoted label a
// doubled quote stands for one literal quote. Comments are copied verbatim.
func maskQuoted(chunk string) (string, []string, error) {
	if !strings.ContainsRune(chunk, quote) {
		return chunk, nil, nil
	}

	var (
		sb        strings.Builder
		labels    []string
		inComment bool
	)
	for i := 0; i < len(chunk); i++ {
		c := chunk[i]
		switch {
		case inComment:
			inComment = c != commentEnd
			sb.WriteByte(c)
		case c == commentStart:
			inComment = true
			sb.WriteByte(c)
		case c == quote:
			label, end, ok := readQuoted(chunk, i)
			if !ok {
				return "", nil, errUnterminatedQuote
			}
			sb.WriteRune(placeholderStart)
			sb.WriteString(strconv.Itoa(len(labels)))
			sb.WriteRune(placeholderEnd)
			labels = append(labels, label)
			i = end
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), labels, nil
}

// readQuoted decodes the quoted label opening at start and returns it with
// the index of its closing quote.
func readQuoted(s string, start int) (string, int, bool) {
	var sb strings.Builder
	for i := start + 1; i < len(s); i++ {
		if s[i] != quote {
			sb.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == quote {
			sb.WriteByte(quote)
			i++
			continue
		}
		return sb.String(), i, true
	}
	return "", 0, false
}

// restoreLabel turns a name read by gotree back into the label written in
// the input: placeholders are replaced by their quoted text and the blanks
// gotree keeps around unquoted names are trimmed.
func restoreLabel(name string, labels []string) string {
	if len(labels) == 0 || !strings.ContainsRune(name, placeholderStart) {
		return strings.TrimSpace(name)
	}

	var sb strings.Builder
	rest := name
	for {
		open := strings.IndexRune(rest, placeholderStart)
		if open < 0 {
			sb.WriteString(strings.TrimSpace(rest))
			break
		}
		sb.WriteString(strings.TrimSpace(rest[:open]))

		body := rest[open+len(string(placeholderStart)):]
		end := strings.IndexRune(body, placeholderEnd)
		idx, err := strconv.Atoi(body[:max(end, 0)])
		if end < 0 || err != nil || idx < 0 || idx >= len(labels) {
			sb.WriteString(rest[open:])
			break
		}
		sb.WriteString(labels[idx])
		rest = body[end+len(string(placeholderEnd)):]
	}
	return sb.String()
}
