package markdown

import (
	"strings"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// ParseSpans splits one line of text into an ordered sequence of styled
// runs. The input is the line content after the classifier has stripped
// any block-level prefix.
//
// Three delimiter forms are recognised: **bold**, *italic* and `code`.
// The lexer tries the longest delimiter first at each position, so
// **bold** is never read as two adjacent italic spans. Content inside a
// delimiter pair is never re-scanned: nesting is out of grammar and the
// inner characters stay literal.
//
// A delimiter pair whose payload is empty or whitespace-only is kept as
// literal text rather than becoming an empty styled run. An empty input
// yields an empty sequence; input with no delimiters yields one plain run.
func ParseSpans(line string) []domain.StyledRun {
	var (
		runs  []domain.StyledRun
		plain strings.Builder
	)

	flush := func() {
		if plain.Len() > 0 {
			runs = appendRun(runs, domain.StylePlain, plain.String())
			plain.Reset()
		}
	}

	i := 0
	for i < len(line) {
		style, content, width, ok := matchDelimited(line, i)
		if ok {
			flush()
			runs = appendRun(runs, style, content)
			i += width
			continue
		}
		plain.WriteByte(line[i])
		i++
	}
	flush()

	return runs
}

// matchDelimited attempts to lex a delimited span starting at position i.
// It reports the span's style, payload and total width (delimiters
// included). Bold is tried before italic so ** always wins over *.
func matchDelimited(line string, i int) (domain.RunStyle, string, int, bool) {
	switch line[i] {
	case '*':
		if strings.HasPrefix(line[i:], "**") {
			if end := strings.Index(line[i+2:], "**"); end > 0 {
				content := line[i+2 : i+2+end]
				if strings.TrimSpace(content) != "" {
					return domain.StyleBold, content, end + 4, true
				}
			}
		}
		if end := strings.Index(line[i+1:], "*"); end > 0 {
			content := line[i+1 : i+1+end]
			if strings.TrimSpace(content) != "" {
				return domain.StyleItalic, content, end + 2, true
			}
		}
	case '`':
		if end := strings.Index(line[i+1:], "`"); end > 0 {
			content := line[i+1 : i+1+end]
			if strings.TrimSpace(content) != "" {
				return domain.StyleCode, content, end + 2, true
			}
		}
	}
	return "", "", 0, false
}

// appendRun appends a run, merging into the previous one when the style
// matches so the sequence never holds two adjacent same-style runs.
func appendRun(runs []domain.StyledRun, style domain.RunStyle, text string) []domain.StyledRun {
	if n := len(runs); n > 0 && runs[n-1].Style == style {
		runs[n-1].Text += text
		return runs
	}
	return append(runs, domain.StyledRun{Style: style, Text: text})
}
