package markdown

import (
	"regexp"
	"strings"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// fence is the code region delimiter.
const fence = "```"

// scanState is the classifier's line-scan mode.
type scanState int

const (
	// stateScanning is the default mode: lines are classified individually.
	stateScanning scanState = iota

	// stateInCode accumulates lines verbatim until the closing fence.
	stateInCode
)

// numberedPrefix matches a numbered list marker at the start of a line:
// one or more digits, a period, a single space.
var numberedPrefix = regexp.MustCompile(`^\d+\. `)

// Classify splits a document into an ordered sequence of typed blocks.
//
// The scan is a single forward pass over lines with one piece of state:
// whether the scanner is inside a fenced code region. Outside a fence,
// blank lines are separators and produce nothing; every other line
// yields exactly one block. Inside a fence, lines accumulate verbatim
// into a single code block.
//
// A document that ends while still inside a fence discards the buffered
// content without emitting a block. Generated documents always close
// their fences, so an open fence at EOF is treated as noise.
//
// Empty input yields an empty sequence. Classify never fails.
func Classify(document string) []domain.Block {
	if document == "" {
		return nil
	}

	var (
		blocks    []domain.Block
		state     = stateScanning
		codeLines []string
		codeLang  string
	)

	for _, line := range strings.Split(document, "\n") {
		trimmed := strings.TrimSpace(line)

		if state == stateInCode {
			if strings.HasPrefix(trimmed, fence) {
				blocks = append(blocks, domain.Block{
					Kind:     domain.KindCode,
					Code:     strings.Join(codeLines, "\n"),
					Language: codeLang,
				})
				codeLines = nil
				codeLang = ""
				state = stateScanning
				continue
			}
			// Verbatim, original whitespace preserved.
			codeLines = append(codeLines, line)
			continue
		}

		if strings.HasPrefix(trimmed, fence) {
			codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, fence))
			if codeLang == "" {
				codeLang = domain.DefaultCodeLanguage
			}
			state = stateInCode
			continue
		}

		if trimmed == "" {
			continue
		}

		blocks = append(blocks, classifyLine(trimmed))
	}

	return blocks
}

// classifyLine maps one trimmed, non-blank line outside a code region to
// its block. Prefixes are tried in priority order; the first match wins.
// Classification is line-local: neighbouring lines never affect it.
func classifyLine(trimmed string) domain.Block {
	switch {
	case strings.HasPrefix(trimmed, "# "):
		return headingBlock(domain.KindHeading1, trimmed[2:])
	case strings.HasPrefix(trimmed, "## "):
		return headingBlock(domain.KindHeading2, trimmed[3:])
	case strings.HasPrefix(trimmed, "### "):
		return headingBlock(domain.KindHeading3, trimmed[4:])
	case strings.HasPrefix(trimmed, "- "):
		return domain.Block{Kind: domain.KindBulletItem, Runs: ParseSpans(trimmed[2:])}
	case strings.HasPrefix(trimmed, "> "):
		return domain.Block{Kind: domain.KindQuote, Runs: ParseSpans(trimmed[2:])}
	}

	if marker := numberedPrefix.FindString(trimmed); marker != "" {
		return domain.Block{
			Kind: domain.KindNumberedItem,
			Runs: ParseSpans(trimmed[len(marker):]),
		}
	}

	return domain.Block{Kind: domain.KindParagraph, Runs: ParseSpans(trimmed)}
}

// headingBlock builds a heading with a single literal run. Headings skip
// inline styling so titles stay stable when promoted to page titles.
func headingBlock(kind domain.BlockKind, text string) domain.Block {
	return domain.Block{
		Kind: kind,
		Runs: []domain.StyledRun{{Style: domain.StylePlain, Text: text}},
	}
}
