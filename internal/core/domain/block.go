package domain

import "strings"

// BlockKind identifies the structural type of a block.
type BlockKind string

// Block kinds produced by the classifier. The values match the target
// store's block-object names so adapters can map them directly.
const (
	// KindHeading1 is a top-level heading ("# ").
	KindHeading1 BlockKind = "heading_1"

	// KindHeading2 is a second-level heading ("## ").
	KindHeading2 BlockKind = "heading_2"

	// KindHeading3 is a third-level heading ("### ").
	KindHeading3 BlockKind = "heading_3"

	// KindBulletItem is a single bulleted list item ("- ").
	KindBulletItem BlockKind = "bulleted_list_item"

	// KindNumberedItem is a single numbered list item ("1. ").
	KindNumberedItem BlockKind = "numbered_list_item"

	// KindQuote is a block quote ("> ").
	KindQuote BlockKind = "quote"

	// KindCode is a fenced code region.
	KindCode BlockKind = "code"

	// KindParagraph is plain body text.
	KindParagraph BlockKind = "paragraph"
)

// DefaultCodeLanguage is the language tag used when a code fence
// carries no language of its own.
const DefaultCodeLanguage = "plain text"

// RunStyle identifies the inline style of a styled run.
type RunStyle string

// Inline styles carried by StyledRun.
const (
	StylePlain  RunStyle = "plain"
	StyleBold   RunStyle = "bold"
	StyleItalic RunStyle = "italic"
	StyleCode   RunStyle = "code"
)

// StyledRun is one contiguous span of text with a single inline style.
// Runs never overlap; concatenating run texts in order reconstructs the
// delimiter-stripped line.
type StyledRun struct {
	// Style is the inline style applied to the whole run.
	Style RunStyle

	// Text is the run's content with delimiters stripped.
	Text string
}

// Block is one structural unit of a converted document.
//
// Blocks form a flat ordered sequence: list and heading nesting is not
// modelled, each item is an independent sibling. Every kind except
// KindCode carries Runs; KindCode carries Code and Language instead.
type Block struct {
	// Kind is the structural type.
	Kind BlockKind

	// Runs is the styled text content. Empty for KindCode.
	Runs []StyledRun

	// Code is the raw multi-line content of a code block,
	// excluding the fence lines themselves.
	Code string

	// Language is the code block's language tag.
	// Defaults to DefaultCodeLanguage when the fence had none.
	Language string
}

// PlainText returns the block's text with styling discarded.
// For code blocks it returns the raw code content.
func (b Block) PlainText() string {
	if b.Kind == KindCode {
		return b.Code
	}
	var sb strings.Builder
	for _, run := range b.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// Page is a converted document ready for publishing: a title plus the
// ordered body blocks. Title promotion (lifting a leading heading out of
// the body) happens during compilation, not classification.
type Page struct {
	// Title is the page title.
	Title string

	// Blocks is the ordered body content.
	Blocks []Block
}
