package notion

import (
	"strings"

	"github.com/jomei/notionapi"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// mapBlocks converts the domain block sequence into Notion block objects,
// preserving order.
func mapBlocks(blocks []domain.Block) []notionapi.Block {
	out := make([]notionapi.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, mapBlock(b))
	}
	return out
}

// mapBlock converts one domain block to its native Notion shape.
func mapBlock(b domain.Block) notionapi.Block {
	switch b.Kind {
	case domain.KindHeading1:
		return &notionapi.Heading1Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading1),
			Heading1:   notionapi.Heading{RichText: mapRuns(b.Runs)},
		}
	case domain.KindHeading2:
		return &notionapi.Heading2Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading2),
			Heading2:   notionapi.Heading{RichText: mapRuns(b.Runs)},
		}
	case domain.KindHeading3:
		return &notionapi.Heading3Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading3),
			Heading3:   notionapi.Heading{RichText: mapRuns(b.Runs)},
		}
	case domain.KindBulletItem:
		return &notionapi.BulletedListItemBlock{
			BasicBlock:       basicBlock(notionapi.BlockTypeBulletedListItem),
			BulletedListItem: notionapi.ListItem{RichText: mapRuns(b.Runs)},
		}
	case domain.KindNumberedItem:
		return &notionapi.NumberedListItemBlock{
			BasicBlock:       basicBlock(notionapi.BlockTypeNumberedListItem),
			NumberedListItem: notionapi.ListItem{RichText: mapRuns(b.Runs)},
		}
	case domain.KindQuote:
		return &notionapi.QuoteBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeQuote),
			Quote:      notionapi.Quote{RichText: mapRuns(b.Runs)},
		}
	case domain.KindCode:
		return &notionapi.CodeBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeCode),
			Code: notionapi.Code{
				RichText: []notionapi.RichText{plainRichText(b.Code)},
				Language: mapLanguage(b.Language),
			},
		}
	default:
		return &notionapi.ParagraphBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeParagraph),
			Paragraph:  notionapi.Paragraph{RichText: mapRuns(b.Runs)},
		}
	}
}

func basicBlock(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{
		Object: notionapi.ObjectTypeBlock,
		Type:   t,
	}
}

// mapRuns converts styled runs to Notion rich text segments.
func mapRuns(runs []domain.StyledRun) []notionapi.RichText {
	out := make([]notionapi.RichText, 0, len(runs))
	for _, run := range runs {
		rt := notionapi.RichText{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: run.Text},
			Annotations: &notionapi.Annotations{
				Bold:   run.Style == domain.StyleBold,
				Italic: run.Style == domain.StyleItalic,
				Code:   run.Style == domain.StyleCode,
				Color:  notionapi.ColorDefault,
			},
		}
		out = append(out, rt)
	}
	return out
}

// plainRichText builds a single unstyled rich text segment.
func plainRichText(content string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}
}

// languageAliases maps common fence tags onto Notion's accepted names.
var languageAliases = map[string]string{
	"golang": "go",
	"js":     "javascript",
	"ts":     "typescript",
	"py":     "python",
	"rb":     "ruby",
	"sh":     "shell",
	"zsh":    "shell",
	"bash":   "bash",
	"yml":    "yaml",
	"text":   "plain text",
	"txt":    "plain text",
}

// notionLanguages is the subset of Notion's accepted code languages the
// drafting prompt is likely to emit. Anything else falls back to
// "plain text" rather than failing the page creation.
var notionLanguages = map[string]bool{
	"bash": true, "c": true, "c++": true, "c#": true, "css": true,
	"diff": true, "dockerfile": true, "elixir": true, "erlang": true,
	"go": true, "graphql": true, "haskell": true, "html": true,
	"java": true, "javascript": true, "json": true, "kotlin": true,
	"lua": true, "makefile": true, "markdown": true, "objective-c": true,
	"perl": true, "php": true, "plain text": true, "powershell": true,
	"python": true, "r": true, "ruby": true, "rust": true, "scala": true,
	"shell": true, "sql": true, "swift": true, "toml": true,
	"typescript": true, "xml": true, "yaml": true,
}

// mapLanguage normalises a fence language tag to a value Notion accepts.
func mapLanguage(tag string) string {
	lang := strings.ToLower(strings.TrimSpace(tag))
	if alias, ok := languageAliases[lang]; ok {
		lang = alias
	}
	if notionLanguages[lang] {
		return lang
	}
	return domain.DefaultCodeLanguage
}
