package services

import (
	"context"
	"strings"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driving"
	"github.com/inklet-labs/inklet/internal/markdown"
)

// Ensure CompileService implements the interface.
var _ driving.CompileService = (*CompileService)(nil)

// DefaultTitle is used when a document has no content to derive a title from.
const DefaultTitle = "Untitled memo"

// maxDerivedTitleLen caps titles derived from body text.
const maxDerivedTitleLen = 60

// CompileService converts markdown-subset documents into pages.
type CompileService struct{}

// NewCompileService creates a new compile service.
func NewCompileService() *CompileService {
	return &CompileService{}
}

// Compile classifies the document into blocks and promotes a leading
// top-level heading to the page title. When the document does not open
// with a heading, the title is derived from the first block's text.
func (s *CompileService) Compile(_ context.Context, document string) (*domain.Page, error) {
	blocks := markdown.Classify(document)

	if len(blocks) > 0 && blocks[0].Kind == domain.KindHeading1 {
		return &domain.Page{
			Title:  blocks[0].PlainText(),
			Blocks: blocks[1:],
		}, nil
	}

	return &domain.Page{
		Title:  derivedTitle(blocks),
		Blocks: blocks,
	}, nil
}

// derivedTitle builds a fallback title from the first block's text.
func derivedTitle(blocks []domain.Block) string {
	if len(blocks) == 0 {
		return DefaultTitle
	}

	text := strings.TrimSpace(blocks[0].PlainText())
	if text == "" {
		return DefaultTitle
	}

	runes := []rune(text)
	if len(runes) > maxDerivedTitleLen {
		return string(runes[:maxDerivedTitleLen]) + "…"
	}
	return text
}
