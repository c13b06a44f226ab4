package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driven"
	"github.com/inklet-labs/inklet/internal/core/ports/driving"
	"github.com/inklet-labs/inklet/internal/logger"
)

// Ensure PublishService implements the interface.
var _ driving.PublishService = (*PublishService)(nil)

// draftPrompt instructs the model to emit only the markdown subset the
// classifier understands. Keep the two in sync: any syntax added here
// must be handled by internal/markdown.
const draftPrompt = `Turn the following voice memo transcript into a well-structured note.

Formatting rules - use ONLY this syntax:
- "# ", "## ", "### " for headings (start with a single "# " title line)
- "- " for bullet points, "1. " style for numbered steps
- "> " for quotations
- three backticks to fence code, with an optional language tag
- **bold**, *italic* and backtick-quoted inline code within a line
Do not use tables, links, images, nested lists or any other syntax.
Return ONLY the note, nothing else.

Transcript:
%s`

// generationMaxTokens bounds the drafted note size.
const generationMaxTokens = 2048

// PublishService runs the memo-to-page pipeline.
type PublishService struct {
	pages       driven.PageStore
	llm         driven.LLMService
	pubStore    driven.PublicationStore
	compiler    driving.CompileService
	promptStore driven.PromptStore
}

// NewPublishService creates a new publish service.
// llm and pubStore may be nil; publishing degrades gracefully without them.
func NewPublishService(
	pages driven.PageStore,
	llm driven.LLMService,
	pubStore driven.PublicationStore,
	compiler driving.CompileService,
) *PublishService {
	return &PublishService{
		pages:    pages,
		llm:      llm,
		pubStore: pubStore,
		compiler: compiler,
	}
}

// PublishMemo drafts, compiles and publishes a memo.
// Without a configured LLM the memo text is compiled as-is.
func (s *PublishService) PublishMemo(ctx context.Context, memo *domain.Memo) (*domain.Publication, error) {
	if memo == nil || strings.TrimSpace(memo.Text) == "" {
		return nil, fmt.Errorf("publish memo: %w", domain.ErrInvalidInput)
	}

	document := memo.Text
	if s.llm != nil {
		logger.Debug("Drafting memo %s with model %s", memo.ID, s.llm.ModelName())
		promptTemplate := s.loadPrompt(driven.PromptDraft, draftPrompt)
		drafted, err := s.llm.Generate(ctx, fmt.Sprintf(promptTemplate, memo.Text), driven.GenerateOptions{
			MaxTokens:   generationMaxTokens,
			Temperature: 0.3,
		})
		if err != nil {
			return nil, fmt.Errorf("draft memo: %w", err)
		}
		drafted = strings.TrimSpace(drafted)
		if drafted == "" {
			return nil, fmt.Errorf("draft memo: %w", domain.ErrEmptyGeneration)
		}
		document = drafted
	} else {
		logger.Debug("No LLM configured, publishing memo %s as-is", memo.ID)
	}

	return s.publish(ctx, memo, document)
}

// PublishDocument publishes an already-drafted markdown document.
func (s *PublishService) PublishDocument(ctx context.Context, document, source string) (*domain.Publication, error) {
	if strings.TrimSpace(document) == "" {
		return nil, fmt.Errorf("publish document: %w", domain.ErrInvalidInput)
	}

	memo := &domain.Memo{
		ID:         uuid.New().String(),
		Text:       document,
		Source:     source,
		ReceivedAt: time.Now(),
	}
	return s.publish(ctx, memo, document)
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses the embedded default drafting prompt.
func (s *PublishService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (s *PublishService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}

// History returns the most recent publications, newest first.
func (s *PublishService) History(ctx context.Context, limit int) ([]domain.Publication, error) {
	if s.pubStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.pubStore.ListPublications(ctx, limit)
}

// publish compiles the document and creates the page.
func (s *PublishService) publish(ctx context.Context, memo *domain.Memo, document string) (*domain.Publication, error) {
	if s.pages == nil {
		return nil, domain.ErrPageStoreUnavailable
	}

	page, err := s.compiler.Compile(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("compile document: %w", err)
	}
	logger.Debug("Compiled %q: %d blocks", page.Title, len(page.Blocks))

	ref, err := s.pages.CreatePage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	logger.Info("Published %q as page %s", page.Title, ref.ID)

	pub := &domain.Publication{
		ID:          uuid.New().String(),
		MemoID:      memo.ID,
		PageID:      ref.ID,
		URL:         ref.URL,
		Title:       page.Title,
		BlockCount:  len(page.Blocks),
		PublishedAt: time.Now(),
	}

	if s.pubStore != nil {
		if err := s.pubStore.SavePublication(ctx, pub); err != nil {
			// History is best-effort; the page is already live.
			logger.Warn("Failed to record publication %s: %v", pub.ID, err)
		}
	}

	return pub, nil
}
