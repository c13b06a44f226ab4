package mcp

import (
	"context"
	"time"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driving"
	"github.com/inklet-labs/inklet/internal/markdown"
)

// mockPublishService is a configurable publish service for tests.
type mockPublishService struct {
	lastMemo *mockMemo
	pub      *domain.Publication
	history  []domain.Publication
	err      error
}

type mockMemo struct {
	text   string
	source string
}

var _ driving.PublishService = (*mockPublishService)(nil)

func (m *mockPublishService) PublishMemo(_ context.Context, memo *domain.Memo) (*domain.Publication, error) {
	m.lastMemo = &mockMemo{text: memo.Text, source: memo.Source}
	if m.err != nil {
		return nil, m.err
	}
	return m.pub, nil
}

func (m *mockPublishService) PublishDocument(ctx context.Context, document, source string) (*domain.Publication, error) {
	return m.PublishMemo(ctx, &domain.Memo{Text: document, Source: source})
}

func (m *mockPublishService) History(context.Context, int) ([]domain.Publication, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.history, nil
}

// mockCompileService compiles for real; the block classifier is pure.
type mockCompileService struct{}

var _ driving.CompileService = (*mockCompileService)(nil)

func (mockCompileService) Compile(_ context.Context, document string) (*domain.Page, error) {
	blocks := markdown.Classify(document)
	return &domain.Page{Title: "Compiled", Blocks: blocks}, nil
}

func testPublication(id string) domain.Publication {
	return domain.Publication{
		ID:          id,
		PageID:      "page-" + id,
		URL:         "https://www.notion.so/page-" + id,
		Title:       "Note " + id,
		BlockCount:  3,
		PublishedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
}
