package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklet-labs/inklet/internal/adapters/driven/storage/memory"
	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driven"
)

// fakeLLM returns a canned response for every Generate call.
type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeLLM) ModelName() string            { return "fake-model" }
func (f *fakeLLM) Ping(_ context.Context) error { return nil }
func (f *fakeLLM) Close() error                 { return nil }

func newTestPublishService(pages driven.PageStore, llm driven.LLMService, pubs driven.PublicationStore) *PublishService {
	return NewPublishService(pages, llm, pubs, NewCompileService())
}

func TestPublishMemo_WithLLM(t *testing.T) {
	pages := memory.NewPageStore()
	pubs := memory.NewPublicationStore()
	llm := &fakeLLM{response: "# Groceries\n\n- milk\n- eggs"}
	svc := newTestPublishService(pages, llm, pubs)

	memo := &domain.Memo{ID: "memo-1", Text: "uh remember milk and eggs"}
	pub, err := svc.PublishMemo(context.Background(), memo)
	require.NoError(t, err)

	assert.Equal(t, "memo-1", pub.MemoID)
	assert.Equal(t, "Groceries", pub.Title)
	assert.Equal(t, 2, pub.BlockCount)
	assert.Equal(t, "page-1", pub.PageID)
	assert.NotEmpty(t, pub.URL)

	// The transcript is embedded in the drafting prompt.
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "uh remember milk and eggs")

	created := pages.Pages()
	require.Len(t, created, 1)
	assert.Equal(t, "Groceries", created[0].Title)

	saved, err := pubs.GetPublication(context.Background(), pub.ID)
	require.NoError(t, err)
	assert.Equal(t, pub.PageID, saved.PageID)
}

func TestPublishMemo_WithoutLLM(t *testing.T) {
	pages := memory.NewPageStore()
	svc := newTestPublishService(pages, nil, nil)

	memo := &domain.Memo{ID: "memo-1", Text: "# Raw note\n\nalready markdown"}
	pub, err := svc.PublishMemo(context.Background(), memo)
	require.NoError(t, err)

	assert.Equal(t, "Raw note", pub.Title)
	assert.Equal(t, 1, pub.BlockCount)
}

func TestPublishMemo_NilMemo(t *testing.T) {
	svc := newTestPublishService(memory.NewPageStore(), nil, nil)

	_, err := svc.PublishMemo(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPublishMemo_BlankText(t *testing.T) {
	svc := newTestPublishService(memory.NewPageStore(), nil, nil)

	_, err := svc.PublishMemo(context.Background(), &domain.Memo{ID: "m", Text: "   \n  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPublishMemo_LLMFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("boom")}
	svc := newTestPublishService(memory.NewPageStore(), llm, nil)

	_, err := svc.PublishMemo(context.Background(), &domain.Memo{ID: "m", Text: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draft memo")
}

func TestPublishMemo_EmptyGeneration(t *testing.T) {
	llm := &fakeLLM{response: "  \n "}
	svc := newTestPublishService(memory.NewPageStore(), llm, nil)

	_, err := svc.PublishMemo(context.Background(), &domain.Memo{ID: "m", Text: "text"})
	assert.ErrorIs(t, err, domain.ErrEmptyGeneration)
}

func TestPublishMemo_NoPageStore(t *testing.T) {
	svc := newTestPublishService(nil, nil, nil)

	_, err := svc.PublishMemo(context.Background(), &domain.Memo{ID: "m", Text: "text"})
	assert.ErrorIs(t, err, domain.ErrPageStoreUnavailable)
}

func TestPublishMemo_PageStoreFailure(t *testing.T) {
	pages := memory.NewPageStore()
	pages.CreateErr = errors.New("store down")
	svc := newTestPublishService(pages, nil, nil)

	_, err := svc.PublishMemo(context.Background(), &domain.Memo{ID: "m", Text: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create page")
}

func TestPublishMemo_HistoryFailureDoesNotFailPublish(t *testing.T) {
	pages := memory.NewPageStore()
	svc := newTestPublishService(pages, nil, failingPubStore{})

	pub, err := svc.PublishMemo(context.Background(), &domain.Memo{ID: "m", Text: "note"})
	require.NoError(t, err)
	assert.NotEmpty(t, pub.PageID)
}

func TestPublishDocument(t *testing.T) {
	pages := memory.NewPageStore()
	pubs := memory.NewPublicationStore()
	svc := newTestPublishService(pages, nil, pubs)

	pub, err := svc.PublishDocument(context.Background(), "# From a file\n\ntext", "watch:/drop/a.md")
	require.NoError(t, err)

	assert.NotEmpty(t, pub.MemoID)
	assert.Equal(t, "From a file", pub.Title)
}

func TestPublishDocument_Blank(t *testing.T) {
	svc := newTestPublishService(memory.NewPageStore(), nil, nil)

	_, err := svc.PublishDocument(context.Background(), "", "cli")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistory(t *testing.T) {
	pages := memory.NewPageStore()
	pubs := memory.NewPublicationStore()
	svc := newTestPublishService(pages, nil, pubs)

	_, err := svc.PublishDocument(context.Background(), "note one", "cli")
	require.NoError(t, err)
	_, err = svc.PublishDocument(context.Background(), "note two", "cli")
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestHistory_NoStore(t *testing.T) {
	svc := newTestPublishService(memory.NewPageStore(), nil, nil)

	_, err := svc.History(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

// failingPubStore always fails to save.
type failingPubStore struct{}

func (failingPubStore) SavePublication(context.Context, *domain.Publication) error {
	return errors.New("disk full")
}

func (failingPubStore) GetPublication(context.Context, string) (*domain.Publication, error) {
	return nil, domain.ErrNotFound
}

func (failingPubStore) ListPublications(context.Context, int) ([]domain.Publication, error) {
	return nil, nil
}
