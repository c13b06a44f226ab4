package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driven"
)

// Ensure PageStore implements the interface.
var _ driven.PageStore = (*PageStore)(nil)

// PageStore is an in-memory implementation of driven.PageStore for testing.
// It records every created page and hands out sequential IDs.
type PageStore struct {
	mu    sync.RWMutex
	pages []domain.Page

	// CreateErr, when set, is returned by CreatePage to simulate failures.
	CreateErr error
}

// NewPageStore creates a new in-memory page store.
func NewPageStore() *PageStore {
	return &PageStore{}
}

// CreatePage records the page and returns a synthetic reference.
func (s *PageStore) CreatePage(_ context.Context, page *domain.Page) (*driven.PageRef, error) {
	if page == nil {
		return nil, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return nil, s.CreateErr
	}

	s.pages = append(s.pages, *page)
	id := fmt.Sprintf("page-%d", len(s.pages))
	return &driven.PageRef{
		ID:  id,
		URL: "memory://" + id,
	}, nil
}

// Ping always succeeds.
func (s *PageStore) Ping(_ context.Context) error {
	return nil
}

// Pages returns a copy of all created pages in creation order.
func (s *PageStore) Pages() []domain.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Page, len(s.pages))
	copy(out, s.pages)
	return out
}
