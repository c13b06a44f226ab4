package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driven"
)

// Ensure PublicationStore implements the interface.
var _ driven.PublicationStore = (*PublicationStore)(nil)

// PublicationStore is an in-memory implementation of driven.PublicationStore.
type PublicationStore struct {
	mu           sync.RWMutex
	publications map[string]domain.Publication
}

// NewPublicationStore creates a new in-memory publication store.
func NewPublicationStore() *PublicationStore {
	return &PublicationStore{
		publications: make(map[string]domain.Publication),
	}
}

// SavePublication stores a publication record.
func (s *PublicationStore) SavePublication(_ context.Context, pub *domain.Publication) error {
	if pub == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publications[pub.ID] = *pub
	return nil
}

// GetPublication retrieves a publication by ID.
func (s *PublicationStore) GetPublication(_ context.Context, id string) (*domain.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pub, ok := s.publications[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &pub, nil
}

// ListPublications returns publications newest first, up to limit.
func (s *PublicationStore) ListPublications(_ context.Context, limit int) ([]domain.Publication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pubs := make([]domain.Publication, 0, len(s.publications))
	for _, pub := range s.publications {
		pubs = append(pubs, pub)
	}
	sort.Slice(pubs, func(i, j int) bool {
		return pubs[i].PublishedAt.After(pubs[j].PublishedAt)
	})

	if limit > 0 && len(pubs) > limit {
		pubs = pubs[:limit]
	}
	return pubs, nil
}
