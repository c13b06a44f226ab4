package driven

import (
	"context"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// PublicationStore persists records of published pages.
// Backed by SQLite for metadata storage.
type PublicationStore interface {
	// SavePublication stores a publication record.
	SavePublication(ctx context.Context, pub *domain.Publication) error

	// GetPublication retrieves a publication by ID.
	GetPublication(ctx context.Context, id string) (*domain.Publication, error)

	// ListPublications returns the most recent publications,
	// newest first, up to limit. A limit <= 0 means no limit.
	ListPublications(ctx context.Context, limit int) ([]domain.Publication, error)
}
