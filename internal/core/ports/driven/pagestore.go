package driven

import (
	"context"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// PageStore persists converted pages to the target document store.
// The core never performs network calls itself; all document-store
// traffic goes through this port.
type PageStore interface {
	// CreatePage creates a page with the given title and body blocks.
	// It returns the store's identifier and locator URL for the page.
	CreatePage(ctx context.Context, page *domain.Page) (*PageRef, error)

	// Ping validates the store is reachable and the credentials work.
	Ping(ctx context.Context) error
}

// PageRef identifies a page created in the document store.
type PageRef struct {
	// ID is the store's opaque page identifier.
	ID string

	// URL is the page's locator.
	URL string
}
