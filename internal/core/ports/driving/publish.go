package driving

import (
	"context"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// PublishService runs the full pipeline: memo text in, published page out.
type PublishService interface {
	// PublishMemo drafts a document from the memo (via the LLM when
	// configured, otherwise the memo text is the document), compiles it
	// and creates the page in the document store.
	PublishMemo(ctx context.Context, memo *domain.Memo) (*domain.Publication, error)

	// PublishDocument publishes an already-drafted markdown document,
	// skipping the LLM step. source labels where the document came from.
	PublishDocument(ctx context.Context, document, source string) (*domain.Publication, error)

	// History returns the most recent publications, newest first.
	History(ctx context.Context, limit int) ([]domain.Publication, error)
}
