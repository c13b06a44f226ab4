package driving

import (
	"context"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// CompileService converts a markdown-subset document into a page.
type CompileService interface {
	// Compile converts a document into a page: classifies the lines into
	// blocks and promotes a leading top-level heading to the page title.
	Compile(ctx context.Context, document string) (*domain.Page, error)
}
