package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"

	"github.com/inklet-labs/inklet/internal/core/domain"
	"github.com/inklet-labs/inklet/internal/core/ports/driven"
)

// Ensure PageStore implements the interface.
var _ driven.PageStore = (*PageStore)(nil)

// Default configuration values.
const (
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second

	// requestsPerSecond is the proactive throttle rate. Notion's
	// documented average limit is 3 requests per second per integration.
	requestsPerSecond = 3

	// maxChildrenPerRequest is Notion's cap on block children per call.
	maxChildrenPerRequest = 100
)

// Config holds configuration for the Notion page store.
type Config struct {
	// Token is the internal integration token (required).
	Token string

	// ParentPageID is the page new pages are created under (required).
	ParentPageID string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// PageStore creates pages in Notion.
type PageStore struct {
	client   *notionapi.Client
	parentID notionapi.PageID
	limiter  *rate.Limiter
}

// NewPageStore creates a new Notion page store.
func NewPageStore(cfg Config) (*PageStore, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notion: token is required")
	}
	if cfg.ParentPageID == "" {
		return nil, fmt.Errorf("notion: parent page ID is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := notionapi.NewClient(
		notionapi.Token(cfg.Token),
		notionapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)

	return &PageStore{
		client:   client,
		parentID: notionapi.PageID(cfg.ParentPageID),
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

// CreatePage creates a page titled page.Title with the converted body
// blocks as children, under the configured parent page.
//
// Notion caps children at 100 blocks per request; longer documents are
// created with the first batch and the rest appended in follow-up calls.
func (s *PageStore) CreatePage(ctx context.Context, page *domain.Page) (*driven.PageRef, error) {
	if page == nil {
		return nil, domain.ErrInvalidInput
	}

	children := mapBlocks(page.Blocks)

	first := children
	var rest []notionapi.Block
	if len(children) > maxChildrenPerRequest {
		first = children[:maxChildrenPerRequest]
		rest = children[maxChildrenPerRequest:]
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	created, err := s.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: s.parentID,
		},
		Properties: notionapi.Properties{
			"title": notionapi.TitleProperty{
				Title: []notionapi.RichText{plainRichText(page.Title)},
			},
		},
		Children: first,
	})
	if err != nil {
		return nil, wrapAPIError("create page", err)
	}

	for len(rest) > 0 {
		batch := rest
		if len(batch) > maxChildrenPerRequest {
			batch = rest[:maxChildrenPerRequest]
		}
		rest = rest[len(batch):]

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		_, err := s.client.Block.AppendChildren(ctx, notionapi.BlockID(created.ID), &notionapi.AppendBlockChildrenRequest{
			Children: batch,
		})
		if err != nil {
			return nil, wrapAPIError("append blocks", err)
		}
	}

	return &driven.PageRef{
		ID:  string(created.ID),
		URL: created.URL,
	}, nil
}

// Ping validates the token by fetching the integration's bot user.
func (s *PageStore) Ping(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := s.client.User.Me(ctx); err != nil {
		return wrapAPIError("ping", err)
	}
	return nil
}

// wrapAPIError maps Notion API failures onto domain errors where the
// caller can act on them, preserving the original error in the chain.
func wrapAPIError(op string, err error) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusTooManyRequests:
			return fmt.Errorf("notion: %s: %w: %s", op, domain.ErrRateLimited, apiErr.Message)
		case http.StatusUnauthorized:
			return fmt.Errorf("notion: %s: %w: %s", op, domain.ErrUnauthorised, apiErr.Message)
		}
	}
	return fmt.Errorf("notion: %s: %w", op, err)
}
