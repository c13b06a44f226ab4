package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Inklet resources.
	uriScheme = "inklet://"

	// historyLimit caps the publications listed through resources.
	historyLimit = 50
)

// publicationInfo is the JSON shape of one publication resource entry.
type publicationInfo struct {
	ID          string `json:"id"`
	PageID      string `json:"page_id"`
	URL         string `json:"url,omitempty"`
	Title       string `json:"title"`
	BlockCount  int    `json:"block_count"`
	PublishedAt string `json:"published_at"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing recent publications.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "publications",
		Name:        "publications",
		Description: "Recently published pages, newest first",
		MIMEType:    "application/json",
	}, s.handlePublicationsResource)

	// Template for a single publication record.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "publications/{publicationId}",
		Name:        "publication",
		Description: "A single publication record",
		MIMEType:    "application/json",
	}, s.handlePublicationResource)
}

// handlePublicationsResource returns the recent publication history.
func (s *Server) handlePublicationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos, err := s.recentPublications(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling publications: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handlePublicationResource returns a single publication by ID.
func (s *Server) handlePublicationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	pubID := extractPublicationID(req.Params.URI)
	if pubID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	infos, err := s.recentPublications(ctx)
	if err != nil {
		return nil, err
	}

	for i := range infos {
		if infos[i].ID != pubID {
			continue
		}
		data, err := json.MarshalIndent(infos[i], "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling publication: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// recentPublications fetches history and converts it to resource entries.
// Returns an empty list when history keeping is not configured.
func (s *Server) recentPublications(ctx context.Context) ([]publicationInfo, error) {
	pubs, err := s.ports.Publish.History(ctx, historyLimit)
	if err != nil {
		return []publicationInfo{}, nil //nolint:nilerr // history is optional
	}

	infos := make([]publicationInfo, len(pubs))
	for i := range pubs {
		infos[i] = publicationInfo{
			ID:          pubs[i].ID,
			PageID:      pubs[i].PageID,
			URL:         pubs[i].URL,
			Title:       pubs[i].Title,
			BlockCount:  pubs[i].BlockCount,
			PublishedAt: pubs[i].PublishedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return infos, nil
}

// extractPublicationID extracts the ID from a URI like inklet://publications/{publicationId}.
func extractPublicationID(uri string) string {
	const prefix = uriScheme + "publications/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
