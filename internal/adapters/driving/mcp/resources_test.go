package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestHandlePublicationsResource(t *testing.T) {
	publish := &mockPublishService{
		history: []domain.Publication{testPublication("b"), testPublication("a")},
	}
	server := newTestServer(t, publish)

	result, err := server.handlePublicationsResource(context.Background(), readRequest(uriScheme+"publications"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"id": "b"`)
	assert.Contains(t, result.Contents[0].Text, `"id": "a"`)
	assert.Contains(t, result.Contents[0].Text, "Note b")
}

func TestHandlePublicationsResource_NoHistory(t *testing.T) {
	publish := &mockPublishService{err: domain.ErrNotImplemented}
	server := newTestServer(t, publish)

	result, err := server.handlePublicationsResource(context.Background(), readRequest(uriScheme+"publications"))
	require.NoError(t, err)
	assert.Equal(t, "[]", result.Contents[0].Text)
}

func TestHandlePublicationResource(t *testing.T) {
	publish := &mockPublishService{
		history: []domain.Publication{testPublication("a"), testPublication("b")},
	}
	server := newTestServer(t, publish)

	result, err := server.handlePublicationResource(context.Background(), readRequest(uriScheme+"publications/b"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	assert.Contains(t, result.Contents[0].Text, `"id": "b"`)
	assert.NotContains(t, result.Contents[0].Text, `"id": "a"`)
}

func TestHandlePublicationResource_NotFound(t *testing.T) {
	publish := &mockPublishService{history: []domain.Publication{testPublication("a")}}
	server := newTestServer(t, publish)

	_, err := server.handlePublicationResource(context.Background(), readRequest(uriScheme+"publications/missing"))
	assert.Error(t, err)
}

func TestExtractPublicationID(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{uriScheme + "publications/abc", "abc"},
		{uriScheme + "publications/", ""},
		{uriScheme + "other/abc", ""},
		{"http://example.com", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPublicationID(tt.uri), tt.uri)
	}
}
