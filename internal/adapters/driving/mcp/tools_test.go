package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

func newTestServer(t *testing.T, publish *mockPublishService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{
		Publish: publish,
		Compile: mockCompileService{},
	})
	require.NoError(t, err)
	return server
}

func TestHandlePublishMemo(t *testing.T) {
	pub := testPublication("p1")
	publish := &mockPublishService{pub: &pub}
	server := newTestServer(t, publish)

	_, out, err := server.handlePublishMemo(context.Background(), nil, PublishMemoInput{
		Text:   "remember to buy milk",
		Source: "assistant",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", out.PublicationID)
	assert.Equal(t, "page-p1", out.PageID)
	assert.Equal(t, "Note p1", out.Title)
	assert.Equal(t, 3, out.BlockCount)

	require.NotNil(t, publish.lastMemo)
	assert.Equal(t, "remember to buy milk", publish.lastMemo.text)
	assert.Equal(t, "assistant", publish.lastMemo.source)
}

func TestHandlePublishMemo_DefaultSource(t *testing.T) {
	pub := testPublication("p1")
	publish := &mockPublishService{pub: &pub}
	server := newTestServer(t, publish)

	_, _, err := server.handlePublishMemo(context.Background(), nil, PublishMemoInput{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "mcp", publish.lastMemo.source)
}

func TestHandlePublishMemo_Error(t *testing.T) {
	publish := &mockPublishService{err: fmt.Errorf("publish: %w", domain.ErrInvalidInput)}
	server := newTestServer(t, publish)

	_, _, err := server.handlePublishMemo(context.Background(), nil, PublishMemoInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandleCompileDocument(t *testing.T) {
	pub := testPublication("p1")
	server := newTestServer(t, &mockPublishService{pub: &pub})

	document := "# Title\n\n- item one\n\n```go\nfmt.Println(1)\n```"
	_, out, err := server.handleCompileDocument(context.Background(), nil, CompileDocumentInput{
		Document: document,
	})
	require.NoError(t, err)

	require.Len(t, out.Blocks, 3)
	assert.Equal(t, out.Count, len(out.Blocks))

	assert.Equal(t, string(domain.KindHeading1), out.Blocks[0].Kind)
	assert.Equal(t, "Title", out.Blocks[0].Text)

	assert.Equal(t, string(domain.KindBulletItem), out.Blocks[1].Kind)
	assert.Equal(t, "item one", out.Blocks[1].Text)

	assert.Equal(t, string(domain.KindCode), out.Blocks[2].Kind)
	assert.Equal(t, "fmt.Println(1)", out.Blocks[2].Code)
	assert.Equal(t, "go", out.Blocks[2].Language)
	assert.Empty(t, out.Blocks[2].Text)
}
