package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

// PublishMemoInput is the input schema for the publish_memo tool.
type PublishMemoInput struct {
	Text   string `json:"text" jsonschema:"the raw memo text to draft and publish"`
	Source string `json:"source,omitempty" jsonschema:"where the memo came from (default mcp)"`
}

// PublishMemoOutput is the output schema for the publish_memo tool.
type PublishMemoOutput struct {
	PublicationID string `json:"publication_id"`
	PageID        string `json:"page_id"`
	URL           string `json:"url,omitempty"`
	Title         string `json:"title"`
	BlockCount    int    `json:"block_count"`
}

// CompileDocumentInput is the input schema for the compile_document tool.
type CompileDocumentInput struct {
	Document string `json:"document" jsonschema:"the markdown document to compile into typed blocks"`
}

// CompileDocumentOutput is the output schema for the compile_document tool.
type CompileDocumentOutput struct {
	Title  string        `json:"title"`
	Blocks []BlockOutput `json:"blocks"`
	Count  int           `json:"count"`
}

// BlockOutput represents a single compiled block.
type BlockOutput struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "publish_memo",
		Description: "Draft a memo into a structured note and publish it as a page",
	}, s.handlePublishMemo)

	if s.ports.Compile != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "compile_document",
			Description: "Compile a markdown document into typed blocks without publishing",
		}, s.handleCompileDocument)
	}
}

// handlePublishMemo handles the publish_memo tool invocation.
func (s *Server) handlePublishMemo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PublishMemoInput,
) (*mcp.CallToolResult, PublishMemoOutput, error) {
	source := input.Source
	if source == "" {
		source = "mcp"
	}

	memo := &domain.Memo{
		ID:         uuid.New().String(),
		Text:       input.Text,
		Source:     source,
		ReceivedAt: time.Now(),
	}

	pub, err := s.ports.Publish.PublishMemo(ctx, memo)
	if err != nil {
		return nil, PublishMemoOutput{}, err
	}

	return nil, PublishMemoOutput{
		PublicationID: pub.ID,
		PageID:        pub.PageID,
		URL:           pub.URL,
		Title:         pub.Title,
		BlockCount:    pub.BlockCount,
	}, nil
}

// handleCompileDocument handles the compile_document tool invocation.
func (s *Server) handleCompileDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompileDocumentInput,
) (*mcp.CallToolResult, CompileDocumentOutput, error) {
	page, err := s.ports.Compile.Compile(ctx, input.Document)
	if err != nil {
		return nil, CompileDocumentOutput{}, err
	}

	output := CompileDocumentOutput{
		Title:  page.Title,
		Blocks: make([]BlockOutput, len(page.Blocks)),
		Count:  len(page.Blocks),
	}

	for i := range page.Blocks {
		block := &page.Blocks[i]
		out := BlockOutput{Kind: string(block.Kind)}
		if block.Kind == domain.KindCode {
			out.Code = block.Code
			out.Language = block.Language
		} else {
			out.Text = block.PlainText()
		}
		output.Blocks[i] = out
	}

	return nil, output, nil
}
