// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Inklet. It lets AI assistants draft, compile and publish memos as pages.
package mcp

import "errors"

// ErrMissingPublishService is returned when the publish service is not provided.
var ErrMissingPublishService = errors.New("mcp: publish service is required")
