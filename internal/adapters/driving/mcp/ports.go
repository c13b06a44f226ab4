package mcp

import (
	"github.com/inklet-labs/inklet/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Publish runs the memo-to-page pipeline.
	Publish driving.PublishService

	// Compile translates markdown into typed blocks without publishing.
	Compile driving.CompileService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Publish == nil {
		return ErrMissingPublishService
	}
	// Compile is optional; the compile tool is simply not registered.
	return nil
}
