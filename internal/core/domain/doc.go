// Package domain defines the core business entities for Inklet.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Block: One structural unit of a converted document
//   - StyledRun: A contiguous styled span of text within a block
//   - Page: A converted document ready for publishing
//   - Memo: Raw source text received from upstream
//   - Publication: The persisted record of a published page
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
