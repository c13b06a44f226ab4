// Package notion implements the PageStore port against the Notion API.
//
// Converted blocks are mapped one-to-one onto Notion's native block
// objects and created as children of a configured parent page. Requests
// are throttled client-side to stay inside Notion's ~3 req/s budget.
package notion
