// Package markdown compiles a constrained Markdown subset into typed
// blocks for the document store.
//
// The grammar is deliberately small: it covers exactly the syntax the
// upstream memo-drafting prompt instructs the model to produce
// (headings, flat lists, quotes, fenced code, paragraphs, and the three
// inline emphasis forms). It is not a general Markdown parser: tables,
// nested lists, links, images, and HTML all degrade to paragraph text.
//
// Classify performs the line-level pass; ParseSpans handles inline
// emphasis within a single line. Both are pure functions with no shared
// state and are safe for concurrent use.
package markdown
