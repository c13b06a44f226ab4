package domain

import "time"

// Memo represents raw source text received from upstream, typically a
// voice-memo transcript delivered by webhook or read from disk.
type Memo struct {
	// ID is the unique identifier for the memo.
	ID string

	// Text is the raw source text.
	Text string

	// Source describes where the memo came from (webhook, file path, etc).
	Source string

	// ReceivedAt is when the memo entered the pipeline.
	ReceivedAt time.Time
}

// Publication is the persisted record of a page published to the
// document store. It is the pipeline's audit trail.
type Publication struct {
	// ID is the unique identifier for the publication record.
	ID string

	// MemoID links to the memo that produced this page.
	MemoID string

	// PageID is the document store's identifier for the created page.
	PageID string

	// URL is the locator returned by the document store.
	URL string

	// Title is the published page title.
	Title string

	// BlockCount is the number of body blocks the page was created with.
	BlockCount int

	// PublishedAt is when the page was created.
	PublishedAt time.Time
}
