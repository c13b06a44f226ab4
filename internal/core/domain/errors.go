package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Publishing falls back to treating the memo text as the document.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmptyGeneration indicates the LLM returned no usable text.
	ErrEmptyGeneration = errors.New("empty generation result")

	// ErrPageStoreUnavailable indicates the document store client is not
	// configured. Publishing is disabled without it.
	ErrPageStoreUnavailable = errors.New("page store unavailable")

	// ErrRateLimited indicates the document store's API rate limit
	// was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnauthorised indicates a request failed authentication.
	ErrUnauthorised = errors.New("unauthorised")
)
