// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for publishing to function:
//
//   - PageStore: Creates pages in the target document store
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Drafts the markdown document from raw memo text.
//     Without it, the memo text is published as-is.
//   - PublicationStore: Records published pages. Without it, history
//     is simply not kept.
//   - PromptStore: Customisable drafting prompts. Without it, embedded
//     defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
