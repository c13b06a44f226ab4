// Package services implements the core application logic.
//
// Services implement the driving port interfaces and depend only on the
// domain, the ports, and the markdown conversion package. Infrastructure
// (the document store client, LLM adapters, storage) is injected through
// the driven ports.
package services
