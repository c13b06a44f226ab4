package driven

// Prompt names used with PromptStore.
const (
	// PromptDraft turns a raw memo transcript into a structured
	// markdown note. Takes one %s placeholder for the transcript.
	PromptDraft = "draft"
)

// PromptStore provides access to customisable LLM prompt templates.
// This is an optional service - when nil, embedded defaults are used.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}
