// Command inklet publishes voice memos as structured Notion pages.
package main

import (
	"fmt"
	"os"

	"github.com/inklet-labs/inklet/internal/adapters/driven/config/file"
	"github.com/inklet-labs/inklet/internal/adapters/driven/llm/anthropic"
	"github.com/inklet-labs/inklet/internal/adapters/driven/llm/openai"
	"github.com/inklet-labs/inklet/internal/adapters/driven/notion"
	"github.com/inklet-labs/inklet/internal/adapters/driven/storage/sqlite"
	"github.com/inklet-labs/inklet/internal/adapters/driving/cli"
	"github.com/inklet-labs/inklet/internal/core/ports/driven"
	"github.com/inklet-labs/inklet/internal/core/services"
	"github.com/inklet-labs/inklet/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}

	pages := buildPageStore(configStore)
	llm := buildLLM(configStore)
	pubStore := buildPublicationStore()

	compiler := services.NewCompileService()
	publisher := services.NewPublishService(pages, llm, pubStore, compiler)

	if promptStore, err := file.NewPromptStore(""); err == nil {
		publisher.SetPromptStore(promptStore)
	} else {
		logger.Warn("Prompt store unavailable, using embedded prompts: %v", err)
	}

	cli.SetServices(cli.Services{
		Publish: publisher,
		Compile: compiler,
		Config:  configStore,
	})

	return cli.Execute()
}

// buildPageStore creates the Notion page store from configuration.
// Returns nil when Notion is not configured yet; publishing then fails
// with a clear error instead of a crash.
func buildPageStore(config driven.ConfigStore) driven.PageStore {
	token := config.GetString("notion.token")
	if token == "" {
		return nil
	}

	store, err := notion.NewPageStore(notion.Config{
		Token:        token,
		ParentPageID: config.GetString("notion.parent_page"),
	})
	if err != nil {
		logger.Warn("Notion not available: %v", err)
		return nil
	}
	return store
}

// buildLLM creates the drafting LLM from configuration.
// Returns nil when no provider is configured; memos are then published
// as-is without drafting.
func buildLLM(config driven.ConfigStore) driven.LLMService {
	provider := config.GetString("llm.provider")
	apiKey := config.GetString("llm.api_key")
	model := config.GetString("llm.model")

	var (
		svc driven.LLMService
		err error
	)
	switch provider {
	case "":
		return nil
	case "anthropic":
		svc, err = anthropic.NewLLMService(anthropic.Config{APIKey: apiKey, Model: model})
	case "openai":
		svc, err = openai.NewLLMService(openai.Config{APIKey: apiKey, Model: model})
	default:
		err = fmt.Errorf("unknown provider %q", provider)
	}
	if err != nil {
		logger.Warn("LLM not available: %v", err)
		return nil
	}
	return svc
}

// buildPublicationStore opens the SQLite history store.
// Returns nil when the database cannot be opened; history is then
// simply not kept.
func buildPublicationStore() driven.PublicationStore {
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("History not available: %v", err)
		return nil
	}
	return store.PublicationStore()
}
