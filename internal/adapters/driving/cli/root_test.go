package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inklet-labs/inklet/internal/adapters/driven/storage/memory"
	"github.com/inklet-labs/inklet/internal/core/services"
)

// setupTestServices wires the CLI to in-memory adapters and returns a
// cleanup function that restores the previous services.
func setupTestServices() func() {
	prevPublish := publishService
	prevCompile := compileService
	prevConfig := configStore

	compiler := services.NewCompileService()
	publisher := services.NewPublishService(
		memory.NewPageStore(),
		nil, // no LLM, documents publish as-is
		memory.NewPublicationStore(),
		compiler,
	)

	SetServices(Services{
		Publish: publisher,
		Compile: compiler,
		Config:  memory.NewConfigStore(),
	})

	return func() {
		publishService = prevPublish
		compileService = prevCompile
		configStore = prevConfig
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "inklet", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "publish")
	assert.Contains(t, commandNames, "compile")
	assert.Contains(t, commandNames, "history")
	assert.Contains(t, commandNames, "serve")
	assert.Contains(t, commandNames, "watch")
	assert.Contains(t, commandNames, "mcp")
	assert.Contains(t, commandNames, "config")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
}
