package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCmd_Use(t *testing.T) {
	assert.Equal(t, "compile [file]", compileCmd.Use)
}

func TestCompileCmd_NoServiceConfigured(t *testing.T) {
	prev := compileService
	compileService = nil
	defer func() { compileService = prev }()

	_, err := executeCommand("compile", "whatever.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestCompileCmd_DumpsBlocks(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	document := "# Plan\n\n- step one\n\n```go\nfmt.Println(1)\n```"
	path := filepath.Join(t.TempDir(), "plan.md")
	require.NoError(t, os.WriteFile(path, []byte(document), 0600))

	out, err := executeCommand("compile", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Title: Plan")
	assert.Contains(t, out, "Blocks: 2")
	assert.Contains(t, out, "bulleted_list_item")
	assert.Contains(t, out, "step one")
	assert.Contains(t, out, "code")
	assert.Contains(t, out, "(go)")
}
