package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [dir]", watchCmd.Use)
}

func TestWatchCmd_NoServiceConfigured(t *testing.T) {
	prev := publishService
	publishService = nil
	defer func() { publishService = prev }()

	_, err := executeCommand("watch", "/tmp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestWatchCmd_NoDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no directory")
}
