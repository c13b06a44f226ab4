package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/inklet-labs/inklet/internal/adapters/driving/webhook"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the memo intake webhook",
	Long: `Start the HTTP webhook server that receives memos for publishing.

Transcription services POST memos to /v1/memos as JSON:

  {"text": "raw memo text", "memo_id": "...", "source": "..."}

The port and bearer token default to the webhook.port and webhook.token
configuration keys. Runs until interrupted.`,
	RunE: runServe,
}

var (
	servePort  int
	serveToken string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config, else 8787)")
	serveCmd.Flags().StringVarP(&serveToken, "token", "t", "", "Bearer token required on requests (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	port := servePort
	token := serveToken
	if configStore != nil {
		if port == 0 {
			port = configStore.GetInt("webhook.port")
		}
		if token == "" {
			token = configStore.GetString("webhook.token")
		}
	}
	if port == 0 {
		port = 8787
	}

	server, err := webhook.NewServer(webhook.Config{Port: port, Token: token}, publishService)
	if err != nil {
		return err
	}
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start webhook: %w", err)
	}

	cmd.Printf("Webhook listening on http://localhost:%d\n", server.Port())
	if token == "" {
		cmd.Println("Warning: no bearer token configured, requests are unauthenticated.")
	}
	cmd.Println("Press Ctrl+C to stop.")

	waitForInterrupt(cmd)
	return server.Stop()
}

// waitForInterrupt blocks until SIGINT/SIGTERM or context cancellation.
func waitForInterrupt(cmd *cobra.Command) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-cmd.Context().Done():
	}
}
