package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

var publishCmd = &cobra.Command{
	Use:   "publish [file]",
	Short: "Publish a memo or document as a page",
	Long: `Publish a memo or markdown document as a page.

Reads from the given file, or from stdin when no file is given.
By default the input is treated as a finished markdown document and
published as-is. With --draft, the input is treated as a raw memo
transcript and drafted into structured markdown by the LLM first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPublish,
}

var (
	publishDraft  bool
	publishSource string
)

func init() {
	publishCmd.Flags().BoolVarP(&publishDraft, "draft", "d", false, "Draft the input with the LLM before publishing")
	publishCmd.Flags().StringVarP(&publishSource, "source", "s", "cli", "Source label recorded with the publication")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	pub, err := publishInput(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	cmd.Printf("Published %q\n", pub.Title)
	cmd.Printf("  Page:   %s\n", pub.PageID)
	if pub.URL != "" {
		cmd.Printf("  URL:    %s\n", pub.URL)
	}
	cmd.Printf("  Blocks: %d\n", pub.BlockCount)
	return nil
}

// publishInput routes the text through drafting or direct publishing.
func publishInput(ctx context.Context, text string) (*domain.Publication, error) {
	if publishDraft {
		memo := &domain.Memo{
			ID:         uuid.New().String(),
			Text:       text,
			Source:     publishSource,
			ReceivedAt: time.Now(),
		}
		return publishService.PublishMemo(ctx, memo)
	}
	return publishService.PublishDocument(ctx, text, publishSource)
}

// readInput returns the text from the file argument or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("no input: give a file argument or pipe text to stdin")
	}
	return string(data), nil
}
