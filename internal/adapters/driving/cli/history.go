package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently published pages",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of publications to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	pubs, err := publishService.History(cmd.Context(), historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrNotImplemented) {
			cmd.Println("History is not kept. Configure a publication store to enable it.")
			return nil
		}
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(pubs) == 0 {
		cmd.Println("No publications yet.")
		return nil
	}

	for i := range pubs {
		cmd.Printf("%s  %s\n", pubs[i].PublishedAt.Format("2006-01-02 15:04"), pubs[i].Title)
		cmd.Printf("  Page: %s  Blocks: %d  Source memo: %s\n", pubs[i].PageID, pubs[i].BlockCount, pubs[i].MemoID)
		if pubs[i].URL != "" {
			cmd.Printf("  URL: %s\n", pubs[i].URL)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d publications\n", len(pubs))
	return nil
}
