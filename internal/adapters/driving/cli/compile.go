package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a markdown document into typed blocks",
	Long: `Compile a markdown document into typed blocks without publishing.

Reads from the given file, or from stdin when no file is given.
Prints the derived page title and one line per block, which is useful
for checking how a document will come out before publishing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	if compileService == nil {
		return errors.New("compile service not configured")
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	page, err := compileService.Compile(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("failed to compile: %w", err)
	}

	cmd.Printf("Title: %s\n", page.Title)
	cmd.Printf("Blocks: %d\n\n", len(page.Blocks))

	for i := range page.Blocks {
		printBlock(cmd, i, &page.Blocks[i])
	}
	return nil
}

// printBlock prints one block in a compact single-line form.
func printBlock(cmd *cobra.Command, index int, block *domain.Block) {
	if block.Kind == domain.KindCode {
		cmd.Printf("  %3d  %-19s (%s) %d bytes\n", index, block.Kind, block.Language, len(block.Code))
		return
	}

	text := block.PlainText()
	const maxPreview = 60
	if len(text) > maxPreview {
		text = text[:maxPreview] + "..."
	}
	cmd.Printf("  %3d  %-19s %s\n", index, block.Kind, text)
}
