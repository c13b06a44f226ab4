package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/inklet-labs/inklet/internal/adapters/driving/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and publish dropped markdown files",
	Long: `Watch a drop directory and publish markdown files placed into it.

Files already in the directory are published on startup, then new and
changed files are picked up as they appear. Published files are renamed
with a .published suffix. The directory defaults to the watch.dir
configuration key. Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before a changed file is published")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if publishService == nil {
		return errors.New("publish service not configured")
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	} else if configStore != nil {
		dir = configStore.GetString("watch.dir")
	}
	if dir == "" {
		return errors.New("no directory: give a dir argument or set watch.dir in config")
	}

	w, err := watcher.NewWatcher(watcher.Config{Dir: dir, Debounce: watchDebounce}, publishService)
	if err != nil {
		return err
	}
	if err := w.Start(cmd.Context()); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	cmd.Printf("Watching %s for markdown memos. Press Ctrl+C to stop.\n", dir)

	waitForInterrupt(cmd)
	return w.Stop()
}
