package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/ankr-labs/eduingest/internal/logger"
)

// watchSweepInterval caps how often filesystem events can trigger a
// fresh ingestion sweep.
const watchSweepInterval = 5 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch <base-dir>",
	Short: "Watch a directory and ingest new textbook files as they appear",
	Long: `Watches the base directory tree and re-runs textbook ingestion when
files are added or modified. Sweeps are rate limited; registration is
idempotent, so repeated sweeps only pick up genuinely new files.
Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestor == nil {
		return errors.New("ingest service not configured")
	}

	baseDir := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, baseDir); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Println(headerStyle.Render("Watching " + baseDir))

	// Initial sweep picks up files that predate the watch.
	summary, err := ingestor.IngestTextbooks(ctx, baseDir)
	if err != nil {
		return fmt.Errorf("initial sweep failed: %w", err)
	}
	printSummary(cmd, summary)

	limiter := rate.NewLimiter(rate.Every(watchSweepInterval), 1)
	pending := false

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cmd.Println(dimStyle.Render("stopped"))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories must be watched explicitly.
				if err := watchTree(watcher, event.Name); err != nil {
					logger.Debug("watching %s: %v", event.Name, err)
				}
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				pending = true
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)

		case <-ticker.C:
			if !pending || !limiter.Allow() {
				continue
			}
			pending = false

			summary, err := ingestor.IngestTextbooks(ctx, baseDir)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				logger.Error("sweep failed: %v", err)
				continue
			}
			if summary.Registered > 0 || summary.Failed > 0 {
				printSummary(cmd, summary)
			}
		}
	}
}

// watchTree adds path and every directory below it to the watcher.
// Non-directory paths are ignored.
func watchTree(watcher *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}
