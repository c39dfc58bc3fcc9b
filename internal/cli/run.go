package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/internal/presentation/tui"
	"github.com/muesli/termenv"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	File     string
	LogLevel string
	Watch    bool
	Quiet    bool
}

// watchInterval is how often a watched table file is polled.
var watchInterval = 500 * time.Millisecond

// Execute runs an interactive session on stdin/stdout.
func Execute(opts RunOptions) error {
	logger, err := createLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	cwd, _ := os.Getwd()
	path, err := ResolveFile(opts.File, cwd)
	if err != nil {
		return err
	}

	table, def, err := LoadTable(path, logger)
	if err != nil {
		return err
	}
	session := NewSession(table, os.Stdin, os.Stdout, logger)
	defer func() { session.Table().Close() }()

	if !opts.Quiet {
		tui.PrintBanner(os.Stdout, termenv.ColorProfile(), def.Title)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if opts.Watch {
		go Watch(sigCtx, path, watchInterval, logger, func() {
			next, err := reload(path, session.Table(), logger)
			if err != nil {
				printSystemMessage(os.Stdout, "Reload failed: %v", err)
				return
			}
			old := session.Table()
			if err := session.Replace(next); err != nil {
				logger.Error("Redraw failed", "error", err)
			}
			old.Close()
			printSystemMessage(os.Stdout, "Reloaded '%s'.", path)
		})
	}

	err = session.Run(sigCtx)
	if sig := sigCtx.Signal(); sig != nil && !opts.Quiet {
		fmt.Println()
		printSystemMessage(os.Stdout, "Interrupted.")
	}
	return handleExecutionError(err)
}

// reload rebuilds the table from path, keeping the rows expanded in current.
// Rows collapsed in current stay collapsed even when the file expands all.
func reload(path string, current *rowexpand.Table, logger *slog.Logger) (*rowexpand.Table, error) {
	var keep []rowexpand.Option
	if !current.Controlled() {
		keep = append(keep,
			rowexpand.WithoutExpandAllRows(),
			rowexpand.WithDefaultExpandedRowKeys(current.ExpandedRowKeys()...),
		)
	}
	table, _, err := LoadTable(path, logger, keep...)
	return table, err
}
