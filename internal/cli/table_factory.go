package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/pkg/adapters/file"
	"github.com/aretw0/rowexpand/pkg/domain"
)

// defaultFiles are tried in order when no table file is given.
var defaultFiles = []string{"table.yaml", "table.yml", "table.json"}

// ResolveFile returns path, or the first default table file found in dir.
func ResolveFile(path, dir string) (string, error) {
	if path != "" {
		return path, nil
	}
	for _, name := range defaultFiles {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no table file given and none of %v found in %s", defaultFiles, dir)
}

// LoadTable reads the table file at path and builds the table.
// Extra options are applied after the file settings.
func LoadTable(path string, logger *slog.Logger, extra ...rowexpand.Option) (*rowexpand.Table, *file.Definition, error) {
	def, err := file.Load(path)
	if err != nil {
		return nil, nil, err
	}

	opts := append([]rowexpand.Option{rowexpand.WithLogger(logger)}, extra...)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		opts = append(opts, rowexpand.WithHooks(createDebugHooks(logger)))
	}

	table, err := def.NewTable(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing table: %w", err)
	}
	return table, def, nil
}

func createDebugHooks(logger *slog.Logger) domain.ExpansionHooks {
	return domain.ExpansionHooks{
		OnExpand: func(expanded bool, record domain.Row) {
			logger.Debug("Expand Request", "expanded", expanded, "record", record)
		},
		OnExpandedRowsChange: func(keys domain.KeySet) {
			logger.Debug("Expanded Rows Changed", "keys", keys.Strings())
		},
	}
}
