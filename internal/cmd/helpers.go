package cmd

import (
	"fmt"

	"github.com/runger/emopick/internal/catalog"
	"github.com/runger/emopick/internal/config"
	"github.com/runger/emopick/internal/emoji"
	"github.com/runger/emopick/internal/picker"
)

// exitCode is the process exit code requested by a command.
// 0 = picked, 1 = cancelled, 2 = fallback (no tty, error).
var exitCode int

// ExitCode returns the exit code set by the last command run.
func ExitCode() int {
	return exitCode
}

// buildPicker assembles a core picker from configuration: catalog
// override, runtime version override, and the dismiss hint.
func buildPicker(cfg *config.Config) (*picker.Picker, error) {
	opts := picker.DefaultOptions()
	opts.DismissAfterChoosing = cfg.Picker.DismissAfterChoosing
	opts.HeightHint = cfg.Picker.HeightHint
	opts.ArrowDirectionHint = cfg.Picker.ArrowDirectionHint
	opts.InsetHint = cfg.Picker.InsetHint
	opts.TintHint = cfg.Picker.TintHint
	opts.HapticStyleHint = cfg.Picker.HapticStyleHint

	if cfg.Picker.CatalogPath != "" {
		records, err := catalog.LoadFile(cfg.Picker.CatalogPath)
		if err != nil {
			return nil, err
		}
		opts.Records = records
	}

	if cfg.Picker.RuntimeVersion != "" {
		v, err := emoji.ParseVersion(cfg.Picker.RuntimeVersion)
		if err != nil {
			return nil, fmt.Errorf("picker.runtime_version: %w", err)
		}
		opts.Resolver = emoji.NewResolver(emoji.DefaultTable(), v)
	}

	return picker.New(opts)
}
