package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/runger/emopick/internal/config"
	"github.com/runger/emopick/internal/picker"
	"github.com/runger/emopick/internal/recent"
	"github.com/runger/emopick/internal/tui"
)

// Exit codes.
// These match the expectations of shell scripts:
//
//	0 = emoji picked (use the result)
//	1 = cancelled by user
//	2 = fallback (no TTY, error)
const (
	exitPicked    = 0
	exitCancelled = 1
	exitFallback  = 2
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open the picker and print the chosen emoji",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			exitCode = exitFallback
			return err
		}
		exitCode = runPick(cfg)
		return nil
	},
}

// runPick drives the TUI and returns an exit code.
func runPick(cfg *config.Config) int {
	p, err := buildPicker(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emopick: %v\n", err)
		return exitFallback
	}

	// Open /dev/tty for TUI input/output since stdout carries the result.
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emopick: cannot open /dev/tty: %v\n", err)
		return exitFallback
	}
	defer tty.Close()

	// Detect color profile from the tty and apply it to the default
	// renderer. When invoked via $(emopick pick), stdout is a pipe so
	// lipgloss defaults to Ascii (no color). We detect from the real
	// tty instead.
	lipgloss.SetColorProfile(termenv.NewOutput(tty).ColorProfile())

	model := tui.New(p, tui.Layout{
		Columns:     cfg.TUI.Columns,
		ShowHeaders: cfg.TUI.ShowHeaders,
	})

	prog := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(tty),
		tea.WithOutput(tty),
	)

	finalModel, err := prog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "emopick: TUI error: %v\n", err)
		return exitFallback
	}

	m, ok := finalModel.(tui.Model)
	if !ok {
		fmt.Fprintln(os.Stderr, "emopick: unexpected model type")
		return exitFallback
	}

	if m.Cancelled() || m.Result() == "" {
		return exitCancelled
	}

	fmt.Fprintln(os.Stdout, m.Result())
	recordPick(cfg, p)
	return exitPicked
}

// recordPick stores the selection in the recents database. Failures
// are logged and swallowed: recents are a convenience, not a contract.
func recordPick(cfg *config.Config, p *picker.Picker) {
	if !cfg.Recents.Enabled {
		return
	}
	sel := p.State().Selected()
	if sel == nil {
		return
	}

	dbPath := cfg.Recents.DBPath
	if dbPath == "" {
		dbPath = config.DefaultPaths().RecentsFile()
	}

	store, err := recent.Open(dbPath)
	if err != nil {
		slog.Warn("recents store unavailable", "err", err)
		return
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Record(ctx, *sel); err != nil {
		slog.Warn("failed to record pick", "err", err)
		return
	}
	if err := store.Prune(ctx, cfg.Recents.MaxEntries); err != nil {
		slog.Warn("failed to prune recents", "err", err)
	}
}
