package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/emopick/internal/config"
	"github.com/runger/emopick/internal/recent"
)

var recentsLimit int

var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "Show recently picked emoji",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if !cfg.Recents.Enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "recents disabled")
			return nil
		}

		dbPath := cfg.Recents.DBPath
		if dbPath == "" {
			dbPath = config.DefaultPaths().RecentsFile()
		}

		store, err := recent.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open recents store: %w", err)
		}
		defer store.Close()

		picks, err := store.Top(cmd.Context(), recentsLimit)
		if err != nil {
			return err
		}
		if len(picks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no picks yet")
			return nil
		}

		for _, p := range picks {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-28s x%d\n", p.Glyph, p.ID, p.Count)
		}
		return nil
	},
}

func init() {
	recentsCmd.Flags().IntVarP(&recentsLimit, "limit", "n", 10, "maximum picks to show")
}
