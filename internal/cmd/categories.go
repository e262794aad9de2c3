package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/emopick/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List emoji categories and their counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		p, err := buildPicker(cfg)
		if err != nil {
			return err
		}

		for sec := 0; sec < p.SectionCount(); sec++ {
			header := p.CategoryHeader(sec)
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-18s %d\n",
				header.ID(), header.Label(), p.ItemCount(sec))
		}
		return nil
	},
}
