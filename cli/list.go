package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured control regions and plot variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "regions:")
			for _, r := range cfg.Regions {
				fmt.Fprintf(out, "  %-12s (data: %s)\n", r.Name, r.Data)
			}
			fmt.Fprintln(out, "plots:")
			for _, p := range cfg.Plots {
				scale := "lin"
				if p.LogY {
					scale = "log"
				}
				fmt.Fprintf(out, "  %-18s %-20s %s\n", p.Hist, p.XLabel, scale)
			}
			return nil
		},
	}
}
