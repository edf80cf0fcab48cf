package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cipherlab/internal/history"
)

func newHistoryCommand(o *rootOptions, s Streams) *cobra.Command {
	var last int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded cipher runs",
		Long: `List the runs recorded in the history file (history.enabled = true).

Only the cipher, direction, lengths and outcome are recorded; messages and
keys never are.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ss, err := newSession(o, s)
			if err != nil {
				return err
			}
			entries, err := history.ReadFile(ss.cfg.History.Path)
			if err != nil {
				return err
			}
			ss.render.history(s.Out, history.Tail(entries, last))

			return nil
		},
	}
	cmd.Flags().IntVarP(&last, "last", "n", 20, "number of most recent runs to show (0 for all)")

	return cmd
}

func newConfigCommand(o *rootOptions, s Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ss, err := newSession(o, s)
			if err != nil {
				return err
			}

			return ss.cfg.WriteTOML(s.Out)
		},
	})

	return cmd
}
