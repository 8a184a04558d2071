package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/devfolio/internal/content"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the portfolio files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, e := range content.Default().Entries() {
				if _, err := fmt.Fprintf(out, "%-18s %-10s %3d lines\n", e.ID, e.Language.Label(), e.Lines()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
