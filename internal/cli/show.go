package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/devfolio/internal/content"
	"github.com/jask/devfolio/internal/highlight"
)

func newShowCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print one portfolio file with syntax highlighting",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return content.Default().IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd.Context())
			tbl := content.Default()
			entry, ok := tbl.Get(args[0])
			if !ok {
				return unknownFile(tbl, args[0])
			}

			opts := highlight.Options{
				Style:       e.cfg.UI.Theme,
				LineNumbers: e.cfg.UI.LineNumbers,
				TabWidth:    e.cfg.UI.TabWidth,
			}
			if plain {
				opts.Formatter = "noop"
			}
			out, err := highlight.New(opts).Render(entry.Body, entry.Language.String())
			if err != nil {
				// The plain text is still usable.
				e.log.Warn("highlight failed", zap.String("file", entry.ID), zap.Error(err))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable syntax colors")
	return cmd
}
