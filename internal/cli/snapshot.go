package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/devfolio/internal/content"
	"github.com/jask/devfolio/internal/tui"
	"github.com/jask/devfolio/internal/workbench"
)

func newSnapshotCommand() *cobra.Command {
	var (
		width  int
		height int
		open   []string
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame of the workbench to stdout",
		Long: `Render a single frame without a terminal, e.g. for a README or a test
fixture. Files passed with --open are selected in order, exactly as if they
had been clicked in the explorer.`,
		Example: `  # Default frame
  devfolio snapshot

  # Terminal tab, plain text
  devfolio snapshot --open main.py --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width < 40 || height < 10 {
				return fmt.Errorf("snapshot size %dx%d is too small (minimum 40x10)", width, height)
			}
			e := envFrom(cmd.Context())
			tbl := content.Default()

			st := workbench.NewState()
			for _, id := range open {
				if !tbl.Has(id) {
					return unknownFile(tbl, id)
				}
				st.SelectFile(id)
			}

			keys, err := keyRegistry(e)
			if err != nil {
				return err
			}
			ui := e.cfg.UI
			ui.Mouse = false
			m := tui.New(ui,
				tui.WithLogger(e.log),
				tui.WithKeys(keys),
				tui.WithState(st),
				tui.WithSize(width, height),
			)

			view := m.View()
			if plain {
				view = ansi.Strip(view)
			}
			e.log.Debug("snapshot rendered", zap.Int("width", width), zap.Int("height", height), zap.Strings("open", open))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 120, "frame width in cells")
	cmd.Flags().IntVar(&height, "height", 40, "frame height in rows")
	cmd.Flags().StringSliceVar(&open, "open", nil, "file ids to select, in order")
	cmd.Flags().BoolVar(&plain, "plain", false, "strip colors and styles")
	return cmd
}

func unknownFile(tbl *content.Table, id string) error {
	return fmt.Errorf("unknown file %q (available: %s)", id, strings.Join(tbl.IDs(), ", "))
}
