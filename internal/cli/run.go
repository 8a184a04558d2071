package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/devfolio/internal/tui"
)

func runWorkbench(cmd *cobra.Command) error {
	e := envFrom(cmd.Context())

	keys, err := keyRegistry(e)
	if err != nil {
		return err
	}
	m := tui.New(e.cfg.UI, tui.WithLogger(e.log), tui.WithKeys(keys))

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if e.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	e.log.Info("workbench started",
		zap.Bool("mouse", e.cfg.UI.Mouse),
		zap.String("theme", e.cfg.UI.Theme),
	)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		e.log.Error("workbench failed", zap.Error(err))
		return fmt.Errorf("run workbench: %w", err)
	}
	e.log.Info("workbench stopped")
	return nil
}

func keyRegistry(e *env) (*tui.KeyRegistry, error) {
	keys := tui.NewKeyRegistry()
	if err := keys.ApplyKeybindingConfig(e.cfg.Keybindings); err != nil {
		return nil, fmt.Errorf("keybindings: %w", err)
	}
	return keys, nil
}
