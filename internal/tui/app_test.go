package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/devfolio/internal/config"
	"github.com/jask/devfolio/internal/content"
	"github.com/jask/devfolio/internal/highlight"
	"github.com/jask/devfolio/internal/workbench"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	cfg := config.Default().UI
	cfg.Mouse = false
	return newTestModelWithConfig(t, cfg, opts...)
}

func newTestModelWithConfig(t *testing.T, cfg config.UIConfig, opts ...Option) *Model {
	t.Helper()
	base := []Option{
		WithSize(120, 40),
		WithClock(func() time.Time { return fixedNow }),
		WithHighlighter(highlight.New(highlight.Options{Formatter: "noop"})),
		WithClipboard(func(string) error { return nil }),
	}
	return New(cfg, append(base, opts...)...)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		next, c := m.Update(msg)
		got, ok := next.(*Model)
		require.True(t, ok, "Update returned %T", next)
		require.Same(t, m, got)
		cmd = c
	}
	return cmd
}

func typeText(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		press(t, m, runes(string(r)))
	}
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestDefaultFrame(t *testing.T) {
	m := newTestModel(t)
	view := plainView(m)

	for _, want := range []string{
		"thato2.py - portfolio",
		"EXPLORER",
		"thato.py",
		"getSites.sql",
		"README.md",
		"from flask import Flask",
		"OUTPUT 2",
		"[Running] python -u",
		"Hello World",
		"CHAT",
		"GitHub Copilot",
		"Hello! I'm GitHub",
		"@ thato2.py",
		"Python",
	} {
		require.Contains(t, view, want)
	}
	require.NotContains(t, view, "No problems have been detected")
}

func TestFrameFillsTerminal(t *testing.T) {
	m := newTestModel(t)
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 40)
	for i, line := range lines {
		require.Equal(t, 120, ansi.StringWidth(line), "row %d: %q", i, ansi.Strip(line))
	}
}

func TestExplorerSelectAppliesTabRule(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusExplorer, m.focus)
	require.Equal(t, 1, m.cursor)

	press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})

	st := m.State()
	require.Equal(t, content.MainPy, st.Active)
	require.Equal(t, workbench.TabTerminal, st.Tab)
	require.Equal(t, []string{content.ThatoPy, content.Thato2Py, content.MainPy}, st.Open)

	view := plainView(m)
	require.Contains(t, view, `PS C:\Users\Thato\Portfolio> python main.py`)
	require.Contains(t, view, "main.py - portfolio")
	require.NotContains(t, view, "2024-05-01")

	press(t, m, runes("G"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, content.Readme, m.State().Active)
	require.Equal(t, workbench.TabTerminal, m.State().Tab, "README.md has no tab rule")
}

func TestOutput2ShowsRequestTime(t *testing.T) {
	cfg := config.Default().UI
	cfg.Mouse = false
	cfg.PanelHeight = 16
	m := newTestModelWithConfig(t, cfg)

	press(t, m, runes("]"), runes("]"))
	require.Equal(t, content.Thato2Py, m.State().Active)
	require.Equal(t, workbench.TabOutput2, m.State().Tab)

	view := plainView(m)
	require.Contains(t, view, "* Serving Flask app 'PORTFOLIO'")
	require.Contains(t, view, `| 127.0.0.1 - - [2024-05-01 09:30] "GET / HTTP/1.1" 200 -`)
}

func TestExplorerNavigateClamps(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	press(t, m, runes("k"), runes("k"), runes("k"))
	require.Equal(t, 0, m.cursor)
	press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, content.Thato2Py, m.State().Active)
}

func TestTogglePanels(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.False(t, m.State().Left)
	require.Equal(t, focusEditor, m.focus)
	require.Zero(t, m.dims.Sidebar)
	require.NotContains(t, plainView(m), "EXPLORER")

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL}, tea.KeyMsg{Type: tea.KeyCtrlJ})
	view := plainView(m)
	require.NotContains(t, view, "GitHub Copilot")
	require.NotContains(t, view, "[Running]")
	require.Zero(t, m.dims.Panel)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.True(t, m.State().Left)
	require.Contains(t, plainView(m), "EXPLORER")
}

func TestCloseEditorsShowsWelcome(t *testing.T) {
	m := newTestModel(t)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	require.Equal(t, content.ThatoPy, m.State().Active)
	require.Contains(t, plainView(m), `print("Hello World")`)

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	st := m.State()
	require.Empty(t, st.Active)
	require.Empty(t, st.Open)

	view := plainView(m)
	require.Contains(t, view, "Go to File")
	require.Contains(t, view, "ctrl+p")
	require.Contains(t, view, "Plain Text")
	require.Contains(t, view, "Welcome - portfolio")
	require.Contains(t, view, "@ No file")

	// Closing with nothing open is a no-op.
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlW})
	require.Empty(t, m.State().Open)
}

func TestCycleEditorTabs(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("]"))
	require.Equal(t, content.ThatoPy, m.State().Active)
	require.Equal(t, workbench.TabOutput, m.State().Tab)

	press(t, m, runes("["))
	require.Equal(t, content.Thato2Py, m.State().Active)
	require.Equal(t, workbench.TabOutput2, m.State().Tab)
}

func TestPanelTabKeys(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusPanel, m.focus)

	press(t, m, runes("l"))
	require.Equal(t, workbench.TabOutput2, m.State().Tab)
	require.Contains(t, plainView(m), "* Serving Flask app 'PORTFOLIO'")

	press(t, m, runes("1"))
	require.Equal(t, workbench.TabProblems, m.State().Tab)
	require.Contains(t, plainView(m), "No problems have been detected")

	press(t, m, runes("h"))
	require.Equal(t, workbench.TabTerminal, m.State().Tab)

	press(t, m, runes("9"))
	require.Equal(t, workbench.TabTerminal, m.State().Tab)
}

func TestFocusRingSkipsHiddenPanels(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlJ}, tea.KeyMsg{Type: tea.KeyCtrlB})
	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusEditor, m.focus)
}

func TestQuickOpenSelectsRankedMatch(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.True(t, m.quickOpen)
	require.Len(t, m.matches, 7)

	typeText(t, m, "main")
	require.Equal(t, content.MainPy, m.matches[0].Name)
	require.Contains(t, plainView(m), "> main")

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.quickOpen)
	require.Equal(t, content.MainPy, m.State().Active)
	require.Equal(t, workbench.TabTerminal, m.State().Tab)
}

func TestQuickOpenTypesGlobalKeys(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})

	cmd := press(t, m, runes("q"))
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		require.False(t, quit)
	}
	require.True(t, m.quickOpen)
	require.Equal(t, "q", m.query.Value())

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.quickOpen)
	require.Equal(t, content.Thato2Py, m.State().Active)
}

func TestQuickOpenNoMatches(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	typeText(t, m, "zzzzzzzzzz")
	require.Empty(t, m.matches)
	require.Contains(t, plainView(m), "No matching files")

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.quickOpen)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCopyActiveFile(t *testing.T) {
	var got string
	m := newTestModel(t, WithClipboard(func(s string) error {
		got = s
		return nil
	}))

	cmd := press(t, m, runes("y"))
	require.NotNil(t, cmd)
	press(t, m, cmd())

	flask, _ := content.Default().Get(content.Thato2Py)
	require.Equal(t, flask.Body, got)
	require.Contains(t, plainView(m), "Copied thato2.py to clipboard")
}

func TestCopyFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newTestModel(t,
		WithLogger(zap.New(core)),
		WithClipboard(func(string) error { return errors.New("no clipboard utility") }),
	)

	cmd := press(t, m, runes("y"))
	press(t, m, cmd())

	require.True(t, m.statusErr)
	require.Contains(t, plainView(m), "Copy failed")
	entries := logs.FilterMessage("clipboard write failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, content.Thato2Py, entries[0].ContextMap()["file"])
}

func TestSelectionIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newTestModel(t, WithLogger(zap.New(core)))

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	typeText(t, m, "main")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	entries := logs.FilterMessage("file selected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, content.MainPy, fields["file"])
	require.Equal(t, "TERMINAL", fields["panel_tab"])
}

func TestEditorScrolls(t *testing.T) {
	m := newTestModel(t, WithSize(120, 20)) // thato2.py is longer than the editor
	require.Positive(t, m.editor.TotalLineCount()-m.editor.Height)

	press(t, m, runes("j"))
	require.Equal(t, 1, m.editor.YOffset)
	require.Contains(t, plainView(m), "Ln 2, Col 1")

	press(t, m, runes("G"))
	require.True(t, m.editor.AtBottom())
	press(t, m, runes("g"))
	require.Zero(t, m.editor.YOffset)
}

func TestResizeRecomputesLayout(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	require.Equal(t, 60, m.dims.Width)
	require.Zero(t, m.dims.Copilot)
	require.Equal(t, 26, m.dims.Sidebar)
	require.Equal(t, m.dims.Center, m.editor.Width)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		require.Equal(t, 60, ansi.StringWidth(line))
	}
}

func TestMouseIgnoredWithoutZones(t *testing.T) {
	m := newTestModel(t)
	require.Nil(t, m.Zones())
	press(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Equal(t, content.Thato2Py, m.State().Active)
}

func TestWithStateAndKeys(t *testing.T) {
	st := workbench.NewState()
	st.SelectFile(content.ProfileJSON)
	keys := NewKeyRegistry()
	require.NoError(t, keys.ApplyKeybindingConfig([]config.KeybindingConfig{
		{Scope: scopeGlobal, Action: string(actionCloseEditor), Keys: []string{"x"}},
	}))

	m := newTestModel(t, WithState(st), WithKeys(keys))
	require.Contains(t, plainView(m), `"role": "EMF Compliance Engineer"`)

	press(t, m, runes("x"))
	require.Equal(t, content.Thato2Py, m.State().Active)
}

func TestCopilotChipFollowsActiveFile(t *testing.T) {
	m := newTestModel(t)
	require.Contains(t, plainView(m), "@ thato2.py")

	m.State().SelectFile(content.GetSitesSQL)
	view := plainView(m)
	require.Contains(t, view, "@ getSites.sql")
	require.NotContains(t, view, "@ thato2.py")
	require.Contains(t, view, "getSites.sql - portfolio")
}

func TestQuickOpenKeepsFrameShape(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 40)
	for i, line := range lines {
		require.Equal(t, 120, ansi.StringWidth(line), "row %d: %q", i, ansi.Strip(line))
	}

	// The palette sits on the first body row, centred over the editor column.
	x, y := m.quickOpenOrigin()
	require.Equal(t, 1, y)
	require.Equal(t, activityWidth+m.dims.Sidebar+(m.dims.Center-m.quickOpenWidth())/2, x)
	cells := func(row, from, n int) string {
		return ansi.Strip(ansi.Truncate(ansi.TruncateLeft(lines[row], from, ""), n, ""))
	}
	require.Equal(t, "╭", cells(y, x, 1))
	require.Equal(t, "│ > ", cells(y+1, x, 4))
	// Columns left of the palette still show the explorer.
	require.Contains(t, cells(3, 0, x), "thato.py")
}
