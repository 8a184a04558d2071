package workbench

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/devfolio/internal/content"
)

func requireActiveIsOpen(t *testing.T, s *State) {
	t.Helper()
	if s.Active == "" {
		return
	}
	require.Contains(t, s.Open, s.Active)
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	require.Equal(t, []string{content.ThatoPy, content.Thato2Py}, s.Open)
	require.Equal(t, content.Thato2Py, s.Active)
	require.True(t, s.Left)
	require.True(t, s.Right)
	require.True(t, s.Bottom)
	require.Equal(t, TabOutput, s.Tab)
	requireActiveIsOpen(t, s)
}

func TestSelectFileEveryEntry(t *testing.T) {
	for _, id := range content.Default().IDs() {
		t.Run(id, func(t *testing.T) {
			s := NewState()
			s.SelectFile(id)
			require.Equal(t, id, s.Active)
			require.Contains(t, s.Open, id)
			requireActiveIsOpen(t, s)
		})
	}
}

func TestSelectFileDoesNotDuplicate(t *testing.T) {
	s := NewState()
	s.SelectFile(content.ProfileJSON)
	before := append([]string(nil), s.Open...)
	s.SelectFile(content.ProfileJSON)
	require.Equal(t, before, s.Open)

	s.SelectFile(content.ThatoPy)
	require.Equal(t, before, s.Open)
	require.Equal(t, content.ThatoPy, s.Active)
}

func TestCloseSoleOpenFile(t *testing.T) {
	s := &State{}
	s.SelectFile(content.ProfileJSON)
	s.CloseFile(content.ProfileJSON)
	require.Empty(t, s.Active)
	require.Empty(t, s.Open)
}

func TestCloseActiveReassignsToLastOpen(t *testing.T) {
	s := NewState()
	s.SelectFile(content.ProfileJSON)
	s.SelectFile(content.GetSitesSQL)
	s.SelectFile(content.ThatoPy)

	s.CloseFile(content.ThatoPy)
	require.Equal(t, []string{content.Thato2Py, content.ProfileJSON, content.GetSitesSQL}, s.Open)
	require.Equal(t, content.GetSitesSQL, s.Active)
	requireActiveIsOpen(t, s)
}

func TestCloseUnknownIsNoop(t *testing.T) {
	s := NewState()
	before := s.Clone()
	s.CloseFile("nope.txt")
	require.Equal(t, before.Open, s.Open)
	require.Equal(t, before.Active, s.Active)
}

func TestCloseActiveHelper(t *testing.T) {
	s := NewState()
	s.CloseActive()
	require.Equal(t, []string{content.ThatoPy}, s.Open)
	require.Equal(t, content.ThatoPy, s.Active)
	s.CloseActive()
	require.Empty(t, s.Active)
	s.CloseActive()
	require.Empty(t, s.Open)
}

func TestTogglePanelTwiceRestores(t *testing.T) {
	for _, p := range []Panel{PanelLeft, PanelRight, PanelBottom} {
		t.Run(p.String(), func(t *testing.T) {
			s := NewState()
			s.Right = false
			orig := s.Clone()

			s.TogglePanel(p)
			require.NotEqual(t, orig.Visible(p), s.Visible(p))
			for _, other := range []Panel{PanelLeft, PanelRight, PanelBottom} {
				if other != p {
					require.Equal(t, orig.Visible(other), s.Visible(other), other.String())
				}
			}

			s.TogglePanel(p)
			require.Equal(t, orig.Left, s.Left)
			require.Equal(t, orig.Right, s.Right)
			require.Equal(t, orig.Bottom, s.Bottom)
		})
	}
}

func TestOpenThenCloseInactiveScenario(t *testing.T) {
	s := NewState()
	fileA, fileB, fileC := content.ThatoPy, content.Thato2Py, content.ProfileJSON
	require.Equal(t, []string{fileA, fileB}, s.Open)
	require.Equal(t, fileB, s.Active)

	s.SelectFile(fileC)
	require.Equal(t, []string{fileA, fileB, fileC}, s.Open)
	require.Equal(t, fileC, s.Active)

	s.CloseFile(fileB)
	require.Equal(t, []string{fileA, fileC}, s.Open)
	require.Equal(t, fileC, s.Active)
}

func TestTerminalRuleAndManualOverride(t *testing.T) {
	s := NewState()
	s.SelectFile(content.MainPy)
	require.Equal(t, TabTerminal, s.Tab)

	s.SetBottomTab(TabProblems)
	require.Equal(t, TabProblems, s.Tab)

	s.SelectFile(content.ProfileJSON)
	require.Equal(t, TabProblems, s.Tab, "unmapped file keeps the manual tab")

	s.SelectFile(content.MainPy)
	require.Equal(t, TabTerminal, s.Tab)
}

func TestTabRulesLastSelectionWins(t *testing.T) {
	cases := []struct {
		id   string
		want BottomTab
	}{
		{content.ThatoPy, TabOutput},
		{content.Thato2Py, TabOutput2},
		{content.MainPy, TabTerminal},
		{content.ThatoPy, TabOutput},
	}
	s := NewState()
	for _, tc := range cases {
		s.SelectFile(tc.id)
		require.Equal(t, tc.want, s.Tab, tc.id)
	}
}

func TestCustomTabRules(t *testing.T) {
	s := NewState().withRules(map[string]BottomTab{content.ProfileJSON: TabDebugConsole})
	s.SelectFile(content.MainPy)
	require.Equal(t, TabOutput, s.Tab)
	s.SelectFile(content.ProfileJSON)
	require.Equal(t, TabDebugConsole, s.Tab)

	s.withRules(nil)
	s.SelectFile(content.MainPy)
	require.Equal(t, TabTerminal, s.Tab)
}

func TestCycleFileWraps(t *testing.T) {
	s := NewState()
	s.SelectFile(content.ProfileJSON)
	// open: thato, thato2, profile; active profile
	s.CycleFile(1)
	require.Equal(t, content.ThatoPy, s.Active)
	s.CycleFile(-1)
	require.Equal(t, content.ProfileJSON, s.Active)
	s.CycleFile(-4)
	require.Equal(t, content.Thato2Py, s.Active)
	require.Len(t, s.Open, 3)

	empty := &State{}
	empty.CycleFile(1)
	require.Empty(t, empty.Active)
}

func TestCycleBottomTabWraps(t *testing.T) {
	s := NewState()
	s.SetBottomTab(TabTerminal)
	s.CycleBottomTab(1)
	require.Equal(t, TabProblems, s.Tab)
	s.CycleBottomTab(-1)
	require.Equal(t, TabTerminal, s.Tab)
	s.CycleBottomTab(-7)
	require.Equal(t, TabOutput2, s.Tab)
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState()
	c := s.Clone()
	c.SelectFile(content.ProfileJSON)
	c.TogglePanel(PanelLeft)
	require.Len(t, s.Open, 2)
	require.True(t, s.Left)
}

func TestBottomTabString(t *testing.T) {
	require.Equal(t, "DEBUG CONSOLE", TabDebugConsole.String())
	require.Equal(t, "UNKNOWN", BottomTab(42).String())
	require.Len(t, BottomTabs(), 5)
}
