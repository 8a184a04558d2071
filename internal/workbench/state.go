// Package workbench owns the session-local UI state of the editor mockup and
// projects it, together with the content table, into a renderable Frame.
//
// State is mutated only through its methods. Every operation is total: an
// unknown file ID passed to CloseFile is ignored, and SelectFile trusts the
// caller to pass IDs from the content table.
package workbench

import (
	"slices"

	"github.com/jask/devfolio/internal/content"
)

// Panel names one of the three toggleable regions.
type Panel int

const (
	PanelLeft Panel = iota
	PanelRight
	PanelBottom
)

func (p Panel) String() string {
	switch p {
	case PanelLeft:
		return "explorer"
	case PanelRight:
		return "copilot"
	case PanelBottom:
		return "panel"
	}
	return "unknown"
}

// BottomTab identifies the content block shown in the bottom panel.
type BottomTab int

const (
	TabProblems BottomTab = iota
	TabOutput
	TabOutput2
	TabDebugConsole
	TabTerminal
)

var bottomTabLabels = []string{"PROBLEMS", "OUTPUT", "OUTPUT 2", "DEBUG CONSOLE", "TERMINAL"}

// BottomTabs lists every bottom tab in display order.
func BottomTabs() []BottomTab {
	return []BottomTab{TabProblems, TabOutput, TabOutput2, TabDebugConsole, TabTerminal}
}

func (t BottomTab) String() string {
	if t >= 0 && int(t) < len(bottomTabLabels) {
		return bottomTabLabels[t]
	}
	return "UNKNOWN"
}

// TabRules maps a file ID to the bottom tab its selection brings forward.
var TabRules = map[string]BottomTab{
	content.ThatoPy:  TabOutput,
	content.Thato2Py: TabOutput2,
	content.MainPy:   TabTerminal,
}

// State is the mutable UI record of one rendering session.
type State struct {
	Active string   // empty when no file is active
	Open   []string // open editor tabs, in opening order, no duplicates
	Left   bool
	Right  bool
	Bottom bool
	Tab    BottomTab

	rules map[string]BottomTab
}

// NewState returns the default session state: two files open, the second
// active, every panel visible.
func NewState() *State {
	return &State{
		Active: content.Thato2Py,
		Open:   []string{content.ThatoPy, content.Thato2Py},
		Left:   true,
		Right:  true,
		Bottom: true,
		Tab:    TabOutput,
		rules:  TabRules,
	}
}

// withRules replaces the file-to-tab lookup consulted by SelectFile. A nil
// map restores TabRules.
func (s *State) withRules(rules map[string]BottomTab) *State {
	s.rules = rules
	return s
}

// SelectFile focuses id, opening it at the end of the tab strip if needed.
// A file listed in the tab rules brings its bottom tab forward every time it
// is selected.
func (s *State) SelectFile(id string) {
	s.Active = id
	if !slices.Contains(s.Open, id) {
		s.Open = append(s.Open, id)
	}
	if tab, ok := s.ruleSet()[id]; ok {
		s.Tab = tab
	}
}

func (s *State) ruleSet() map[string]BottomTab {
	if s.rules == nil {
		return TabRules
	}
	return s.rules
}

// CloseFile removes id from the open tabs. Closing the active file moves
// focus to the last remaining open file, or clears it.
func (s *State) CloseFile(id string) {
	i := slices.Index(s.Open, id)
	if i < 0 {
		return
	}
	s.Open = slices.Delete(s.Open, i, i+1)
	if s.Active != id {
		return
	}
	if len(s.Open) == 0 {
		s.Active = ""
		return
	}
	s.Active = s.Open[len(s.Open)-1]
}

// CloseActive closes the active file, if any.
func (s *State) CloseActive() {
	if s.Active != "" {
		s.CloseFile(s.Active)
	}
}

// CycleFile moves focus delta tabs along the open tab strip, wrapping.
func (s *State) CycleFile(delta int) {
	n := len(s.Open)
	if n == 0 {
		return
	}
	i := slices.Index(s.Open, s.Active)
	if i < 0 {
		i = 0
		delta = 0
	}
	next := ((i+delta)%n + n) % n
	s.SelectFile(s.Open[next])
}

// TogglePanel flips the visibility of exactly one panel.
func (s *State) TogglePanel(p Panel) {
	switch p {
	case PanelLeft:
		s.Left = !s.Left
	case PanelRight:
		s.Right = !s.Right
	case PanelBottom:
		s.Bottom = !s.Bottom
	}
}

// Visible reports whether panel p is shown.
func (s *State) Visible(p Panel) bool {
	switch p {
	case PanelLeft:
		return s.Left
	case PanelRight:
		return s.Right
	case PanelBottom:
		return s.Bottom
	}
	return false
}

// SetBottomTab selects the bottom tab directly.
func (s *State) SetBottomTab(t BottomTab) {
	s.Tab = t
}

// CycleBottomTab moves delta tabs along the bottom panel tabs, wrapping.
func (s *State) CycleBottomTab(delta int) {
	n := len(bottomTabLabels)
	s.Tab = BottomTab(((int(s.Tab)+delta)%n + n) % n)
}

// IsOpen reports whether id has an editor tab.
func (s *State) IsOpen(id string) bool {
	return slices.Contains(s.Open, id)
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	c.Open = slices.Clone(s.Open)
	return &c
}
