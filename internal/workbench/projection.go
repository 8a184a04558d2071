package workbench

import (
	"path"
	"strings"
	"time"

	"github.com/jask/devfolio/internal/content"
	"github.com/jask/devfolio/internal/icons"
)

// SidebarItem is one row of the explorer.
type SidebarItem struct {
	ID     string
	Name   string
	Icon   icons.Name
	Active bool
	Open   bool
}

// TabItem is one editor tab.
type TabItem struct {
	ID     string
	Name   string
	Icon   icons.Name
	Active bool
}

// PanelView is the bottom panel content.
type PanelView struct {
	Tab  BottomTab
	Tabs []BottomTab
	Body string
}

// StatusView holds the status bar fields that depend on state.
type StatusView struct {
	Branch   string
	Language string
	Lines    int
	Problems int
}

// Frame is everything the view layer needs to draw one screen.
type Frame struct {
	Sidebar []SidebarItem
	Tabs    []TabItem
	Editor  *content.FileEntry // nil shows the welcome placeholder
	Panel   PanelView
	Status  StatusView

	Left   bool
	Right  bool
	Bottom bool
}

// IconFor maps a file name suffix to its symbolic icon.
func IconFor(name string) icons.Name {
	switch strings.ToLower(path.Ext(name)) {
	case ".py":
		return icons.Code
	case ".md":
		return icons.Text
	case ".json":
		return icons.Data
	case ".sql":
		return icons.Stack
	}
	return icons.Text
}

// Project derives a Frame from the table and state. It reads nothing else;
// now is only used to stamp the terminal block.
func Project(tbl *content.Table, st *State, now time.Time) Frame {
	f := Frame{
		Left:   st.Left,
		Right:  st.Right,
		Bottom: st.Bottom,
		Status: StatusView{Branch: "main", Language: content.Language("").Label()},
	}

	for _, e := range tbl.Entries() {
		f.Sidebar = append(f.Sidebar, SidebarItem{
			ID:     e.ID,
			Name:   e.Name,
			Icon:   IconFor(e.Name),
			Active: e.ID == st.Active,
			Open:   st.IsOpen(e.ID),
		})
	}

	for _, id := range st.Open {
		name := id
		if e, ok := tbl.Get(id); ok {
			name = e.Name
		}
		f.Tabs = append(f.Tabs, TabItem{
			ID:     id,
			Name:   name,
			Icon:   IconFor(name),
			Active: id == st.Active,
		})
	}

	if e, ok := tbl.Get(st.Active); ok {
		f.Editor = &e
		f.Status.Language = e.Language.Label()
		f.Status.Lines = e.Lines()
	}

	f.Panel = PanelView{
		Tab:  st.Tab,
		Tabs: BottomTabs(),
		Body: PanelBody(st.Tab, now),
	}
	return f
}
