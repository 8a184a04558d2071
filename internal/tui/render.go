package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/devfolio/internal/icons"
	"github.com/jask/devfolio/internal/workbench"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleBarStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Background(colorTitleBar)

	titleTextStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorTitleBar)

	activityStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Background(colorActivityBar)

	activityActiveStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorActivityBar)

	sidebarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSideBar)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)

	focusTitleStyle = lipgloss.NewStyle().
			Foreground(colorFocus).
			Bold(true)

	fileActiveStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorSelection)

	separatorStyle = lipgloss.NewStyle().Foreground(colorBorder)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorTabActive)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Background(colorTabInactive)

	breadcrumbStyle = lipgloss.NewStyle().Foreground(colorTextMuted)

	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted).
				Bold(true)

	welcomeHintStyle = lipgloss.NewStyle().Foreground(colorTextDim)

	panelTabStyle = lipgloss.NewStyle().Foreground(colorTextMuted)

	panelTabActiveStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Underline(true)

	panelBodyStyle = lipgloss.NewStyle().Foreground(colorText)

	copilotBubbleStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorTabInactive).
				Padding(0, 1)

	chipStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Background(colorEditor)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorStatusBar)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorError).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Background(colorPanel)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().Foreground(colorTextMuted)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorInput).
			Padding(0, 1)

	matchCursorStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorSelection)
)

var menuItems = []string{"File", "Edit", "Selection", "View", "Go", "Run", "Terminal", "Help"}

// ---------------------------------------------------------------------------
// Frame
// ---------------------------------------------------------------------------

func (m *Model) View() string {
	f := workbench.Project(m.table, m.state, m.now())
	d := m.dims

	rows := make([]string, 0, d.Height)
	rows = append(rows, m.renderTitleBar(f))
	rows = append(rows, m.renderBody(f)...)
	rows = append(rows, m.renderStatusBar(f))
	rows = append(rows, m.renderFooter(m.helpBindings()))

	if m.quickOpen {
		x, y := m.quickOpenOrigin()
		stamp(rows, m.renderQuickOpen(), x, y, d.Width)
	}
	view := strings.Join(rows, "\n")
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}

// windowTitle names the active file, or Welcome when no editor is open.
func (m *Model) windowTitle(f workbench.Frame) string {
	name := "Welcome"
	if f.Editor != nil {
		name = f.Editor.Name
	}
	return name + " - " + m.cfg.Workspace
}

func (m *Model) renderTitleBar(f workbench.Frame) string {
	w := m.dims.Width
	menu := " " + strings.Join(menuItems, "  ")
	title := ansi.Truncate(m.windowTitle(f), max(0, w/2), "…")

	// Centre the title; drop the menu when they would overlap.
	x := max(0, (w-ansi.StringWidth(title))/2)
	left := ""
	if ansi.StringWidth(menu)+2 <= x {
		left = menu
	}
	line := fit(left, x) + titleTextStyle.Render(title)
	return titleBarStyle.Render(fit(line, w))
}

// renderBody lays the activity bar, sidebar, editor column and Copilot panel
// side by side, one terminal row at a time.
func (m *Model) renderBody(f workbench.Frame) []string {
	d := m.dims
	cols := [][]string{m.renderActivityBar(f)}
	if d.Sidebar > 0 {
		cols = append(cols, m.renderSidebar(f))
	}
	cols = append(cols, m.renderCenter(f))
	if d.Copilot > 0 {
		cols = append(cols, m.renderCopilot(f))
	}

	out := make([]string, d.Body)
	for row := range out {
		var b strings.Builder
		for _, col := range cols {
			if row < len(col) {
				b.WriteString(col[row])
			}
		}
		out[row] = b.String()
	}
	return out
}

func (m *Model) renderActivityBar(f workbench.Frame) []string {
	glyph := func(name icons.Name, active bool) string {
		style := activityStyle
		if active {
			style = activityActiveStyle
		}
		return style.Render(fit(" "+m.glyphs.Glyph(name), activityWidth))
	}
	blank := activityStyle.Render(strings.Repeat(" ", activityWidth))

	items := []string{
		m.mark(zoneExplorer, glyph(icons.Files, f.Left)),
		glyph(icons.Search, false),
		glyph(icons.Branch, false),
		glyph(icons.Debug, false),
		glyph(icons.Extensions, false),
	}
	rows := make([]string, m.dims.Body)
	for i := range rows {
		rows[i] = blank
	}
	for i, item := range items {
		if r := i * 2; r < len(rows) {
			rows[r] = item
		}
	}
	if n := len(rows); n > len(items)*2 {
		rows[n-1] = m.mark(zoneCopilot, glyph(icons.Copilot, f.Right))
	}
	return rows
}

func (m *Model) renderSidebar(f workbench.Frame) []string {
	w := m.dims.Sidebar - 1
	header := sectionTitleStyle
	if m.focus == focusExplorer {
		header = focusTitleStyle
	}

	lines := []string{
		header.Render(" EXPLORER"),
		sectionTitleStyle.Render(" v " + strings.ToUpper(m.cfg.Workspace)),
	}
	for i, item := range f.Sidebar {
		icon := m.iconStyle(item.Icon).Render(m.glyphs.Glyph(item.Icon))
		name := item.Name
		if item.Active {
			name = fileActiveStyle.Render(name)
		}
		row := fit("   "+icon+" "+name, w)
		if m.focus == focusExplorer && i == m.cursor {
			row = cursorRowStyle.Render(fit("   "+m.glyphs.Glyph(item.Icon)+" "+item.Name, w))
		}
		lines = append(lines, m.mark(zoneFile+item.ID, row))
	}
	return withEdge(paint(sidebarStyle, fitBlock(strings.Join(lines, "\n"), w, m.dims.Body)), false)
}

func (m *Model) iconStyle(name icons.Name) lipgloss.Style {
	if c, ok := iconColors[string(name)]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(colorTextMuted)
}

func (m *Model) renderCenter(f workbench.Frame) []string {
	d := m.dims
	rows := make([]string, 0, d.Body)
	rows = append(rows, m.renderTabStrip(f))
	rows = append(rows, m.renderBreadcrumbs(f))
	rows = append(rows, m.renderEditor(f)...)
	if d.Panel > 0 {
		rows = append(rows, m.renderPanel(f)...)
	}
	return rows
}

func (m *Model) renderTabStrip(f workbench.Frame) string {
	w := m.dims.Center
	var b strings.Builder
	for _, t := range f.Tabs {
		style := inactiveTabStyle
		if t.Active {
			style = activeTabStyle
		}
		icon := m.iconStyle(t.Icon).Inherit(style).Render(m.glyphs.Glyph(t.Icon))
		label := style.Render(" ") + icon + style.Render(" "+t.Name+" ")
		closeGlyph := style.Render(m.glyphs.Glyph(icons.Close) + " ")
		b.WriteString(m.mark(zoneTab+t.ID, label))
		b.WriteString(m.mark(zoneClose+t.ID, closeGlyph))
		b.WriteString(separatorStyle.Render("│"))
	}
	return fit(b.String(), w)
}

func (m *Model) renderBreadcrumbs(f workbench.Frame) string {
	if f.Editor == nil {
		return fit("", m.dims.Center)
	}
	return breadcrumbStyle.Render(fit(" "+m.cfg.Workspace+" > "+f.Editor.Name, m.dims.Center))
}

func (m *Model) renderEditor(f workbench.Frame) []string {
	d := m.dims
	if d.Editor == 0 {
		return nil
	}
	if f.Editor == nil {
		welcome := strings.Join([]string{
			welcomeTitleStyle.Render("devfolio"),
			"",
			welcomeHintStyle.Render("Go to File      " + m.firstKey(actionQuickOpen)),
			welcomeHintStyle.Render("Toggle Explorer " + m.firstKey(actionToggleLeft)),
			welcomeHintStyle.Render("Toggle Panel    " + m.firstKey(actionToggleBottom)),
		}, "\n")
		placed := lipgloss.Place(d.Center, d.Editor, lipgloss.Center, lipgloss.Center, welcome)
		return fitBlock(m.mark(zoneEditor, placed), d.Center, d.Editor)
	}
	return fitBlock(m.mark(zoneEditor, m.editor.View()), d.Center, d.Editor)
}

// firstKey returns the first global key bound to action.
func (m *Model) firstKey(action Action) string {
	for _, b := range m.keys.BindingsForScope(scopeGlobal) {
		if b.Action == action && len(b.Keys) > 0 {
			return b.Keys[0]
		}
	}
	return ""
}

func (m *Model) renderPanel(f workbench.Frame) []string {
	d := m.dims
	w := d.Center

	labels := make([]string, 0, len(f.Panel.Tabs))
	for _, t := range f.Panel.Tabs {
		style := panelTabStyle
		if t == f.Panel.Tab {
			style = panelTabActiveStyle
		}
		labels = append(labels, m.mark(zonePanelTab+t.String(), style.Render(t.String())))
	}
	header := " " + strings.Join(labels, "   ")
	if m.focus == focusPanel {
		header = focusTitleStyle.Render(">") + header
	}

	sep := separatorStyle.Render(strings.Repeat("─", max(0, w)))
	rows := []string{sep, fit(header, w)}

	bodyRows := max(0, d.Panel-len(rows))
	var body []string
	for _, line := range strings.Split(f.Panel.Body, "\n") {
		body = append(body, panelBodyStyle.Render(" "+line))
	}
	rows = append(rows, fitBlock(strings.Join(body, "\n"), w, bodyRows)...)
	return rows
}

const copilotGreeting = "Hello! I'm GitHub Copilot. I can help you with your code, or can I?"

func (m *Model) renderCopilot(f workbench.Frame) []string {
	d := m.dims
	w := d.Copilot - 1
	inner := max(1, w-2)

	greeting := copilotBubbleStyle.Width(inner).Render(copilotGreeting)
	lines := []string{
		sectionTitleStyle.Render(" CHAT"),
		"",
		" " + m.glyphs.Glyph(icons.Copilot) + " GitHub Copilot",
	}
	for _, l := range strings.Split(greeting, "\n") {
		lines = append(lines, " "+l)
	}

	box := inputBoxStyle.Width(max(1, w-4)).Render(m.attachmentChip(f) + "\n" + m.chat.View())
	boxLines := strings.Split(box, "\n")
	top := max(len(lines), d.Body-len(boxLines))
	for len(lines) < top {
		lines = append(lines, "")
	}
	for _, l := range boxLines {
		lines = append(lines, " "+l)
	}
	return withEdge(paint(sidebarStyle, fitBlock(strings.Join(lines, "\n"), w, d.Body)), true)
}

// attachmentChip names the file the Copilot input would be asked about.
func (m *Model) attachmentChip(f workbench.Frame) string {
	name := "No file"
	if f.Editor != nil {
		name = f.Editor.Name
	}
	return chipStyle.Render(m.glyphs.Glyph(icons.Attach) + " " + name)
}

func (m *Model) renderStatusBar(f workbench.Frame) string {
	w := m.dims.Width
	left := fmt.Sprintf(" %s %s  %s %d  %s 0 ",
		m.glyphs.Glyph(icons.Branch), f.Status.Branch,
		m.glyphs.Glyph(icons.Error), f.Status.Problems,
		m.glyphs.Glyph(icons.Warning))

	right := ""
	if f.Editor != nil {
		right = fmt.Sprintf("Ln %d, Col 1  Spaces: %d  UTF-8  LF  ", m.editor.YOffset+1, m.hl.Options().TabWidth)
	}
	right += f.Status.Language + "  " + m.glyphs.Glyph(icons.Bell) + " "

	middle := ""
	if m.status != "" {
		style := statusBarStyle
		if m.statusErr {
			style = statusErrStyle
		}
		middle = style.Render(" " + m.status + " ")
	}

	gap := w - ansi.StringWidth(left) - ansi.StringWidth(middle) - ansi.StringWidth(right)
	if gap < 0 {
		return statusBarStyle.Render(fit(left+middle, w))
	}
	line := left + middle + strings.Repeat(" ", gap) + right
	return statusBarStyle.Render(line)
}

func (m *Model) helpBindings() []key.Binding {
	scope := m.scope()
	bindings := m.keys.HelpBindings(scope)
	if scope == scopeQuickOpen {
		return bindings
	}
	global := m.keys.HelpBindings(scopeGlobal)
	return append(bindings, global...)
}

func (m *Model) renderFooter(bindings []key.Binding) string {
	// Every character carries the footer background.
	bg := colorPanel
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := " " + strings.Join(parts, sep)
	return footerStyle.Render(fit(content, m.dims.Width))
}

// ---------------------------------------------------------------------------
// Quick open modal
// ---------------------------------------------------------------------------

func (m *Model) quickOpenWidth() int {
	w := m.dims.Width
	if w <= 0 {
		w = defaultWidth
	}
	return max(20, min(60, w-4))
}

func (m *Model) quickOpenView() string {
	inner := m.quickOpenWidth() - 4
	lines := []string{fit(m.query.View(), inner)}
	if len(m.matches) == 0 {
		lines = append(lines, fit(helpDescStyle.Render("No matching files"), inner))
	}
	for i, match := range m.matches {
		if i == maxQuickOpenRows {
			break
		}
		icon := workbench.IconFor(match.Name)
		row := " " + m.glyphs.Glyph(icon) + " " + match.Name
		if i == m.qoCursor {
			lines = append(lines, matchCursorStyle.Render(fit(row, inner)))
			continue
		}
		lines = append(lines, fit(row, inner))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderQuickOpen() string {
	return modalStyle.Render(m.quickOpenView())
}

// quickOpenOrigin centres the palette over the editor column, on the first
// body row, clamped to the screen.
func (m *Model) quickOpenOrigin() (int, int) {
	d := m.dims
	left := activityWidth + d.Sidebar
	x := left + (d.Center-m.quickOpenWidth())/2
	return max(0, min(x, d.Width-m.quickOpenWidth())), 1
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// paint applies style to every already-fitted line.
func paint(style lipgloss.Style, lines []string) []string {
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return lines
}

// withEdge adds a one-column border on the left or right of every line.
func withEdge(lines []string, left bool) []string {
	edge := separatorStyle.Render("│")
	for i, l := range lines {
		if left {
			lines[i] = edge + l
		} else {
			lines[i] = l + edge
		}
	}
	return lines
}
