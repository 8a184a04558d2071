package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/jask/devfolio/internal/config"
	"github.com/jask/devfolio/internal/content"
	"github.com/jask/devfolio/internal/highlight"
	"github.com/jask/devfolio/internal/icons"
	"github.com/jask/devfolio/internal/quickopen"
	"github.com/jask/devfolio/internal/workbench"
)

// Model is the Bubble Tea model of the workbench. All session state lives in
// the embedded workbench.State; the rest is view plumbing.
type Model struct {
	cfg    config.UIConfig
	table  *content.Table
	state  *workbench.State
	hl     *highlight.Renderer
	glyphs icons.Provider
	keys   *KeyRegistry
	zones  *zone.Manager
	log    *zap.Logger
	now    func() time.Time
	copy   func(string) error

	width  int
	height int
	dims   Dimensions

	focus       focusArea
	cursor      int
	editor      viewport.Model
	editorID    string
	editorLines []string
	chat        textinput.Model

	quickOpen bool
	query     textinput.Model
	matches   []quickopen.Match
	qoCursor  int

	status    string
	statusErr bool
}

type focusArea int

const (
	focusExplorer focusArea = iota
	focusEditor
	focusPanel
)

func (f focusArea) String() string {
	switch f {
	case focusExplorer:
		return "explorer"
	case focusPanel:
		return "panel"
	}
	return "editor"
}

// maxQuickOpenRows caps the result list of the quick-open modal.
const maxQuickOpenRows = 8

// Option customises a Model.
type Option func(*Model)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock replaces time.Now for the terminal timestamp.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.copy = write
		}
	}
}

// WithState starts the model from st instead of workbench.NewState.
func WithState(st *workbench.State) Option {
	return func(m *Model) {
		if st != nil {
			m.state = st
		}
	}
}

// WithTable replaces the built-in portfolio content.
func WithTable(t *content.Table) Option {
	return func(m *Model) {
		if t != nil && t.Len() > 0 {
			m.table = t
		}
	}
}

// WithKeys replaces the key registry.
func WithKeys(r *KeyRegistry) Option {
	return func(m *Model) {
		if r != nil {
			m.keys = r
		}
	}
}

// WithHighlighter replaces the renderer built from the UI config.
func WithHighlighter(r *highlight.Renderer) Option {
	return func(m *Model) {
		if r != nil {
			m.hl = r
		}
	}
}

// WithSize sets the terminal size up front, for rendering without a TTY.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width, m.height = width, height
	}
}

// New builds the model. Mouse zones are only tracked when cfg.Mouse is set.
func New(cfg config.UIConfig, opts ...Option) *Model {
	m := &Model{
		cfg:    cfg,
		table:  content.Default(),
		state:  workbench.NewState(),
		glyphs: icons.New(cfg.NerdFonts),
		keys:   NewKeyRegistry(),
		log:    zap.NewNop(),
		now:    time.Now,
		copy:   clipboard.WriteAll,
		focus:  focusEditor,
		editor: viewport.New(0, 0),
	}
	m.hl = highlight.New(highlight.Options{
		Style:       cfg.Theme,
		LineNumbers: cfg.LineNumbers,
		TabWidth:    cfg.TabWidth,
	})
	if cfg.Mouse {
		m.zones = zone.New()
	}

	m.chat = textinput.New()
	m.chat.Prompt = ""
	m.chat.Placeholder = "Ask Copilot or type / for commands"

	m.query = textinput.New()
	m.query.Prompt = "> "
	m.query.Placeholder = "Search files by name"

	for _, opt := range opts {
		opt(m)
	}
	m.cursor = m.indexOf(m.state.Active)
	m.resize()
	return m
}

// State exposes the workbench state for inspection.
func (m *Model) State() *workbench.State { return m.state }

// Zones returns the mouse zone manager, nil when mouse support is off.
func (m *Model) Zones() *zone.Manager { return m.zones }

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("devfolio - " + m.cfg.Workspace)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if m.quickOpen {
			return m.handleQuickOpenKey(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn("clipboard write failed", zap.String("file", msg.id), zap.Error(msg.err))
			m.setError("Copy failed: " + msg.err.Error())
			return m, nil
		}
		m.log.Debug("file copied", zap.String("file", msg.id))
		m.setStatus("Copied " + msg.id + " to clipboard")
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func (m *Model) scope() string {
	if m.quickOpen {
		return scopeQuickOpen
	}
	switch m.focus {
	case focusExplorer:
		return scopeExplorer
	case focusPanel:
		return scopePanel
	}
	return scopeEditor
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	b := m.keys.Lookup(keyName, m.scope())
	if b == nil {
		return m, nil
	}

	switch b.Action {
	case actionQuit:
		m.log.Info("quit")
		return m, tea.Quit
	case actionQuickOpen:
		return m, m.openQuickOpen()
	case actionNextFocus:
		m.cycleFocus(1)
	case actionPrevFocus:
		m.cycleFocus(-1)
	case actionToggleLeft:
		m.togglePanel(workbench.PanelLeft)
	case actionToggleBottom:
		m.togglePanel(workbench.PanelBottom)
	case actionToggleRight:
		m.togglePanel(workbench.PanelRight)
	case actionCloseEditor:
		closed := m.state.Active
		m.state.CloseActive()
		m.log.Debug("editor closed", zap.String("file", closed), zap.String("active", m.state.Active))
		m.syncEditor(false)
	case actionNextEditor:
		m.state.CycleFile(1)
		m.afterSelect()
	case actionPrevEditor:
		m.state.CycleFile(-1)
		m.afterSelect()
	case actionNavigate:
		m.moveCursor(direction(keyName))
	case actionSelect:
		if ids := m.table.IDs(); m.cursor >= 0 && m.cursor < len(ids) {
			m.selectFile(ids[m.cursor])
		}
	case actionJumpTop:
		if m.focus == focusExplorer {
			m.cursor = 0
		} else {
			m.editor.GotoTop()
		}
	case actionJumpBottom:
		if m.focus == focusExplorer {
			m.cursor = max(0, m.table.Len()-1)
		} else {
			m.editor.GotoBottom()
		}
	case actionScroll:
		m.editor.SetYOffset(m.editor.YOffset + direction(keyName))
	case actionPage:
		m.editor.SetYOffset(m.editor.YOffset + direction(keyName)*max(1, m.editor.Height))
	case actionCopy:
		return m, m.copyCmd()
	case actionNextPanelTab:
		m.state.CycleBottomTab(1)
	case actionPrevPanelTab:
		m.state.CycleBottomTab(-1)
	case actionPickPanelTab:
		tabs := workbench.BottomTabs()
		if n := int(keyName[0] - '1'); len(keyName) == 1 && n >= 0 && n < len(tabs) {
			m.state.SetBottomTab(tabs[n])
		}
	}
	return m, nil
}

// direction maps a navigation key to -1 (back) or +1 (forward).
func direction(keyName string) int {
	switch keyName {
	case "up", "k", "ctrl+p", "pgup", "ctrl+u", "left", "h":
		return -1
	}
	return 1
}

func (m *Model) handleQuickOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	if b := m.keys.LookupLocal(keyName, scopeQuickOpen); b != nil {
		switch b.Action {
		case actionClose:
			m.closeQuickOpen()
		case actionNavigate:
			if len(m.matches) > 0 {
				m.qoCursor = (m.qoCursor + direction(keyName) + len(m.matches)) % len(m.matches)
			}
		case actionSelect:
			if m.qoCursor < len(m.matches) {
				ids := m.table.IDs()
				id := ids[m.matches[m.qoCursor].Index]
				m.log.Debug("quick open", zap.String("query", m.query.Value()), zap.String("file", id))
				m.closeQuickOpen()
				m.selectFile(id)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.refreshMatches()
	return m, cmd
}

func (m *Model) openQuickOpen() tea.Cmd {
	m.quickOpen = true
	m.query.SetValue("")
	m.refreshMatches()
	return m.query.Focus()
}

func (m *Model) closeQuickOpen() {
	m.quickOpen = false
	m.query.Blur()
	m.query.SetValue("")
	m.matches = nil
	m.qoCursor = 0
}

func (m *Model) refreshMatches() {
	entries := m.table.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	m.matches = quickopen.Rank(m.query.Value(), names)
	if m.qoCursor >= len(m.matches) {
		m.qoCursor = 0
	}
}

// ---------------------------------------------------------------------------
// Mouse handling
// ---------------------------------------------------------------------------

const (
	zoneFile     = "file:"
	zoneTab      = "tab:"
	zoneClose    = "close:"
	zonePanelTab = "ptab:"
	zoneEditor   = "editor"
	zoneExplorer = "act:explorer"
	zoneCopilot  = "act:copilot"
)

func (m *Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

func (m *Model) inZone(id string, msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	return m.zones.Get(id).InBounds(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil || m.quickOpen {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.inZone(zoneEditor, msg) {
			m.editor.SetYOffset(m.editor.YOffset - 3)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.inZone(zoneEditor, msg) {
			m.editor.SetYOffset(m.editor.YOffset + 3)
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for _, id := range m.table.IDs() {
		switch {
		case m.inZone(zoneClose+id, msg):
			m.state.CloseFile(id)
			m.log.Debug("editor closed", zap.String("file", id), zap.String("via", "mouse"))
			m.syncEditor(false)
			return m, nil
		case m.inZone(zoneTab+id, msg):
			m.focus = focusEditor
			m.selectFile(id)
			return m, nil
		case m.inZone(zoneFile+id, msg):
			m.focus = focusExplorer
			m.selectFile(id)
			return m, nil
		}
	}
	for _, t := range workbench.BottomTabs() {
		if m.inZone(zonePanelTab+t.String(), msg) {
			m.focus = focusPanel
			m.state.SetBottomTab(t)
			return m, nil
		}
	}
	switch {
	case m.inZone(zoneExplorer, msg):
		m.togglePanel(workbench.PanelLeft)
	case m.inZone(zoneCopilot, msg):
		m.togglePanel(workbench.PanelRight)
	case m.inZone(zoneEditor, msg):
		m.focus = focusEditor
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

func (m *Model) selectFile(id string) {
	m.state.SelectFile(id)
	m.log.Debug("file selected",
		zap.String("file", id),
		zap.String("panel_tab", m.state.Tab.String()),
		zap.Int("open", len(m.state.Open)),
	)
	m.afterSelect()
}

func (m *Model) afterSelect() {
	if i := m.indexOf(m.state.Active); i >= 0 {
		m.cursor = i
	}
	m.syncEditor(false)
	m.status = ""
}

func (m *Model) togglePanel(p workbench.Panel) {
	m.state.TogglePanel(p)
	visible := m.state.Visible(p)
	m.log.Debug("panel toggled", zap.Stringer("panel", p), zap.Bool("visible", visible))
	if !visible {
		if (p == workbench.PanelLeft && m.focus == focusExplorer) ||
			(p == workbench.PanelBottom && m.focus == focusPanel) {
			m.focus = focusEditor
		}
	}
	m.resize()
}

func (m *Model) cycleFocus(delta int) {
	ring := []focusArea{focusEditor}
	if m.state.Left {
		ring = append([]focusArea{focusExplorer}, ring...)
	}
	if m.state.Bottom {
		ring = append(ring, focusPanel)
	}
	cur := 0
	for i, f := range ring {
		if f == m.focus {
			cur = i
		}
	}
	m.focus = ring[((cur+delta)%len(ring)+len(ring))%len(ring)]
}

func (m *Model) moveCursor(delta int) {
	n := m.table.Len()
	if n == 0 {
		return
	}
	m.cursor = min(max(0, m.cursor+delta), n-1)
}

func (m *Model) indexOf(id string) int {
	for i, v := range m.table.IDs() {
		if v == id {
			return i
		}
	}
	return -1
}

func (m *Model) resize() {
	m.dims = calculateLayout(m.width, m.height,
		m.state.Left, m.state.Right, m.state.Bottom,
		m.cfg.SidebarWidth, m.cfg.CopilotWidth, m.cfg.PanelHeight)
	m.editor.Width = m.dims.Center
	m.editor.Height = m.dims.Editor
	m.chat.Width = max(1, m.dims.Copilot-6)
	m.query.Width = max(1, m.quickOpenWidth()-8)
	m.syncEditor(true)
}

// syncEditor loads the active file into the viewport when it changed, or
// re-clips the current lines when force is set.
func (m *Model) syncEditor(force bool) {
	id := m.state.Active
	switched := id != m.editorID
	if !switched && !force {
		return
	}
	if switched {
		m.editorLines = nil
		if e, ok := m.table.Get(id); ok {
			lines, err := m.hl.Lines(e.Body, e.Language.String())
			if err != nil {
				m.log.Warn("highlight failed", zap.String("file", id), zap.Error(err))
			}
			m.editorLines = lines
		}
		m.editorID = id
	}

	clipped := make([]string, len(m.editorLines))
	for i, line := range m.editorLines {
		clipped[i] = ansi.Truncate(line, m.dims.Center, "")
	}
	m.editor.SetContent(strings.Join(clipped, "\n"))
	if switched {
		m.editor.GotoTop()
	}
}

// ---------------------------------------------------------------------------
// Clipboard
// ---------------------------------------------------------------------------

type clipboardMsg struct {
	id  string
	err error
}

func (m *Model) copyCmd() tea.Cmd {
	e, ok := m.table.Get(m.state.Active)
	if !ok {
		m.setError("No file to copy")
		return nil
	}
	write := m.copy
	return func() tea.Msg {
		if err := write(e.Body); err != nil {
			return clipboardMsg{id: e.ID, err: fmt.Errorf("write clipboard: %w", err)}
		}
		return clipboardMsg{id: e.ID}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
