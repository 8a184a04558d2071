package tui

// Fallback terminal size used before the first resize message.
const (
	defaultWidth  = 100
	defaultHeight = 30

	activityWidth = 3
	minCenter     = 24
	minEditor     = 3
	chromeRows    = 3 // title bar, status bar, key help footer
)

// Dimensions holds the cell sizes of every region for one terminal size and
// panel visibility. A hidden region has zero size.
type Dimensions struct {
	Width   int
	Height  int
	Body    int // rows between the title bar and the status bar
	Sidebar int
	Copilot int
	Center  int
	Editor  int // rows for the editor, excluding tab strip and breadcrumbs
	Panel   int // rows for the bottom panel including its header
}

// calculateLayout sizes the regions. Side panels shrink before the editor
// column drops below minCenter; the bottom panel shrinks before the editor
// drops below minEditor.
func calculateLayout(width, height int, left, right, bottom bool, sidebar, copilot, panel int) Dimensions {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	d := Dimensions{Width: width, Height: height}
	d.Body = max(0, height-chromeRows)

	avail := max(0, width-activityWidth)
	if left {
		d.Sidebar = sidebar
	}
	if right {
		d.Copilot = copilot
	}
	if over := d.Sidebar + d.Copilot + minCenter - avail; over > 0 {
		cut := min(over, d.Copilot)
		d.Copilot -= cut
		over -= cut
		d.Sidebar = max(0, d.Sidebar-over)
	}
	if d.Copilot < 10 {
		d.Copilot = 0
	}
	if d.Sidebar < 10 {
		d.Sidebar = 0
	}
	d.Center = max(0, avail-d.Sidebar-d.Copilot)

	// tab strip + breadcrumbs
	rows := max(0, d.Body-2)
	if bottom {
		d.Panel = min(panel, max(0, rows-minEditor))
		if d.Panel < 3 {
			d.Panel = 0
		}
	}
	d.Editor = max(0, rows-d.Panel)
	return d
}
