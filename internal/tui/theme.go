package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Dark Modern palette: true-color hex values
// ---------------------------------------------------------------------------

const (
	colorTitleBar    lipgloss.Color = "#181818"
	colorActivityBar lipgloss.Color = "#181818"
	colorSideBar     lipgloss.Color = "#181818"
	colorEditor      lipgloss.Color = "#1f1f1f"
	colorPanel       lipgloss.Color = "#181818"
	colorTabActive   lipgloss.Color = "#1f1f1f"
	colorTabInactive lipgloss.Color = "#181818"
	colorStatusBar   lipgloss.Color = "#0078d4"
	colorBorder      lipgloss.Color = "#2b2b2b"
	colorSelection   lipgloss.Color = "#37373d"
	colorInput       lipgloss.Color = "#313131"

	colorText      lipgloss.Color = "#cccccc"
	colorTextMuted lipgloss.Color = "#9d9d9d"
	colorTextDim   lipgloss.Color = "#6e7681"
	colorWhite     lipgloss.Color = "#ffffff"

	colorBlue   lipgloss.Color = "#0078d4"
	colorCyan   lipgloss.Color = "#4ec9b0"
	colorYellow lipgloss.Color = "#dcdcaa"
	colorOrange lipgloss.Color = "#ce9178"
	colorGreen  lipgloss.Color = "#6a9955"
	colorRed    lipgloss.Color = "#f14c4c"
	colorPurple lipgloss.Color = "#c586c0"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorBlue
	colorFocus   = colorBlue
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

// iconColors tints file icons by symbolic name.
var iconColors = map[string]lipgloss.Color{
	"code":  colorYellow,
	"text":  colorCyan,
	"data":  colorOrange,
	"stack": colorPurple,
}

// AllPaletteColors returns every palette color for testing purposes.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorTitleBar, colorActivityBar, colorSideBar, colorEditor, colorPanel,
		colorTabActive, colorTabInactive, colorStatusBar, colorBorder,
		colorSelection, colorInput,
		colorText, colorTextMuted, colorTextDim, colorWhite,
		colorBlue, colorCyan, colorYellow, colorOrange, colorGreen, colorRed, colorPurple,
	}
}
