package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/thesavant42/reporadar/internal/scan"
)

// Layout constants - single source of truth for viewport dimensions
const (
	MinViewportWidth = 90
	MaxViewportWidth = 130
	DefaultWidth     = 100 // used when terminal size is unknown
	TableHeight      = 16
)

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("63")  // cosmic purple
	ColorHighlight = lipgloss.Color("57")  // deep purple background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("220") // star gold
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorError     = lipgloss.Color("196") // red
	ColorSuccess   = lipgloss.Color("42")  // green
	ColorBlue      = lipgloss.Color("39")  // cosmic blue
	ColorPink      = lipgloss.Color("213") // galaxy pink
)

// levelColors maps contribution levels to their display color.
var levelColors = map[string]lipgloss.Color{
	scan.LevelRookie:    ColorTextDim,
	scan.LevelExplorer:  ColorBlue,
	scan.LevelVoyager:   ColorBorder,
	scan.LevelCommander: ColorPink,
	scan.LevelLegend:    ColorAccent,
}

// LevelColor returns the display color for a contribution level.
func LevelColor(level string) lipgloss.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return ColorTextDim
}

// Shared styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Underline(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth int // clamped terminal width
	ContentWidth  int // ViewportWidth minus border chars
}

// NewLayout creates a Layout from the terminal width, clamping to min/max
func NewLayout(terminalWidth int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	return Layout{
		ViewportWidth: width,
		ContentWidth:  width - 4,
	}
}

// DefaultLayout returns a layout using the default width
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// NewAppSpinner returns the app-wide spinner style (gold dots).
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return s
}

// ApplyTableStyles gives tables the shared look: bold gold headers
// and a purple selection bar.
func ApplyTableStyles(t *table.Model) {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorAccent)
	styles.Selected = styles.Selected.
		Foreground(ColorText).
		Background(ColorHighlight).
		Bold(false)
	t.SetStyles(styles)
}

// PrintError prints a styled error line outside any TUI program.
func PrintError(msg string) {
	fmt.Println(ErrorStyle.Render("✗ " + msg))
}

// PrintSuccess prints a styled success line outside any TUI program.
func PrintSuccess(msg string) {
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}
