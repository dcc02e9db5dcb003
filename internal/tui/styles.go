package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Status styles used for per-file report lines.
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Painter colors status labels when enabled and passes text through
// unchanged otherwise.
type Painter struct {
	enabled bool
}

// NewPainter returns a Painter; pass IsInteractive() for normal use.
func NewPainter(enabled bool) Painter {
	return Painter{enabled: enabled}
}

func (p Painter) render(style lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}
	return style.Render(s)
}

func (p Painter) Success(s string) string { return p.render(SuccessStyle, s) }
func (p Painter) Error(s string) string   { return p.render(ErrorStyle, s) }
func (p Painter) Warning(s string) string { return p.render(WarningStyle, s) }
func (p Painter) Muted(s string) string   { return p.render(MutedStyle, s) }
