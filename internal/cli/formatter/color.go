package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorAccent  = lipgloss.Color("205")
	ColorGreen   = lipgloss.Color("42")
	ColorYellow  = lipgloss.Color("214")
	ColorRed     = lipgloss.Color("196")
	ColorDim     = lipgloss.Color("240")
	ColorFg      = lipgloss.Color("252")
	ColorSubtle  = lipgloss.Color("236")
	ColorPartial = lipgloss.Color("107")
)

var (
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleGreen   = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow  = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed     = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StylePartial = lipgloss.NewStyle().Foreground(ColorPartial)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)
)

// Header renders an uppercase section title with an underline
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleAccent.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Score colors a 0-100 percentage: green from 66, yellow from 33, red below
func Score(pct int) string {
	text := fmt.Sprintf("%d%%", pct)
	switch {
	case pct >= 66:
		return StyleGreen.Render(text)
	case pct >= 33:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}
