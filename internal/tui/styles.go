package tui

import (
	"github.com/charmbracelet/lipgloss"

	"task-dashboard/internal/model"
)

type palette struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Card        lipgloss.Style
	Selected    lipgloss.Style
	Placeholder lipgloss.Style
	Dialog      lipgloss.Style
	Toast       lipgloss.Style
	Status      lipgloss.Style
}

func newPalette(fg, bg, card, accent, muted lipgloss.Color) palette {
	return palette{
		App:   lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(fg).MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Background(card).
			Padding(0, 1).
			Width(60),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(card).
			Bold(true).
			Padding(0, 1).
			Width(60),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(muted),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Toast:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2E7D32")).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#C62828")),
	}
}

var palettes = map[model.Theme]palette{
	model.ThemeLight: newPalette("#111111", "#FFFFFF", "#F5F5F5", "#1976D2", "#9E9E9E"),
	model.ThemeDark:  newPalette("#FFFFFF", "#000000", "#1E1E1E", "#90CAF9", "#616161"),
}

func paletteFor(theme model.Theme) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[model.ThemeLight]
}
