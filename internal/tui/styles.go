package tui

import (
	"github.com/MKhiriev/go-tweet/models"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	status   lipgloss.Style
	selected lipgloss.Style
	own      lipgloss.Style
	meta     lipgloss.Style
	overlay  lipgloss.Style
}

type palette struct {
	text, muted, accent, danger, success lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeLight: {text: "235", muted: "244", accent: "25", danger: "160", success: "28"},
	models.ThemeDark:  {text: "252", muted: "243", accent: "117", danger: "203", success: "114"},
}

func newStyles(theme models.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.ThemeLight]
	}

	return styles{
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:     lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		err:      lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		status:   lipgloss.NewStyle().Foreground(p.success),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		own:      lipgloss.NewStyle().Foreground(p.success),
		meta:     lipgloss.NewStyle().Foreground(p.muted),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
	}
}
