package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tana-dev/tana/internal/config"
)

// Color chart: https://github.com/muesli/termenv

var ArchivedFromSection = func(cfg config.UI) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.HiddenBorder()).
		Padding(0, 1)
}

var ArchivedFromTitle = func(cfg config.UI) lipgloss.Style {
	bg := cfg.Style.DetailView.InfoPane.ArchivedFrom.Background
	fg := cfg.Style.DetailView.InfoPane.ArchivedFrom.Foreground
	return lipgloss.NewStyle().Padding(0, 1).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Transform(strings.ToUpper)
}

var ArchivedAtSection = func(cfg config.UI) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.HiddenBorder()).
		Padding(0, 1)
}

var ArchivedAtTitle = func(cfg config.UI) lipgloss.Style {
	bg := cfg.Style.DetailView.InfoPane.ArchivedAt.Background
	fg := cfg.Style.DetailView.InfoPane.ArchivedAt.Foreground
	return lipgloss.NewStyle().Padding(0, 1).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Transform(strings.ToUpper)
}

var Scroll = func(cfg config.UI) lipgloss.Style {
	bg := cfg.Style.DetailView.PreviewPane.Scroll.Background
	fg := cfg.Style.DetailView.PreviewPane.Scroll.Foreground
	return lipgloss.NewStyle().Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

var Size = func(cfg config.UI) lipgloss.Style {
	bg := cfg.Style.DetailView.PreviewPane.Size.Background
	fg := cfg.Style.DetailView.PreviewPane.Size.Foreground
	return lipgloss.NewStyle().Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

var Dialog = func(cfg config.UI) lipgloss.Style {
	c := cfg.Style.DetailView.Border
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c)).
		Foreground(lipgloss.Color(c)).
		Bold(true).
		Padding(1, 1).
		Align(lipgloss.Center)
}
