package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/gabriel-vasile/mimetype"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"github.com/tana-dev/tana/internal/ui/styles"
)

// updateDetail handles key events on the record detail view.
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.detailKeys.Space), key.Matches(msg, m.detailKeys.Esc):
		m.state.detail.dateFormat = DateFormatRelative
		m.state.SetView(RECORD_VIEW)
		return m, nil

	case key.Matches(msg, m.detailKeys.Enter):
		if m.batch != nil {
			m.state.SetView(CONFIRM_VIEW)
		}
		return m, nil

	case key.Matches(msg, m.detailKeys.Prev):
		m.records.CursorUp()
		if item, ok := m.records.SelectedItem().(*RecordItem); ok {
			return m, showDetailCmd(item)
		}
		return m, nil

	case key.Matches(msg, m.detailKeys.Next):
		m.records.CursorDown()
		if item, ok := m.records.SelectedItem().(*RecordItem); ok {
			return m, showDetailCmd(item)
		}
		return m, nil

	case key.Matches(msg, m.detailKeys.AtSign):
		m.state.ToggleDateFormat()
		m.state.ToggleOriginPath()
		return m, nil

	case key.Matches(msg, m.detailKeys.GotoTop):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.detailKeys.GotoBottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.detailKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.recordKeys.Quit):
		m.state.SetView(QUITTING)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// renderDetail renders the entire detail view.
func (m Model) renderDetail() string {
	if m.currentItem == nil {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderArchivedFrom(),
		m.renderArchivedAt(),
		m.renderPreview(),
		m.renderFooter(),
	)
}

// renderHeader renders the file name box at the top of the detail view.
func (m Model) renderHeader() string {
	borderForeground := m.config.Style.DetailView.Border
	name := ansi.Truncate(m.currentItem.Title(), defaultWidth-len(ellipsis), ellipsis)

	title := lipgloss.NewStyle().
		BorderStyle(func() lipgloss.Border {
			b := lipgloss.RoundedBorder()
			if len(m.currentItem.Title()) < defaultWidth {
				b.Right = "├"
			}
			return b
		}()).
		BorderForeground(lipgloss.Color(borderForeground)).
		Padding(0, 1).
		Bold(true).
		Render(name)

	line := lipgloss.NewStyle().
		Foreground(lipgloss.Color(borderForeground)).
		Render(strings.Repeat("─", max(0, defaultWidth-lipgloss.Width(title))))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, line)
}

// renderArchivedFrom renders the origin path of the file, or the
// archive path when toggled with the info key.
func (m Model) renderArchivedFrom() string {
	record := m.currentItem.Record()
	title := "Archived From"
	text := filepath.Dir(record.SourcePath)
	if !m.state.detail.showOrigin {
		title = "Archive Path"
		text = record.DestPath
	}

	w := wordwrap.NewWriter(46)
	w.Breakpoints = []rune{'/', '.'}
	w.KeepNewlines = false
	_, _ = w.Write([]byte(text))
	_ = w.Close()

	return styles.ArchivedFromSection(m.config).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			styles.ArchivedFromTitle(m.config).MarginBottom(1).Render(title),
			lipgloss.NewStyle().Render(w.String()),
		),
	)
}

// renderArchivedAt renders the archive time information.
func (m Model) renderArchivedAt() string {
	record := m.currentItem.Record()
	return styles.ArchivedAtSection(m.config).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ArchivedAtTitle(m.config).MarginRight(3).Render("Archived At"),
			lipgloss.NewStyle().Render(m.state.FormatDate(record.Timestamp)),
		),
	)
}

// renderPreview renders the file preview content.
func (m Model) renderPreview() string {
	if !m.state.preview.available {
		return fmt.Sprintf("%s\n%s\n%s",
			m.previewHeader(),
			m.previewUnavailable(),
			m.previewFooter(),
		)
	}

	return fmt.Sprintf("%s\n%s\n%s",
		m.previewHeader(),
		m.viewport.View(),
		m.previewFooter(),
	)
}

// previewUnavailable renders a placeholder for files that cannot be
// previewed, together with the detected type.
func (m Model) previewUnavailable() string {
	detected := "unknown"
	if mtype, err := mimetype.DetectFile(m.currentItem.Record().DestPath); err == nil {
		detected = mtype.String()
	}

	grey := lipgloss.Color(termenv.ANSIBrightBlack.String())
	return lipgloss.Place(
		defaultWidth,
		m.viewport.Height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(
			lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render(strings.ToUpper(errCannotPreview.Error())),
			lipgloss.NewStyle().Foreground(grey).Render("("+detected+")"),
		),
		lipgloss.WithWhitespaceChars("`"),
		lipgloss.WithWhitespaceForeground(grey),
	)
}

// previewHeader renders the size badge above the preview pane.
func (m Model) previewHeader() string {
	border := m.config.Style.DetailView.PreviewPane.Border
	size := styles.Size(m.config).Render(m.currentItem.Size())
	line := strings.Repeat("─", max(0, defaultWidth-lipgloss.Width(size)))
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(border)).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, line, size))
}

// previewFooter renders the scroll position below the preview pane.
func (m Model) previewFooter() string {
	border := m.config.Style.DetailView.PreviewPane.Border
	if !m.state.preview.available {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(border)).
			Render(strings.Repeat("─", defaultWidth))
	}

	info := styles.Scroll(m.config).Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	line := strings.Repeat("─", max(0, defaultWidth-lipgloss.Width(info)))
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(border)).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, line, info))
}

// renderFooter renders the bottom border of the detail view.
func (m Model) renderFooter() string {
	border := m.config.Style.DetailView.Border
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(border)).
		Render(strings.Repeat("─", defaultWidth))
}
