package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tana-dev/tana/internal/config"
	"github.com/tana-dev/tana/internal/ui/keys"
)

// ListDelegate manages the rendering and behavior of list items.
type ListDelegate struct {
	showDescription bool
	height          int
	spacing         int
	styles          *DelegateStyles
	keys            *keys.ListKeyMap
}

// DelegateStyles holds all the styles used for list item rendering.
type DelegateStyles struct {
	NormalTitle   lipgloss.Style
	NormalDesc    lipgloss.Style
	CursorTitle   lipgloss.Style
	CursorDesc    lipgloss.Style
	DimmedTitle   lipgloss.Style
	DimmedDesc    lipgloss.Style
	FilterMatch   lipgloss.Style
	indentOnInact bool
}

// NewListDelegate creates a new delegate with default styles.
func NewListDelegate(cfg config.UI, km *keys.ListKeyMap) *ListDelegate {
	return &ListDelegate{
		showDescription: true,
		height:          2,
		spacing:         1,
		styles:          newDelegateStyles(cfg),
		keys:            km,
	}
}

func newDelegateStyles(cfg config.UI) *DelegateStyles {
	cursor := lipgloss.Color(cfg.Style.ListView.Cursor)
	s := &DelegateStyles{
		NormalTitle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
			Padding(0, 0, 0, 2),
		NormalDesc: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}).
			Padding(0, 0, 0, 2),
		CursorTitle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(cursor).
			Foreground(cursor).
			Padding(0, 0, 0, 1),
		CursorDesc: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(cursor).
			Foreground(lipgloss.Color(cfg.Style.ListView.Selected)).
			Padding(0, 0, 0, 1),
		DimmedTitle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}).
			Padding(0, 0, 0, 2),
		DimmedDesc: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C2B8C2", Dark: "#4D4D4D"}).
			Padding(0, 0, 0, 2),
		FilterMatch:   lipgloss.NewStyle().Underline(true),
		indentOnInact: cfg.Style.ListView.IndentOnSelect,
	}
	return s
}

// Height returns the height of each list item.
func (d ListDelegate) Height() int {
	if d.showDescription {
		return d.height
	}
	return 1
}

// Spacing returns the spacing between list items.
func (d ListDelegate) Spacing() int {
	return d.spacing
}

// Update handles the delegate's update logic.
func (d ListDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render draws a single list item.
func (d ListDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var (
		title, desc  string
		matchedRunes []int
		s            = d.styles
	)

	if i, ok := item.(list.DefaultItem); ok {
		title = i.Title()
		desc = i.Description()
	} else {
		return
	}

	if m.Width() <= 0 {
		return
	}

	// Prevent text from exceeding list width
	textWidth := m.Width() - s.NormalTitle.GetPaddingLeft() - s.NormalTitle.GetPaddingRight()
	title = ansi.Truncate(title, textWidth, ellipsis)
	if d.showDescription {
		var lines []string
		for i, line := range strings.Split(desc, "\n") {
			if i >= d.height-1 {
				break
			}
			lines = append(lines, ansi.Truncate(line, textWidth, ellipsis))
		}
		desc = strings.Join(lines, "\n")
	}

	// Conditions
	var (
		isSelected  = index == m.Index()
		emptyFilter = m.FilterState() == list.Filtering && m.FilterValue() == ""
		isFiltered  = m.FilterState() == list.Filtering || m.FilterState() == list.FilterApplied
	)

	if isFiltered && index < len(m.VisibleItems()) {
		// Get indices of matched characters
		matchedRunes = m.MatchesForItem(index)
	}

	switch {
	case emptyFilter:
		title = s.DimmedTitle.Render(title)
		desc = s.DimmedDesc.Render(desc)
	case isSelected && m.FilterState() != list.Filtering:
		if isFiltered {
			// Highlight matches
			unmatched := s.CursorTitle.Inline(true)
			matched := unmatched.Inherit(s.FilterMatch)
			title = lipgloss.StyleRunes(title, matchedRunes, matched, unmatched)
		}
		title = s.CursorTitle.Render(title)
		desc = s.CursorDesc.Render(desc)
	default:
		if isFiltered {
			// Highlight matches
			unmatched := s.NormalTitle.Inline(true)
			matched := unmatched.Inherit(s.FilterMatch)
			title = lipgloss.StyleRunes(title, matchedRunes, matched, unmatched)
		}
		title = s.NormalTitle.Render(title)
		desc = s.NormalDesc.Render(desc)
		if s.indentOnInact {
			title = " " + title
			desc = " " + desc
		}
	}

	if d.showDescription {
		fmt.Fprintf(w, "%s\n%s", title, desc) //nolint:errcheck
		return
	}
	fmt.Fprintf(w, "%s", title) //nolint:errcheck
}

// ShortHelp returns the short help items for the delegate.
func (d ListDelegate) ShortHelp() []key.Binding {
	return d.keys.ShortHelp()
}

// FullHelp returns the full help items for the delegate.
func (d ListDelegate) FullHelp() [][]key.Binding {
	return d.keys.FullHelp()
}
