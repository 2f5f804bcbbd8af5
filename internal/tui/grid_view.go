package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/datagrid/internal/render"
)

// View renders the current view (Bubble Tea interface).
func (m GridModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return CriticalStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			SubtleStyle.Render("Press 'q' to quit") + "\n"
	case ViewStateLoading:
		return lipgloss.JoinVertical(lipgloss.Left, m.renderTitle(), RenderLoading(m.loadingState))
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m GridModel) renderTitle() string {
	if m.cfg.Title == "" {
		return ""
	}
	return HeaderStyle.Render(m.cfg.Title)
}

// renderListView renders the table, the pagination line and the status bar.
func (m GridModel) renderListView() string {
	var sections []string

	if title := m.renderTitle(); title != "" {
		sections = append(sections, title)
	}

	sections = append(sections, m.table.View())

	if m.out.Empty() {
		sections = append(sections, WarningStyle.Render(m.emptyMessage()))
	}

	if line := render.PaginationLine(m.out.Meta); line != "" {
		sections = append(sections, LabelStyle.Render(line))
	}

	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m GridModel) emptyMessage() string {
	if m.cfg.EmptyMessage == "" {
		return render.DefaultEmptyMessage
	}
	return m.cfg.EmptyMessage
}

// renderStatusBar displays the active column, sort and key help.
func (m GridModel) renderStatusBar() string {
	sortLabel := "none"
	if m.sort != nil {
		sortLabel = m.sort.String()
	}

	column := ""
	if m.activeColumn < len(m.cfg.Columns) {
		column = m.cfg.Columns[m.activeColumn].Key
	}

	status := fmt.Sprintf(
		"Column: %s | Sort: %s | ←/→ column, enter sort, n/p page, q quit",
		column, sortLabel,
	)
	return SubtleStyle.Width(m.width - borderPadding).Render(status)
}
