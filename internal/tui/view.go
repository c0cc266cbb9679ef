package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
)

const title = "Task Management Dashboard"

func (m Model) View() string {
	p := paletteFor(m.view.Theme)

	var b strings.Builder
	b.WriteString(p.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.headerLine())
	b.WriteString("\n\n")

	if m.view.Empty {
		b.WriteString(p.Placeholder.Render(dashboard.NoTasksFound))
		b.WriteString("\n")
	} else {
		cards := make([]string, 0, len(m.view.Visible))
		for i, t := range m.view.Visible {
			style := p.Card
			if i == m.cursor && m.mode == modeList {
				style = p.Selected
			}
			cards = append(cards, style.Render(t.Title))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(p.Dialog.Render("Add Task\n\n" + m.input.View() + "\n\nenter add • esc cancel"))
		b.WriteString("\n")
	case modeEdit:
		b.WriteString("\n")
		b.WriteString(p.Dialog.Render("Edit Task\n\n" + m.input.View() + "\n\nenter update • esc cancel"))
		b.WriteString("\n")
	}

	for _, n := range m.view.Notifications {
		b.WriteString("\n")
		b.WriteString(p.Toast.Render(n.Message))
	}
	if len(m.view.Notifications) > 0 {
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(p.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return p.App.Render(b.String())
}

func (m Model) headerLine() string {
	theme := "light"
	if m.view.Theme == model.ThemeDark {
		theme = "dark"
	}

	search := m.view.Query
	if m.mode == modeSearch {
		search = m.input.View()
	} else if search == "" {
		search = "(none)"
	}

	return fmt.Sprintf("search: %s   theme: %s   tasks: %d", search, theme, len(m.view.Tasks))
}
