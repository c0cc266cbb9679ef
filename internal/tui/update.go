package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"task-dashboard/internal/dashboard"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case NotificationMsg:
		m.setView(m.uc.View(m.ctx))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.setView(m.uc.OpenAdd(m.ctx))
		return m.startInput(modeAdd, "")

	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		v, err := m.uc.OpenEdit(m.ctx, t.ID)
		m.handleErr(err)
		if err != nil {
			return m, nil
		}
		m.setView(v)
		return m.startInput(modeEdit, v.Draft)

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		v, err := m.uc.Delete(m.ctx, t.ID)
		m.handleErr(err)
		m.setView(v)

	case key.Matches(msg, m.keys.Search):
		return m.startInput(modeSearch, m.view.Query)

	case key.Matches(msg, m.keys.Theme):
		m.setView(m.uc.ToggleTheme(m.ctx))

	case key.Matches(msg, m.keys.Back):
		m.dismissAll()
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.setView(m.uc.CloseAdd(m.ctx))
		return m.stopInput()

	case key.Matches(msg, m.keys.Enter):
		out, err := m.uc.Add(m.ctx, dashboard.AddInput{Title: m.input.Value()})
		m.handleErr(err)
		m.setView(out.View)
		if out.Added {
			m.cursor = len(out.View.Visible) - 1
			if m.cursor < 0 {
				m.cursor = 0
			}
			return m.stopInput()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.setView(m.uc.CancelEdit(m.ctx))
		return m.stopInput()

	case key.Matches(msg, m.keys.Enter):
		out, err := m.uc.Update(m.ctx, dashboard.UpdateInput{Title: m.input.Value()})
		m.handleErr(err)
		m.setView(out.View)
		if !out.View.EditDialogOpen {
			return m.stopInput()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateSearch re-filters on every keystroke. Enter keeps the query, esc
// clears it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.setView(m.uc.Search(m.ctx, dashboard.SearchInput{Query: ""}))
		return m.stopInput()

	case key.Matches(msg, m.keys.Enter):
		return m.stopInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.setView(m.uc.Search(m.ctx, dashboard.SearchInput{Query: m.input.Value()}))
	return m, cmd
}

func (m Model) startInput(md mode, value string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.status = ""
	m.input.SetValue(value)
	m.input.CursorEnd()
	if md == modeSearch {
		m.input.Placeholder = "Search-task..."
	} else {
		m.input.Placeholder = "Task Title"
	}
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) stopInput() (tea.Model, tea.Cmd) {
	m.mode = modeList
	m.input.Blur()
	m.input.SetValue("")
	return m, nil
}

func (m *Model) dismissAll() {
	for _, n := range m.view.Notifications {
		v, err := m.uc.DismissNotification(m.ctx, dashboard.DismissInput{Kind: n.Kind})
		m.handleErr(err)
		m.setView(v)
	}
}

var _ tea.Model = Model{}
