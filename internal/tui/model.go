// Package tui is a terminal front end for the dashboard use case.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
	pkgLog "task-dashboard/pkg/log"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeSearch
)

// NotificationMsg asks the model to re-read the dashboard after a toast
// appeared or expired.
type NotificationMsg struct {
	Kind    model.NotificationKind
	Visible bool
}

// Model is the bubbletea model. All state lives in the use case; Model keeps
// only the list cursor and the text input.
type Model struct {
	ctx  context.Context
	l    pkgLog.Logger
	uc   dashboard.UseCase
	view dashboard.View

	mode   mode
	cursor int
	input  textinput.Model
	keys   keyMap
	help   help.Model
	status string
	width  int
}

// New creates a Model over uc. uc should already be loaded.
func New(ctx context.Context, l pkgLog.Logger, uc dashboard.UseCase) Model {
	ti := textinput.New()
	ti.Placeholder = "Task Title"
	ti.CharLimit = 1000
	ti.Width = 50

	return Model{
		ctx:   ctx,
		l:     l,
		uc:    uc,
		view:  uc.View(ctx),
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Notify returns an OnChange hook that forwards toast changes to p. Send is
// called on its own goroutine because the hook may fire while the use case
// holds its lock.
func Notify(p *tea.Program) func(kind model.NotificationKind, visible bool) {
	return func(kind model.NotificationKind, visible bool) {
		go p.Send(NotificationMsg{Kind: kind, Visible: visible})
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setView(v dashboard.View) {
	m.view = v
	if m.cursor >= len(v.Visible) {
		m.cursor = len(v.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (model.Task, bool) {
	if len(m.view.Visible) == 0 {
		return model.Task{}, false
	}
	return m.view.Visible[m.cursor], true
}

// handleErr records err for the status line. ErrTaskNotFound is expected when
// the list changed underneath; anything else is logged.
func (m *Model) handleErr(err error) {
	if err == nil {
		m.status = ""
		return
	}
	m.status = err.Error()
	if !errors.Is(err, dashboard.ErrTaskNotFound) {
		m.l.Errorf(m.ctx, "tui: %v", err)
	}
}
