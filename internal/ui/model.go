package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justsurfingit/job-board/internal/board"
	"github.com/justsurfingit/job-board/internal/models"
)

type mode int

const (
	modeBoard mode = iota
	modeCreate
	modeEdit
	modeViewAll
)

// stateMsg reports that the controller state changed.
type stateMsg struct{}

type signedOutMsg struct {
	message string
	err     error
}

// SignOutFunc asks the server to stop. *client.Client's SignOut fits.
type SignOutFunc func(ctx context.Context) (string, error)

// Model is the bubbletea model for the board. All job state lives in the
// controller; the model only keeps what is needed to draw and navigate.
type Model struct {
	ctrl    *board.Controller
	signOut SignOutFunc
	keys    KeyMap
	help    help.Model

	state  board.State
	mode   mode
	cursor cursor

	inputs []textinput.Model
	focus  int

	width  int
	height int

	notice string
}

func NewModel(ctrl *board.Controller, signOut SignOutFunc) Model {
	inputs := make([]textinput.Model, len(board.FormFields))
	for i, field := range board.FormFields {
		ti := textinput.New()
		ti.Prompt = lipgloss.NewStyle().Width(10).Render(field.Label()) + " "
		ti.CharLimit = 255
		ti.Width = 48
		if field == board.FieldNotes {
			ti.CharLimit = 0
		}
		inputs[i] = ti
	}

	return Model{
		ctrl:    ctrl,
		signOut: signOut,
		keys:    DefaultKeyMap,
		help:    help.New(),
		state:   ctrl.State(),
		inputs:  inputs,
		width:   defaultWidth,
	}
}

// Notice is the last sign-out message, shown after the program exits.
func (m Model) Notice() string {
	return m.notice
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.ctrl), run(m.ctrl.Load))
}

// waitForChange blocks until the controller reports a change.
func waitForChange(ctrl *board.Controller) tea.Cmd {
	return func() tea.Msg {
		<-ctrl.Changes()
		return stateMsg{}
	}
}

// run executes a controller action that waits on the API off the UI goroutine.
// Its effects arrive through waitForChange. Actions that only touch local
// state are called directly so keystrokes apply in order.
func run(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stateMsg:
		m.applyState(m.ctrl.State())
		return m, waitForChange(m.ctrl)

	case signedOutMsg:
		if msg.err != nil {
			m.notice = "Sign out failed: " + msg.err.Error()
			return m, nil
		}
		m.notice = msg.message
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || m.mode == modeBoard || m.mode == modeViewAll) {
			m.ctrl.Close()
			return m, tea.Quit
		}
		if m.state.Success != "" && m.mode == modeBoard {
			m.ctrl.CloseSuccess()
			m.refresh()
			return m, nil
		}

		switch m.mode {
		case modeCreate:
			return m.updateCreate(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeViewAll:
			return m.updateViewAll(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

// applyState stores a snapshot and keeps the mode, cursor and inputs in line with it.
func (m *Model) applyState(s board.State) {
	// Change signals coalesce, so a create is detected by its new success message.
	created := s.Success != "" && s.Success != m.state.Success
	m.state = s

	switch {
	case m.mode == modeCreate && created:
		m.mode = modeBoard
	case m.mode == modeEdit && s.Editing == nil:
		m.mode = modeBoard
	case m.mode == modeViewAll && s.Expanded == "":
		m.mode = modeBoard
	}

	switch m.mode {
	case modeCreate:
		m.syncInputs(s.Manual)
	case modeEdit:
		m.syncInputs(s.EditForm)
	}
	m.clampCursor()
}

func (m *Model) refresh() {
	m.applyState(m.ctrl.State())
}

func (m *Model) syncInputs(form board.Form) {
	for i, field := range board.FormFields {
		if v := form.Get(field); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *Model) clampCursor() {
	if m.cursor.column < 0 {
		m.cursor.column = 0
	}
	if m.cursor.column >= len(models.Statuses) {
		m.cursor.column = len(models.Statuses) - 1
	}
	shown, _ := visibleCards(m.columnJobs(m.cursor.column))
	if m.cursor.card >= len(shown) {
		m.cursor.card = len(shown) - 1
	}
	if m.cursor.card < 0 {
		m.cursor.card = 0
	}
}

func (m Model) columnJobs(column int) []models.JobApplication {
	return m.state.JobsByStatus()[models.Statuses[column]]
}

// selected returns the job under the cursor.
func (m Model) selected() (models.JobApplication, bool) {
	shown, _ := visibleCards(m.columnJobs(m.cursor.column))
	if m.cursor.card < len(shown) {
		return shown[m.cursor.card], true
	}
	return models.JobApplication{}, false
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dragging := m.state.DraggedID != 0
	column := models.Statuses[m.cursor.column]

	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		next := m.cursor.column - 1
		if key.Matches(msg, m.keys.Right) {
			next = m.cursor.column + 1
		}
		if next < 0 || next >= len(models.Statuses) {
			return m, nil
		}
		m.cursor = cursor{column: next}
		m.clampCursor()
		if dragging {
			m.ctrl.DragLeave(column, false)
			m.ctrl.DragEnter(models.Statuses[next])
			m.refresh()
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor.card > 0 {
			m.cursor.card--
		}

	case key.Matches(msg, m.keys.Down):
		m.cursor.card++
		m.clampCursor()

	case key.Matches(msg, m.keys.Grab):
		if dragging {
			carried := m.state.DraggedID
			return m, run(func() { m.ctrl.Drop(column, carried) })
		}
		if job, ok := m.selected(); ok {
			m.ctrl.BeginDrag(job.ID)
			m.ctrl.DragEnter(column)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Cancel):
		if dragging {
			m.ctrl.EndDrag()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Edit):
		if job, ok := m.selected(); ok && m.ctrl.StartEdit(job.ID) {
			m.mode = modeEdit
			m.refresh()
			m.openForm(m.state.EditForm)
		}

	case key.Matches(msg, m.keys.New):
		m.mode = modeCreate
		m.openForm(m.state.Manual)

	case key.Matches(msg, m.keys.ViewAll):
		m.ctrl.OpenStatusModal(column)
		m.mode = modeViewAll
		m.refresh()

	case key.Matches(msg, m.keys.MoveTo):
		n, _ := strconv.Atoi(msg.String())
		if job, ok := m.selected(); ok && n >= 1 && n <= len(models.Statuses) {
			return m, run(func() { m.ctrl.ChangeStatus(job.ID, models.Statuses[n-1]) })
		}

	case key.Matches(msg, m.keys.Reload):
		return m, run(m.ctrl.Load)

	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.DismissError()
		m.refresh()

	case key.Matches(msg, m.keys.SignOut):
		if m.signOut == nil {
			return m, nil
		}
		signOut := m.signOut
		return m, func() tea.Msg {
			message, err := signOut(context.Background())
			return signedOutMsg{message: message, err: err}
		}
	}
	return m, nil
}

func (m *Model) openForm(form board.Form) {
	m.syncInputs(form)
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// updateInput feeds a key to the focused input and reports the new value.
func (m *Model) updateInput(msg tea.KeyMsg) (board.FormField, string, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return board.FormFields[m.focus], m.inputs[m.focus].Value(), cmd
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBoard
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.state.Creating {
			return m, nil
		}
		return m, run(m.ctrl.SubmitManual)
	}

	field, value, cmd := m.updateInput(msg)
	m.ctrl.UpdateManual(field, value)
	m.state = m.ctrl.State()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CloseEdit()
		m.mode = modeBoard
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Save):
		if m.state.Saving || !m.state.EditDirty {
			return m, nil
		}
		return m, run(m.ctrl.SubmitEdit)
	case key.Matches(msg, m.keys.Delete):
		if m.state.Deleting {
			return m, nil
		}
		return m, run(m.ctrl.DeleteEditing)
	}

	field, value, cmd := m.updateInput(msg)
	m.ctrl.UpdateEditForm(field, value)
	m.state = m.ctrl.State()
	return m, cmd
}

func (m Model) updateViewAll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.ViewAll):
		m.ctrl.CloseStatusModal()
		m.mode = modeBoard
	case key.Matches(msg, m.keys.Left):
		m.ctrl.PrevPage()
	case key.Matches(msg, m.keys.Right):
		m.ctrl.NextPage()
	}
	m.refresh()
	return m, nil
}

func (m Model) View() string {
	sections := []string{renderHeader(m.width)}
	if banner := renderError(m.state.Error); banner != "" {
		sections = append(sections, banner)
	}

	switch {
	case m.mode == modeCreate:
		sections = append(sections, m.renderForm("Add a job", m.state.Creating, "Adding…", ""))
	case m.mode == modeEdit && m.state.Editing != nil:
		status := ""
		if m.state.EditDirty {
			status = dirtyStyle.Render("● unsaved changes")
		}
		busy := ""
		switch {
		case m.state.Saving:
			busy = "Saving…"
		case m.state.Deleting:
			busy = "Deleting…"
		}
		sections = append(sections, m.renderForm("Edit "+m.state.Editing.Title, busy != "", busy, status))
	case m.mode == modeViewAll:
		sections = append(sections, renderViewAll(m.state))
	default:
		sections = append(sections, renderChart(m.state), renderBoard(m.state, m.cursor, m.width))
		if m.state.Success != "" {
			sections = append(sections, renderSuccess(m.state.Success))
		}
	}

	if m.notice != "" {
		sections = append(sections, mutedStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderForm(title string, busy bool, busyText, status string) string {
	lines := []string{titleStyle.Render(title), ""}
	for _, in := range m.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "")

	footer := mutedStyle.Render("tab next field · enter submit · esc close")
	if m.mode == modeEdit {
		footer = mutedStyle.Render("tab next field · ctrl+s save · ctrl+d delete · esc close")
	}
	if busy {
		footer = mutedStyle.Render(busyText)
	}
	if status != "" {
		footer = status + "  " + footer
	}
	lines = append(lines, footer)
	return modalStyle.Render(strings.Join(lines, "\n"))
}
