// Package tui implements the single-page terminal widget for browsing
// and editing notes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"scrib/internal/tui/views"
	"scrib/pkg/core"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewForm
	ViewConfirm
)

// App is the main TUI application model
type App struct {
	svc      *core.Service
	readOnly bool

	state   ViewState
	list    *views.ListModel
	form    *views.FormModel
	confirm *views.ConfirmModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(svc *core.Service, readOnly bool, sortMode core.SortMode) *App {
	return &App{
		svc:      svc,
		readOnly: readOnly,
		state:    ViewList,
		list:     views.NewListModel(svc, readOnly, sortMode),
		form:     views.NewFormModel(svc),
		confirm:  views.NewConfirmModel(svc),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		// The form sizes its textarea from the message itself.
		_, _ = a.form.Update(msg)
		return a, nil

	// View switching messages
	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.SetNote(msg.Note)
		return a, a.form.Init()

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetTarget(msg.Note)
		return a, nil

	case views.SwitchToListMsg:
		a.state = ViewList
		return a, a.list.Reload()

	// Form messages
	case views.FormSavedMsg:
		a.state = ViewList
		return a, a.list.Reload()

	case views.FormErrMsg:
		a.form.SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.DeletedMsg:
		a.state = ViewList
		return a, a.list.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewConfirm:
		return a.confirm.View()
	default:
		return a.list.View()
	}
}
