package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scrib/internal/tui/styles"
	"scrib/pkg/core"
)

// ConfirmKeyMap defines key bindings for the delete confirmation
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmModel asks before deleting a note
type ConfirmModel struct {
	ViewState
	svc    *core.Service
	target core.Note
}

// NewConfirmModel creates a new delete confirmation model
func NewConfirmModel(svc *core.Service) *ConfirmModel {
	return &ConfirmModel{svc: svc}
}

// SetTarget sets the note to be deleted
func (m *ConfirmModel) SetTarget(note core.Note) {
	m.target = note
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		// A failed delete keeps the user on this screen with the reason.
		m.SetMessage(msg.err.Error(), true)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ConfirmKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}
		case key.Matches(msg, ConfirmKeys.Confirm):
			return m, m.deleteNote()
		}
	}
	return m, nil
}

func (m *ConfirmModel) deleteNote() tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.Delete(context.Background(), m.target.ID); err != nil {
			return errMsg{err}
		}
		return DeletedMsg{Message: "note deleted"}
	}
}

// View renders the confirmation prompt
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Note"))
	b.WriteString("\n\n")

	title := m.target.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(styles.InputLabel.Render("Delete:"))
	b.WriteString("\n  ")
	b.WriteString(title)
	if len(m.target.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(styles.NoteTag.Render("#" + strings.Join(m.target.Tags, " #")))
	}
	b.WriteString("\n\n")

	b.WriteString("Are you sure? ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	if m.Message != "" {
		b.WriteString("\n\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	return styles.App.Render(b.String())
}
