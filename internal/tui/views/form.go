package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scrib/internal/tui/styles"
	"scrib/pkg/core"
)

// FormKeyMap defines key bindings for the note form
type FormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

var FormKeys = FormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

const (
	fieldTitle = iota
	fieldTags
	fieldContent
	fieldCount
)

// FormModel is the model for the create/edit note form
type FormModel struct {
	ViewState
	svc *core.Service

	editing *core.Note // nil means create

	titleInput   textinput.Model
	tagsInput    textinput.Model
	contentInput textarea.Model
	focusedField int
}

// NewFormModel creates a new note form model
func NewFormModel(svc *core.Service) *FormModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 200

	tagsInput := textinput.New()
	tagsInput.Placeholder = "tags, comma, separated"
	tagsInput.CharLimit = 200

	contentInput := textarea.New()
	contentInput.Placeholder = "Write your note..."

	return &FormModel{
		svc:          svc,
		titleInput:   titleInput,
		tagsInput:    tagsInput,
		contentInput: contentInput,
	}
}

// SetNote prepares the form. A nil note resets it for creation.
func (m *FormModel) SetNote(note *core.Note) {
	m.editing = note
	m.ClearMessage()

	if note != nil {
		m.titleInput.SetValue(note.Title)
		m.tagsInput.SetValue(strings.Join(note.Tags, ", "))
		m.contentInput.SetValue(note.Content)
	} else {
		m.titleInput.SetValue("")
		m.tagsInput.SetValue("")
		m.contentInput.SetValue("")
	}

	m.focusedField = fieldTitle
	m.titleInput.Focus()
	m.tagsInput.Blur()
	m.contentInput.Blur()
}

// Init initializes the form
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.contentInput.SetWidth(msg.Width - 8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FormKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}

		case key.Matches(msg, FormKeys.Tab):
			m.focusedField = (m.focusedField + 1) % fieldCount
			m.titleInput.Blur()
			m.tagsInput.Blur()
			m.contentInput.Blur()
			switch m.focusedField {
			case fieldTitle:
				m.titleInput.Focus()
			case fieldTags:
				m.tagsInput.Focus()
			case fieldContent:
				m.contentInput.Focus()
			}
			return m, nil

		case key.Matches(msg, FormKeys.Submit):
			return m, m.save()
		}
	}

	// Update focused input
	var cmd tea.Cmd
	switch m.focusedField {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldTags:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	case fieldContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	}

	return m, cmd
}

func (m *FormModel) save() tea.Cmd {
	return func() tea.Msg {
		title := strings.TrimSpace(m.titleInput.Value())
		content := m.contentInput.Value()
		tags := splitTags(m.tagsInput.Value())

		if title == "" && strings.TrimSpace(content) == "" {
			return FormErrMsg{Err: fmt.Errorf("note is empty")}
		}

		ctx := context.Background()

		if m.editing != nil {
			if _, err := m.svc.Update(ctx, m.editing.ID, title, content, tags); err != nil {
				return FormErrMsg{Err: err}
			}
			return FormSavedMsg{Message: "note updated"}
		}

		if _, err := m.svc.Create(ctx, title, content, tags); err != nil {
			return FormErrMsg{Err: err}
		}
		return FormSavedMsg{Message: "note created"}
	}
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	return core.NormalizeTags(parts)
}

// View renders the form
func (m *FormModel) View() string {
	var b strings.Builder

	title := "New Note"
	if m.editing != nil {
		title = "Edit Note"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Title:"))
	b.WriteString("\n")
	b.WriteString(m.renderField(m.titleInput.View(), fieldTitle))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Tags:"))
	b.WriteString("\n")
	b.WriteString(m.renderField(m.tagsInput.View(), fieldTags))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Content:"))
	b.WriteString("\n")
	b.WriteString(m.renderField(m.contentInput.View(), fieldContent))
	b.WriteString("\n\n")

	// Message
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	// Help
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("next field"),
		styles.HelpKey.Render("ctrl+s"),
		styles.HelpDesc.Render("save"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("cancel"),
	))

	return styles.App.Render(b.String())
}

func (m *FormModel) renderField(view string, field int) string {
	if m.focusedField == field {
		return styles.InputFocused.Render(view)
	}
	return styles.InputField.Render(view)
}
