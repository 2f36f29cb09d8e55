package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scrib/internal/tui/styles"
	"scrib/pkg/core"
)

// ListKeyMap defines key bindings for the note list view
type ListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Tag    key.Binding
	Sort   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Yank   key.Binding
	Quit   key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Tag: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle tag"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ListModel is the model for the single-page note list view
type ListModel struct {
	ViewState
	svc      *core.Service
	readOnly bool

	search    textinput.Model
	searching bool

	notes  []core.Note
	tags   []core.TagCount
	cursor int

	activeTag int // index into tags, -1 means no tag filter
	sortMode  core.SortMode
	loaded    bool
}

// NewListModel creates a new note list model
func NewListModel(svc *core.Service, readOnly bool, sortMode core.SortMode) *ListModel {
	search := textinput.New()
	search.Placeholder = "Search notes..."
	search.CharLimit = 100

	return &ListModel{
		svc:       svc,
		readOnly:  readOnly,
		search:    search,
		activeTag: -1,
		sortMode:  sortMode,
	}
}

// Init initializes the list view
func (m *ListModel) Init() tea.Cmd {
	return m.load
}

// Reload reloads notes from the store
func (m *ListModel) Reload() tea.Cmd {
	return m.load
}

func (m *ListModel) load() tea.Msg {
	ctx := context.Background()

	notes, err := m.svc.List(ctx, m.query())
	if err != nil {
		return errMsg{err}
	}

	tags, err := m.svc.Tags(ctx)
	if err != nil {
		return errMsg{err}
	}

	return notesLoadedMsg{notes: notes, tags: tags}
}

func (m *ListModel) query() core.Query {
	q := core.Query{
		Text: m.search.Value(),
		Sort: m.sortMode,
	}
	if m.activeTag >= 0 && m.activeTag < len(m.tags) {
		q.Tags = []string{m.tags[m.activeTag].Name}
	}
	return q
}

type notesLoadedMsg struct {
	notes []core.Note
	tags  []core.TagCount
}

// Update handles messages for the list view
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case notesLoadedMsg:
		m.notes = msg.notes
		m.tags = msg.tags
		m.loaded = true
		if m.activeTag >= len(m.tags) {
			m.activeTag = -1
		}
		if m.cursor >= len(m.notes) {
			m.cursor = len(m.notes) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.load

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		m.ClearMessage()

		switch {
		case key.Matches(msg, ListKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ListKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, ListKeys.Down):
			if m.cursor < len(m.notes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, ListKeys.Search):
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink

		case key.Matches(msg, ListKeys.Tag):
			// Cycle: no filter -> tag 0 -> tag 1 -> ... -> no filter
			m.activeTag++
			if m.activeTag >= len(m.tags) {
				m.activeTag = -1
			}
			return m, m.load

		case key.Matches(msg, ListKeys.Sort):
			m.sortMode = nextSortMode(m.sortMode)
			return m, m.load

		case key.Matches(msg, ListKeys.New):
			if m.readOnly {
				m.SetMessage("read-only mode", true)
				return m, nil
			}
			return m, func() tea.Msg {
				return SwitchToFormMsg{Note: nil}
			}

		case key.Matches(msg, ListKeys.Edit):
			if m.readOnly {
				m.SetMessage("read-only mode", true)
				return m, nil
			}
			if note := m.selectedNote(); note != nil {
				n := *note
				return m, func() tea.Msg {
					return SwitchToFormMsg{Note: &n}
				}
			}
			return m, nil

		case key.Matches(msg, ListKeys.Delete):
			if m.readOnly {
				m.SetMessage("read-only mode", true)
				return m, nil
			}
			if note := m.selectedNote(); note != nil {
				n := *note
				return m, func() tea.Msg {
					return SwitchToConfirmMsg{Note: n}
				}
			}
			return m, nil

		case key.Matches(msg, ListKeys.Yank):
			if note := m.selectedNote(); note != nil {
				if err := clipboard.WriteAll(note.Content); err != nil {
					m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
				} else {
					m.SetMessage("copied to clipboard", false)
				}
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *ListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m, m.load
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, m.load
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(cmd, m.load)
}

func (m *ListModel) selectedNote() *core.Note {
	if m.cursor >= 0 && m.cursor < len(m.notes) {
		return &m.notes[m.cursor]
	}
	return nil
}

func nextSortMode(mode core.SortMode) core.SortMode {
	switch mode {
	case core.SortUpdated:
		return core.SortCreated
	case core.SortCreated:
		return core.SortTitle
	default:
		return core.SortUpdated
	}
}

// View renders the note list
func (m *ListModel) View() string {
	var b strings.Builder

	// Title
	title := styles.Title.Render("Scrib")
	if m.readOnly {
		title += " " + styles.ReadOnlyBadge.Render("read-only")
	}
	b.WriteString(title)
	b.WriteString("\n")

	// Filter status line
	b.WriteString(styles.Subtitle.Render(m.statusLine()))
	b.WriteString("\n\n")

	// Search input
	if m.searching || m.search.Value() != "" {
		b.WriteString(styles.InputFocused.Render(m.search.View()))
		b.WriteString("\n\n")
	}

	// Notes
	if !m.loaded {
		b.WriteString("Loading...")
	} else if len(m.notes) == 0 {
		b.WriteString(styles.MutedText.Render("No notes. Press n to create one."))
	} else {
		for i, note := range m.notes {
			b.WriteString(m.renderNote(note, i == m.cursor))
			b.WriteString("\n")
		}
	}

	// Message
	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	// Help line
	b.WriteString("\n\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *ListModel) statusLine() string {
	parts := []string{fmt.Sprintf("sort: %s", m.sortMode)}
	if m.activeTag >= 0 && m.activeTag < len(m.tags) {
		parts = append(parts, fmt.Sprintf("tag: %s", m.tags[m.activeTag].Name))
	}
	if q := m.search.Value(); q != "" {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}
	parts = append(parts, fmt.Sprintf("%d notes", len(m.notes)))
	return strings.Join(parts, "  ")
}

func (m *ListModel) renderNote(note core.Note, selected bool) string {
	title := note.Title
	if title == "" {
		title = "(untitled)"
	}

	line := title
	if selected {
		line = styles.NoteSelected.Render(line)
	} else {
		line = styles.NoteTitle.Render(line)
	}

	if len(note.Tags) > 0 {
		line += "  " + styles.NoteTag.Render("#"+strings.Join(note.Tags, " #"))
	}
	line += "  " + styles.NoteDate.Render(note.UpdatedAt.Format("2006-01-02 15:04"))

	return line
}

func (m *ListModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"/", "search"},
		{"t", "tag"},
		{"s", "sort"},
	}

	if !m.readOnly {
		keys = append(keys,
			struct{ key, desc string }{"n", "new"},
			struct{ key, desc string }{"e", "edit"},
			struct{ key, desc string }{"d", "delete"},
		)
	}
	keys = append(keys,
		struct{ key, desc string }{"y", "copy"},
		struct{ key, desc string }{"q", "quit"},
	)

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}
