// Package tui implements the interactive alias picker behind the tui
// subcommand. It follows the bubbletea Model/Update/View architecture:
// the model holds a bubbles list of aliases, Update reacts to key and
// resize messages, and View renders the list with a one-line key hint.
package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkollar/cawa/internal/models"
)

// aliasItem implements list.Item for one selectable alias
type aliasItem struct {
	name       string
	definition string
}

func (i aliasItem) Title() string       { return i.name }
func (i aliasItem) Description() string { return i.definition }
func (i aliasItem) FilterValue() string { return i.name }

var (
	frameStyle = lipgloss.NewStyle().Margin(1, 2)
	hintStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginTop(1)
)

// model is the picker state. choice stays empty until enter confirms a
// selection; quitting marks an explicit cancel.
type model struct {
	list     list.Model
	choice   string
	quitting bool
}

func newModel(program string, aliases map[string]models.AliasDefinition) model {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, aliasItem{
			name:       name,
			definition: aliases[name].Display(),
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("🐙 %s aliases", program)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return model{list: l}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		frameWidth, frameHeight := frameStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameWidth, msg.Height-frameHeight-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(aliasItem); ok {
				m.choice = item.name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.choice != "" || m.quitting {
		return ""
	}
	hint := hintStyle.Render("Enter → run alias    Esc → cancel")
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.list.View(), hint))
}

// Select shows the full-screen alias picker and blocks until the user picks
// an alias or cancels. The second return is false on cancel.
func Select(program string, aliases map[string]models.AliasDefinition) (string, bool, error) {
	if len(aliases) == 0 {
		return "", false, fmt.Errorf("no aliases defined")
	}

	p := tea.NewProgram(newModel(program, aliases), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("failed to run selector: %w", err)
	}

	result, ok := final.(model)
	if !ok || result.choice == "" {
		return "", false, nil
	}
	return result.choice, true, nil
}
