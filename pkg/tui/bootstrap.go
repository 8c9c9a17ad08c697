package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// bootstrapModel is the one-question first-run prompt: should the new box
// file be added to the repository's local git exclude list? It reuses the
// binary-gate pattern as a degenerate two-state machine.
type bootstrapModel struct {
	path     string
	accepted bool
	width    int
	height   int
}

func newBootstrapModel(path string) *bootstrapModel {
	return &bootstrapModel{path: path}
}

func (m *bootstrapModel) Init() tea.Cmd {
	return nil
}

func (m *bootstrapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if text, ok := keyText(msg); ok {
			switch text {
			case "y", "Y":
				m.accepted = true
				return m, tea.Quit
			case "n", "N":
				m.accepted = false
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *bootstrapModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	body := strings.Join([]string{
		"issuebox will initialize the file \"" + pathStyle.Render(m.path) + "\".",
		"",
		"Would you like to exclude it from git?",
		"Note: This will update " + pathStyle.Render(".git/info/exclude") + ", not the public " + pathStyle.Render(".gitignore"),
		"",
		hints(" ", "y", "es ", "n", "o "),
	}, "\n")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
