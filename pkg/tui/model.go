package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/issuebox/issuebox-cli/pkg/clipboard"
	"github.com/issuebox/issuebox-cli/pkg/models"
	"github.com/issuebox/issuebox-cli/pkg/store"
	"github.com/issuebox/issuebox-cli/pkg/vcs"
)

// Model is the interactive session: it owns the box, the highlight index,
// and the current mode, and coordinates rendering with persistence. One
// keypress in, one outcome applied, strictly in order; a mutation is
// always saved before the next input event is read.
type Model struct {
	path     string
	box      *models.Box
	settings *models.Settings

	mode    mode
	index   int
	lastErr error

	width  int
	height int
	body   viewport.Model

	// Side effects are injected so tests can observe and fail them.
	save     func(path string, box *models.Box) error
	copyText func(text string) error
	hooks    hooks
}

// NewModel builds a session over an already-loaded box.
func NewModel(path string, box *models.Box, settings *models.Settings, runner *vcs.Runner) *Model {
	return &Model{
		path:     path,
		box:      box,
		settings: settings,
		mode:     modeNormal{},
		save:     store.Save,
		copyText: clipboard.Spawn,
		hooks: hooks{
			commit:  runner.Commit,
			publish: runner.Publish,
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = msg.Width
		m.body.Height = max(msg.Height-m.chromeHeight(), 1)
		return m, nil

	case tea.KeyMsg:
		// A displayed error lives until the next keypress.
		m.lastErr = nil

		// Clamp the highlight against the live sequence before the
		// executor sees it; nothing else may cache an index.
		m.index = clampIndex(m.index, m.box.Len())

		switch out := execute(m.mode, msg, &m.index, m.box, m.hooks).(type) {
		case nextMode:
			m.mode = out.mode
		case persisted:
			m.lastErr = m.save(m.path, m.box)
			m.mode = modeNormal{}
		case copyRequested:
			m.lastErr = m.copyText(out.text)
			m.mode = modeNormal{}
		case failed:
			m.lastErr = out.err
			m.mode = modeNormal{}
		case quit:
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// clampIndex pins i into [0, length-1], treating an empty sequence as
// index 0 with no valid target.
func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return max(length-1, 0)
	}
	return i
}

func (m *Model) chromeHeight() int {
	chrome := 3 // title, instructions, error line
	if m.settings.UI.ShowBanner {
		chrome += bannerHeight
	}
	return chrome
}
