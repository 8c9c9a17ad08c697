package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/issuebox/issuebox-cli/pkg/models"
	"github.com/issuebox/issuebox-cli/pkg/store"
	"github.com/issuebox/issuebox-cli/pkg/vcs"
)

// Run owns the terminal for the session's duration. bubbletea acquires
// raw mode and the alternate screen, and restores them on every exit
// path, panics included, so fatal errors print to a sane terminal.
func Run(path string) error {
	settings, err := store.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	if !store.Exists(path) {
		if err := bootstrap(path); err != nil {
			return err
		}
	}

	box, err := store.Load(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	m := NewModel(path, box, settings, vcs.New(settings))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run the terminal user interface: %w", err)
	}
	return nil
}

// bootstrap creates the box file on first run. Inside a git repository it
// first asks, synchronously, whether to add the file to the local exclude
// list.
func bootstrap(path string) error {
	exclude := false
	if _, err := os.Stat(".git"); err == nil {
		bm := newBootstrapModel(path)
		p := tea.NewProgram(bm, tea.WithAltScreen())
		res, err := p.Run()
		if err != nil {
			return fmt.Errorf("failed to run the first-run prompt: %w", err)
		}
		if b, ok := res.(*bootstrapModel); ok {
			exclude = b.accepted
		}
	}

	if err := store.InitEmpty(path); err != nil {
		return err
	}
	if exclude {
		if err := vcs.AppendGitExclude(path); err != nil {
			return err
		}
	}
	return nil
}
