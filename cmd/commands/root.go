package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/pkg/models"
	"github.com/issuebox/issuebox-cli/pkg/store"
)

var inputPath string

// BindGlobalFlags attaches the flags every subcommand shares to the root
// command.
func BindGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", store.DefaultBoxFile, "Path to the issue box file")
}

// InputPath returns the issue box path selected by the global flag.
func InputPath() string {
	return inputPath
}

func loadBox() (*models.Box, error) {
	if !store.Exists(inputPath) {
		return nil, fmt.Errorf("no issue box found at %s\n\nRun 'issuebox' once to create it", inputPath)
	}
	return store.Load(inputPath)
}

func saveBox(box *models.Box) error {
	return store.Save(inputPath, box)
}

func errIssueNotFound(index int) error {
	return fmt.Errorf("no issue with index %d", index)
}

func errDescriptionNotFound(issue, index int) error {
	return fmt.Errorf("no description with index %d on issue %d", index, issue)
}

func errTagNotFound(issue int, tag string) error {
	return fmt.Errorf("no tag named %s on issue %d", tag, issue)
}

// issueAt resolves an index against the live sequence.
func issueAt(box *models.Box, index int) (*models.Issue, error) {
	is, ok := box.Get(index)
	if !ok {
		return nil, errIssueNotFound(index)
	}
	return is, nil
}

// resolveIndex applies the default-to-last rule used by describe and tag.
func resolveIndex(box *models.Box, index *int) (int, error) {
	if index != nil {
		return *index, nil
	}
	if box.Len() == 0 {
		return 0, fmt.Errorf("the issue box is empty")
	}
	return box.Len() - 1, nil
}

// runnerFromSettings builds the external-helper runner, falling back to
// defaults when no settings file is present.
func runnerSettings() *models.Settings {
	settings, err := store.ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}
