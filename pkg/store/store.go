package store

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/issuebox/issuebox-cli/pkg/models"
)

const (
	// DefaultBoxFile is where the issue box lives unless --input says otherwise.
	DefaultBoxFile = ".issuebox"
	// SettingsFile holds optional UI and helper-command configuration.
	SettingsFile = ".issuebox.yaml"
)

// Exists reports whether an issue box file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// InitEmpty creates an empty issue box file. An empty file decodes to an
// empty box, so no content is needed.
func InitEmpty(path string) error {
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return fmt.Errorf("failed to create issue box %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes the whole issue box. Missing fields decode to
// their zero values, so files written by older versions still load.
func Load(path string) (*models.Box, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read issue box %s: %w", path, err)
	}

	var box models.Box
	if err := toml.Unmarshal(content, &box); err != nil {
		return nil, fmt.Errorf("failed to parse issue box TOML %s: %w", path, err)
	}

	return &box, nil
}

// Save encodes the whole box and overwrites the file at path.
func Save(path string, box *models.Box) error {
	content, err := toml.Marshal(box)
	if err != nil {
		return fmt.Errorf("failed to marshal issue box to TOML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write issue box %s: %w", path, err)
	}

	return nil
}
