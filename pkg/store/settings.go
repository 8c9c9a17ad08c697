package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/issuebox/issuebox-cli/pkg/models"
)

// ReadSettings loads settings from the settings file in the working
// directory. Callers fall back to models.DefaultSettings on error.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings persists settings to the settings file.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(SettingsFile, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
