package models

// Settings represents the application configuration
type Settings struct {
	UI      UISettings     `yaml:"ui"`
	Helpers HelperSettings `yaml:"helpers"`
}

// UISettings controls TUI preferences
type UISettings struct {
	ShowBanner bool `yaml:"show_banner"`
}

// HelperSettings names the external programs invoked for commit and publish
type HelperSettings struct {
	Git string `yaml:"git"`
	Gh  string `yaml:"gh"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ShowBanner: true,
		},
		Helpers: HelperSettings{
			Git: "git",
			Gh:  "gh",
		},
	}
}
