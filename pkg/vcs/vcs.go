package vcs

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/issuebox/issuebox-cli/pkg/models"
)

// Runner invokes the external version-control helpers. Command names come
// from settings so users can point at wrappers or absolute paths.
type Runner struct {
	git string
	gh  string
}

// New returns a Runner configured from settings.
func New(settings *models.Settings) *Runner {
	return &Runner{
		git: settings.Helpers.Git,
		gh:  settings.Helpers.Gh,
	}
}

// Commit stages everything and commits with the issue title as the
// message. Equivalent to `git add --all && git commit -m <title>`.
func (r *Runner) Commit(title string) error {
	if _, err := run(r.git, "add", "--all"); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	if _, err := run(r.git, "commit", "-m", title); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Publish creates a remote issue from the given issue: every tag is
// ensured to exist as a label first, then the issue is created with the
// title, the joined description lines as body, and the tags as labels.
func (r *Runner) Publish(is *models.Issue) error {
	if len(is.Tags) > 0 {
		out, err := run(r.gh, "label", "list")
		if err != nil {
			return fmt.Errorf("failed to publish: %w", err)
		}
		existing := ParseLabelNames(string(out))
		for _, tag := range is.Tags {
			if existing[tag] {
				continue
			}
			if _, err := run(r.gh, "label", "create", tag); err != nil {
				return fmt.Errorf("failed to publish: %w", err)
			}
		}
	}

	args := []string{
		"issue", "create",
		"--title", is.Title,
		"--body", strings.Join(is.Description, "\n"),
	}
	if len(is.Tags) > 0 {
		args = append(args, "--label", strings.Join(is.Tags, ","))
	}
	if _, err := run(r.gh, args...); err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	return nil
}

// ParseLabelNames extracts label names from `gh label list` output, one
// label per line with the name in the first tab-separated column.
func ParseLabelNames(out string) map[string]bool {
	labels := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		name, _, found := strings.Cut(line, "\t")
		if found && name != "" {
			labels[name] = true
		}
	}
	return labels
}

// AppendGitExclude adds the issue box path to the repository's local,
// non-shared exclude list (.git/info/exclude, not .gitignore).
func AppendGitExclude(boxPath string) error {
	excludePath := filepath.Join(".git", "info", "exclude")
	f, err := os.OpenFile(excludePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", excludePath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n# Created by issuebox\n%s\n", boxPath); err != nil {
		return fmt.Errorf("failed to update %s: %w", excludePath, err)
	}
	return nil
}

// run executes a helper and returns its stdout. A non-zero exit becomes
// an error carrying the helper's stderr.
func run(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
