package models

import (
	"fmt"
	"sort"
	"strings"
)

// Issue is a single tracked issue: a title, an ordered sequence of
// description lines, and a set of tags.
type Issue struct {
	Title       string   `toml:"title"`
	Description []string `toml:"description,omitempty"`
	Tags        []string `toml:"tags,omitempty"`
}

// Describe appends a line to the issue's description.
func (is *Issue) Describe(line string) {
	is.Description = append(is.Description, line)
}

// Tag adds a tag to the issue. Tags behave as a set: adding an existing
// tag is a no-op, and the slice is kept sorted so saves stay deterministic.
func (is *Issue) Tag(name string) {
	for _, t := range is.Tags {
		if t == name {
			return
		}
	}
	is.Tags = append(is.Tags, name)
	sort.Strings(is.Tags)
}

// Untag removes a tag from the issue and reports whether it was present.
func (is *Issue) Untag(name string) bool {
	for i, t := range is.Tags {
		if t == name {
			is.Tags = append(is.Tags[:i], is.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveDescription deletes the description line at index i and reports
// whether the index was valid.
func (is *Issue) RemoveDescription(i int) bool {
	if i < 0 || i >= len(is.Description) {
		return false
	}
	is.Description = append(is.Description[:i], is.Description[i+1:]...)
	return true
}

// String renders the issue as plain text: the title, its tags in
// parentheses, and one indented line per description entry.
func (is *Issue) String() string {
	var b strings.Builder
	b.WriteString(is.Title)
	if len(is.Tags) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(is.Tags, ", "))
	}
	b.WriteByte('\n')
	for _, line := range is.Description {
		fmt.Fprintf(&b, "  - %s\n", line)
	}
	return b.String()
}
