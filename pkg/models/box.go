package models

import (
	"fmt"
	"strings"
)

// Box is the full persisted record: the live issues in display order, a
// recycle bin of removed issues (most recent last), and an optional
// starred index into the live sequence.
type Box struct {
	Issues     []Issue `toml:"issues,omitempty"`
	RecycleBin []Issue `toml:"recycle_bin,omitempty"`
	Starred    *int    `toml:"starred,omitempty"`
}

// Add appends a new issue with the given title to the live sequence.
func (b *Box) Add(title string) {
	b.Issues = append(b.Issues, Issue{Title: title})
}

// Len returns the number of live issues.
func (b *Box) Len() int {
	return len(b.Issues)
}

// Get returns a pointer to the live issue at index i.
func (b *Box) Get(i int) (*Issue, bool) {
	if i < 0 || i >= len(b.Issues) {
		return nil, false
	}
	return &b.Issues[i], true
}

// Remove moves the issue at index i to the tail of the recycle bin and
// returns it. Removing the starred issue clears the star; removing an
// issue before the starred one shifts the star so it keeps pointing at
// the same issue.
func (b *Box) Remove(i int) (Issue, bool) {
	if i < 0 || i >= len(b.Issues) {
		return Issue{}, false
	}
	if b.Starred != nil {
		switch {
		case *b.Starred == i:
			b.Starred = nil
		case *b.Starred > i:
			starred := *b.Starred - 1
			b.Starred = &starred
		}
	}
	removed := b.Issues[i]
	b.Issues = append(b.Issues[:i], b.Issues[i+1:]...)
	b.RecycleBin = append(b.RecycleBin, removed)
	return removed, true
}

// Restore moves the recycle-bin issue at index i back onto the tail of
// the live sequence and returns a pointer to its new home.
func (b *Box) Restore(i int) (*Issue, bool) {
	if i < 0 || i >= len(b.RecycleBin) {
		return nil, false
	}
	restored := b.RecycleBin[i]
	b.RecycleBin = append(b.RecycleBin[:i], b.RecycleBin[i+1:]...)
	b.Issues = append(b.Issues, restored)
	return &b.Issues[len(b.Issues)-1], true
}

// String renders the whole box as a numbered plain-text list.
func (b *Box) String() string {
	var sb strings.Builder
	for i := range b.Issues {
		fmt.Fprintf(&sb, "%d. %s", i, b.Issues[i].String())
	}
	return sb.String()
}
