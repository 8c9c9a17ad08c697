package models

import (
	"reflect"
	"testing"
)

func testBox() *Box {
	box := &Box{}
	box.Add("Foo")
	foo, _ := box.Get(0)
	foo.Describe("Depends on Bar implementation")
	foo.Tag("bug")
	box.Add("Bar")
	bar, _ := box.Get(1)
	bar.Describe("Implement using abc")
	bar.Describe("Remove xyz")
	bar.Tag("good first issue")
	bar.Tag("help wanted")
	return box
}

func TestRemoveMovesToRecycleBin(t *testing.T) {
	box := testBox()

	removed, ok := box.Remove(1)
	if !ok {
		t.Fatal("Remove(1) failed on a two-issue box")
	}
	if removed.Title != "Bar" {
		t.Errorf("Expected removed title %q, got %q", "Bar", removed.Title)
	}
	if box.Len() != 1 || box.Issues[0].Title != "Foo" {
		t.Errorf("Expected live sequence [Foo], got %v", box.Issues)
	}
	if len(box.RecycleBin) != 1 {
		t.Fatalf("Expected recycle bin of 1, got %d", len(box.RecycleBin))
	}
	binned := box.RecycleBin[0]
	if binned.Title != "Bar" {
		t.Errorf("Expected binned title %q, got %q", "Bar", binned.Title)
	}
	wantTags := []string{"good first issue", "help wanted"}
	if !reflect.DeepEqual(binned.Tags, wantTags) {
		t.Errorf("Expected binned tags %v, got %v", wantTags, binned.Tags)
	}
	if len(binned.Description) != 2 {
		t.Errorf("Expected binned issue to keep its descriptions, got %v", binned.Description)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	box := testBox()
	if _, ok := box.Remove(2); ok {
		t.Error("Remove(2) should fail on a two-issue box")
	}
	if box.Len() != 2 || len(box.RecycleBin) != 0 {
		t.Error("Failed remove must not change the box")
	}
}

func TestRestoreMovesToLiveTail(t *testing.T) {
	box := testBox()
	box.Remove(1)

	restored, ok := box.Restore(0)
	if !ok {
		t.Fatal("Restore(0) failed on a one-entry recycle bin")
	}
	if restored.Title != "Bar" {
		t.Errorf("Expected restored title %q, got %q", "Bar", restored.Title)
	}
	if box.Len() != 2 || box.Issues[1].Title != "Bar" {
		t.Errorf("Expected live sequence [Foo Bar], got %v", box.Issues)
	}
	if len(box.RecycleBin) != 0 {
		t.Errorf("Expected empty recycle bin, got %v", box.RecycleBin)
	}
}

func TestRemoveStarredClearsStar(t *testing.T) {
	box := testBox()
	starred := 1
	box.Starred = &starred

	box.Remove(1)
	if box.Starred != nil {
		t.Errorf("Expected star cleared after removing starred issue, got %d", *box.Starred)
	}
}

func TestRemoveBeforeStarShiftsStar(t *testing.T) {
	box := testBox()
	box.Add("Baz")
	starred := 2
	box.Starred = &starred

	box.Remove(0)
	if box.Starred == nil || *box.Starred != 1 {
		t.Errorf("Expected star shifted to 1, got %v", box.Starred)
	}
	if box.Issues[*box.Starred].Title != "Baz" {
		t.Errorf("Star no longer points at the same issue: %q", box.Issues[*box.Starred].Title)
	}
}

func TestTagSetSemantics(t *testing.T) {
	is := &Issue{Title: "Foo"}
	is.Tag("help wanted")
	is.Tag("bug")
	is.Tag("bug")

	want := []string{"bug", "help wanted"}
	if !reflect.DeepEqual(is.Tags, want) {
		t.Errorf("Expected sorted unique tags %v, got %v", want, is.Tags)
	}

	if !is.Untag("bug") {
		t.Error("Untag should report an existing tag as removed")
	}
	if is.Untag("bug") {
		t.Error("Untag should report a missing tag as not removed")
	}
}

func TestRemoveDescription(t *testing.T) {
	is := &Issue{Title: "Bar", Description: []string{"one", "two"}}
	if !is.RemoveDescription(0) {
		t.Fatal("RemoveDescription(0) failed")
	}
	if len(is.Description) != 1 || is.Description[0] != "two" {
		t.Errorf("Expected description [two], got %v", is.Description)
	}
	if is.RemoveDescription(1) {
		t.Error("RemoveDescription(1) should fail on a one-line description")
	}
}

func TestIssueString(t *testing.T) {
	is := &Issue{Title: "Foo", Description: []string{"do it"}, Tags: []string{"bug"}}
	want := "Foo (bug)\n  - do it\n"
	if got := is.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestBoxString(t *testing.T) {
	box := &Box{}
	box.Add("Foo")
	box.Add("Bar")
	want := "0. Foo\n1. Bar\n"
	if got := box.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
