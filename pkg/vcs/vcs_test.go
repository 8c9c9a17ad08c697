package vcs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLabelNames(t *testing.T) {
	out := "bug\t#d73a4a\tSomething isn't working\n" +
		"help wanted\t#008672\tExtra attention is needed\n" +
		"\n"

	labels := ParseLabelNames(out)
	if len(labels) != 2 {
		t.Fatalf("Expected 2 labels, got %v", labels)
	}
	if !labels["bug"] || !labels["help wanted"] {
		t.Errorf("Expected bug and help wanted, got %v", labels)
	}
}

func TestParseLabelNamesEmpty(t *testing.T) {
	if labels := ParseLabelNames(""); len(labels) != 0 {
		t.Errorf("Expected no labels, got %v", labels)
	}
}

func TestAppendGitExclude(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	if err := os.MkdirAll(filepath.Join(".git", "info"), 0755); err != nil {
		t.Fatal(err)
	}
	excludePath := filepath.Join(".git", "info", "exclude")
	if err := os.WriteFile(excludePath, []byte("*.swp\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := AppendGitExclude(".issuebox"); err != nil {
		t.Fatalf("AppendGitExclude failed: %v", err)
	}

	content, err := os.ReadFile(excludePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), "*.swp\n") {
		t.Error("Existing exclude entries must be preserved")
	}
	if !strings.Contains(string(content), "\n.issuebox\n") {
		t.Errorf("Expected .issuebox appended, got %q", string(content))
	}
}
