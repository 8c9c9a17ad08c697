package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/issuebox/issuebox-cli/pkg/models"
)

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".issuebox")

	box := &models.Box{}
	box.Add("Foo")
	foo, _ := box.Get(0)
	foo.Describe("Depends on Bar")
	foo.Tag("bug")
	box.Add("Bar")
	box.Remove(1)
	starred := 0
	box.Starred = &starred

	if err := Save(path, box); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, box) {
		t.Errorf("Roundtrip mismatch:\nsaved  %+v\nloaded %+v", box, loaded)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".issuebox")
	if err := InitEmpty(path); err != nil {
		t.Fatalf("InitEmpty failed: %v", err)
	}

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed on an empty file: %v", err)
	}
	if box.Len() != 0 || len(box.RecycleBin) != 0 || box.Starred != nil {
		t.Errorf("Expected zero-value box, got %+v", box)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".issuebox")
	content := "[[issues]]\ntitle = \"Foo\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if box.Len() != 1 || box.Issues[0].Title != "Foo" {
		t.Errorf("Expected one issue Foo, got %+v", box.Issues)
	}
	if box.Issues[0].Description != nil || box.Issues[0].Tags != nil {
		t.Errorf("Missing fields should decode to zero values, got %+v", box.Issues[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".issuebox")
	if err := os.WriteFile(path, []byte("issues = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for malformed TOML")
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".issuebox")
	if Exists(path) {
		t.Error("Exists should be false before InitEmpty")
	}
	if err := InitEmpty(path); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists should be true after InitEmpty")
	}
}

func TestReadSettingsDefaultsAndOverrides(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	if _, err := ReadSettings(); err == nil {
		t.Error("ReadSettings should fail when the settings file is missing")
	}

	content := "helpers:\n  gh: /usr/local/bin/gh\n"
	if err := os.WriteFile(SettingsFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.Helpers.Gh != "/usr/local/bin/gh" {
		t.Errorf("Expected gh override, got %q", settings.Helpers.Gh)
	}
	if settings.Helpers.Git != "git" {
		t.Errorf("Unset fields should keep defaults, got git=%q", settings.Helpers.Git)
	}
}

func TestWriteSettingsRoundtrip(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	settings := models.DefaultSettings()
	settings.UI.ShowBanner = false
	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.UI.ShowBanner {
		t.Error("Expected banner disabled after roundtrip")
	}
}
