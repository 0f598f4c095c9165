package feed

import (
	"os"
	"path/filepath"
	"testing"

	"feed-digest/internal/model"
)

func TestDefaultSources(t *testing.T) {
	sources := DefaultSources()
	if len(sources) != 10 {
		t.Fatalf("expected 10 default sources, got %d", len(sources))
	}
	for _, s := range sources {
		if s.Name == "" || s.URL == "" || s.Kind == "" {
			t.Errorf("incomplete default source: %+v", s)
		}
	}
}

func TestLoadSourcesEmptyPathReturnsDefaults(t *testing.T) {
	sources, err := LoadSources("")
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if len(sources) != len(DefaultSources()) {
		t.Errorf("expected defaults, got %d sources", len(sources))
	}
}

func TestLoadSourcesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := "" +
		"- name: TestFeed\n" +
		"  url: https://example.com/rss\n" +
		"  kind: generic\n" +
		"- name: Another\n" +
		"  url: https://example.org/atom\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	if sources[0].Name != "TestFeed" || sources[0].Kind != model.KindGeneric {
		t.Errorf("first source wrong: %+v", sources[0])
	}
	if sources[1].Kind != model.KindGeneric {
		t.Errorf("missing kind must default to generic, got %q", sources[1].Kind)
	}
}

func TestLoadSourcesRejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := "- name: NoURL\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadSources(path); err == nil {
		t.Fatal("expected error for entry without url")
	}
}

func TestLoadSourcesRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := "" +
		"- name: Odd\n" +
		"  url: https://example.com/rss\n" +
		"  kind: carrier-pigeon\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadSources(path); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	if _, err := LoadSources(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
