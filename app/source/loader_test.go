package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	sources, err := Load(filepath.Join(t.TempDir(), "sources.yml"))
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 6 {
		t.Fatalf("Expected 6 default sources, got %d", len(sources))
	}
	if sources[0].URL != "https://rajasthancareers.in/category/rajasthan-jobs/feed/" {
		t.Errorf("Expected dedicated Rajasthan feed first, got '%s'", sources[0].URL)
	}
	for _, s := range sources {
		if s.Label == "" {
			t.Errorf("Source %s should have a derived label", s.URL)
		}
	}
}

func TestLoad_FromFile(t *testing.T) {
	content := `sources:
  - url: https://example.gov.in/jobs/feed/
  - url: https://other.gov.in/feed/
    label: Other Board
`
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sources, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}
	if sources[0].Label != "Example" {
		t.Errorf("Expected derived label 'Example', got '%s'", sources[0].Label)
	}
	if sources[1].Label != "Other Board" {
		t.Errorf("Expected explicit label to be kept, got '%s'", sources[1].Label)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte("sources: [}"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoad_EmptySourceList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte("sources: []"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for empty source list")
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://rajasthancareers.in/category/rajasthan-jobs/feed/", "Rajasthancareers"},
		{"https://www.freejobalert.com/feed/", "Freejobalert"},
		{"https://rpsc.rajasthan.gov.in/feed", "Rpsc"},
		{"not a url", "Official Feed"},
		{"", "Official Feed"},
	}

	for _, tt := range tests {
		if got := LabelFor(tt.url); got != tt.want {
			t.Errorf("LabelFor(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
