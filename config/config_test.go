package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Editor.TabWidth != 4 {
		t.Errorf("DefaultConfig().Editor.TabWidth = %d, want 4", cfg.Editor.TabWidth)
	}
	if cfg.Editor.SyntaxHighlight != true {
		t.Error("DefaultConfig().Editor.SyntaxHighlight should be true")
	}
	if cfg.Editor.TrueColor != nil {
		t.Error("DefaultConfig().Editor.TrueColor should be nil (auto)")
	}
	if cfg.Theme.Name != "default" {
		t.Errorf("DefaultConfig().Theme.Name = %q, want 'default'", cfg.Theme.Name)
	}
}

func TestAddRecentFile(t *testing.T) {
	cfg := DefaultConfig()

	// Add a file
	cfg.AddRecentFile("/path/to/file1.txt")
	if len(cfg.RecentFiles) != 1 {
		t.Fatalf("RecentFiles length = %d, want 1", len(cfg.RecentFiles))
	}

	// Add another file
	cfg.AddRecentFile("/path/to/file2.txt")
	if len(cfg.RecentFiles) != 2 {
		t.Fatalf("RecentFiles length = %d, want 2", len(cfg.RecentFiles))
	}

	// Most recent should be first
	if !filepath.IsAbs(cfg.RecentFiles[0]) || filepath.Base(cfg.RecentFiles[0]) != "file2.txt" {
		t.Errorf("RecentFiles[0] = %q, want file2.txt to be first", cfg.RecentFiles[0])
	}

	// Re-add file1 - should move to front
	cfg.AddRecentFile("/path/to/file1.txt")
	if len(cfg.RecentFiles) != 2 {
		t.Fatalf("RecentFiles length after re-add = %d, want 2", len(cfg.RecentFiles))
	}
	if filepath.Base(cfg.RecentFiles[0]) != "file1.txt" {
		t.Errorf("RecentFiles[0] after re-add = %q, want file1.txt first", cfg.RecentFiles[0])
	}
}

func TestAddRecentFileMaxLimit(t *testing.T) {
	cfg := DefaultConfig()

	// Add more than MaxRecentFiles
	for i := 0; i < MaxRecentFiles+5; i++ {
		cfg.AddRecentFile("/path/to/file" + string(rune('a'+i)) + ".txt")
	}

	if len(cfg.RecentFiles) != MaxRecentFiles {
		t.Errorf("RecentFiles length = %d, want %d (max)", len(cfg.RecentFiles), MaxRecentFiles)
	}
}

func TestLoadTheme(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
	}{
		{"default", "default"},
		{"dark", "dark"},
		{"light", "light"},
		{"", "default"},
		{"no-such-theme", "default"},
	}
	for _, tt := range tests {
		theme := LoadTheme(tt.name)
		if theme.Name != tt.wantName {
			t.Errorf("LoadTheme(%q).Name = %q, want %q", tt.name, theme.Name, tt.wantName)
		}
		if theme.UI.StatusBg == "" || theme.UI.SelectionBg == "" {
			t.Errorf("LoadTheme(%q) has unset UI colors: %+v", tt.name, theme.UI)
		}
	}
}

func TestMergeWithDefault(t *testing.T) {
	partial := Theme{
		Name: "partial",
		UI:   UIColors{StatusBg: "99"},
	}
	merged := mergeWithDefault(partial)
	if merged.UI.StatusBg != "99" {
		t.Errorf("merged StatusBg = %q, want the explicit 99", merged.UI.StatusBg)
	}
	def := DefaultTheme()
	if merged.UI.SelectionBg != def.UI.SelectionBg {
		t.Errorf("merged SelectionBg = %q, want default %q", merged.UI.SelectionBg, def.UI.SelectionBg)
	}
	if merged.Syntax.Keyword != def.Syntax.Keyword {
		t.Errorf("merged Keyword = %q, want default %q", merged.Syntax.Keyword, def.Syntax.Keyword)
	}
}
