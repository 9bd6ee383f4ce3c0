package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseStyleAttributes(t *testing.T) {
	tests := []struct {
		spec      string
		bold      bool
		faint     bool
		underline bool
	}{
		{"bold", true, false, false},
		{"dim", false, true, false},
		{"bold underline", true, false, true},
		{"unknownword bold", true, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		style := ParseStyle(tt.spec)
		if style.GetBold() != tt.bold {
			t.Errorf("ParseStyle(%q): bold = %v, want %v", tt.spec, style.GetBold(), tt.bold)
		}
		if style.GetFaint() != tt.faint {
			t.Errorf("ParseStyle(%q): faint = %v, want %v", tt.spec, style.GetFaint(), tt.faint)
		}
		if style.GetUnderline() != tt.underline {
			t.Errorf("ParseStyle(%q): underline = %v, want %v", tt.spec, style.GetUnderline(), tt.underline)
		}
	}
}

func TestParseStyleColors(t *testing.T) {
	if fg, ok := ParseStyle("cyan").GetForeground().(lipgloss.Color); !ok || fg != lipgloss.Color("6") {
		t.Errorf("Expected foreground '6' for 'cyan', got %v", fg)
	}
	if bg, ok := ParseStyle("white on red").GetBackground().(lipgloss.Color); !ok || bg != lipgloss.Color("1") {
		t.Errorf("Expected background '1' for 'on red', got %v", bg)
	}
	if fg, ok := ParseStyle("#00d9ff").GetForeground().(lipgloss.Color); !ok || fg != lipgloss.Color("#00d9ff") {
		t.Errorf("Expected hex foreground, got %v", fg)
	}
}

func TestLookupAndNames(t *testing.T) {
	for _, name := range []string{"default", "slim", "mono"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Expected builtin theme %q, got error: %v", name, err)
		}
	}

	if _, err := Lookup("nope"); err == nil {
		t.Error("Expected an error for an unknown theme")
	}

	names := Names()
	if len(names) < 3 {
		t.Errorf("Expected at least 3 themes, got %v", names)
	}
}

func TestResolveHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	th, err := Resolve("default")
	if err != nil {
		t.Fatalf("Failed to resolve theme: %v", err)
	}
	if th.Name != "mono" {
		t.Errorf("Expected mono theme under NO_COLOR, got %q", th.Name)
	}
}

func TestResolveDefaultsName(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	th, err := Resolve("")
	if err != nil {
		t.Fatalf("Failed to resolve theme: %v", err)
	}
	if th.Name != "default" {
		t.Errorf("Expected default theme, got %q", th.Name)
	}
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	content := `name: ocean
borders: false
styles:
  option: "bold #00d9ff"
  switch: "bold green"
  error_text: "bold red"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	if th.Name != "ocean" {
		t.Errorf("Expected theme name 'ocean', got %q", th.Name)
	}
	if th.ShowBorders {
		t.Error("Expected borders disabled")
	}
	if !th.OptionName.GetBold() {
		t.Error("Expected option style to be bold")
	}

	if _, err := Lookup("ocean"); err != nil {
		t.Errorf("Expected loaded theme to be registered: %v", err)
	}
}

func TestLoadThemeFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	noName := filepath.Join(dir, "noname.yaml")
	if err := os.WriteFile(noName, []byte("styles:\n  option: bold\n"), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	if _, err := Load(noName); err == nil {
		t.Error("Expected an error for a theme without a name")
	}

	badElement := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badElement, []byte("name: bad\nstyles:\n  nosuch: bold\n"), 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	if _, err := Load(badElement); err == nil {
		t.Error("Expected an error for an unknown style element")
	}
}
