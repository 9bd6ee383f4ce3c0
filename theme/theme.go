// Package theme defines the named style sets used when rendering help output.
package theme

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// Theme holds one lipgloss style per help element. Styles are resolved once
// at lookup time; renderers never parse style strings themselves.
type Theme struct {
	Name string

	// Usage line
	UsageVerb    lipgloss.Style
	UsageCommand lipgloss.Style

	// Option rows
	OptionName       lipgloss.Style
	Switch           lipgloss.Style
	Metavar          lipgloss.Style
	MetavarSeparator lipgloss.Style
	HelpText         lipgloss.Style
	HelpFirstLine    lipgloss.Style
	DefaultValue     lipgloss.Style
	EnvVar           lipgloss.Style
	Required         lipgloss.Style
	Deprecated       lipgloss.Style

	// Command rows
	CommandName lipgloss.Style
	Argument    lipgloss.Style
	Aliases     lipgloss.Style

	// Inline highlighting
	Code lipgloss.Style
	URL  lipgloss.Style

	// Panels
	PanelTitle  lipgloss.Style
	PanelBorder lipgloss.Style
	ErrorBorder lipgloss.Style
	ErrorText   lipgloss.Style
	ErrorHint   lipgloss.Style

	// ShowBorders disables panel boxes entirely when false (slim themes).
	ShowBorders bool
	Box         lipgloss.Border
}

var (
	mu       sync.RWMutex
	registry = map[string]*Theme{}
)

func init() {
	Register(defaultTheme())
	Register(slimTheme())
	Register(monoTheme())
}

func defaultTheme() *Theme {
	return &Theme{
		Name:             "default",
		UsageVerb:        ParseStyle("yellow"),
		UsageCommand:     ParseStyle("bold"),
		OptionName:       ParseStyle("bold cyan"),
		Switch:           ParseStyle("bold green"),
		Metavar:          ParseStyle("bold yellow"),
		MetavarSeparator: ParseStyle("dim"),
		HelpText:         lipgloss.NewStyle(),
		HelpFirstLine:    lipgloss.NewStyle(),
		DefaultValue:     ParseStyle("dim"),
		EnvVar:           ParseStyle("dim yellow"),
		Required:         ParseStyle("red"),
		Deprecated:       ParseStyle("red"),
		CommandName:      ParseStyle("bold cyan"),
		Argument:         ParseStyle("bold cyan"),
		Aliases:          ParseStyle("dim"),
		Code:             ParseStyle("bold magenta"),
		URL:              ParseStyle("underline blue"),
		PanelTitle:       ParseStyle("bold"),
		PanelBorder:      ParseStyle("dim"),
		ErrorBorder:      ParseStyle("red"),
		ErrorText:        ParseStyle("bold red"),
		ErrorHint:        ParseStyle("dim"),
		ShowBorders:      true,
		Box:              lipgloss.RoundedBorder(),
	}
}

func slimTheme() *Theme {
	t := defaultTheme()
	t.Name = "slim"
	t.ShowBorders = false
	return t
}

func monoTheme() *Theme {
	return &Theme{
		Name:          "mono",
		UsageVerb:     lipgloss.NewStyle(),
		UsageCommand:  ParseStyle("bold"),
		OptionName:    ParseStyle("bold"),
		Switch:        ParseStyle("bold"),
		Metavar:       lipgloss.NewStyle(),
		HelpText:      lipgloss.NewStyle(),
		HelpFirstLine: lipgloss.NewStyle(),
		DefaultValue:  ParseStyle("dim"),
		EnvVar:        ParseStyle("dim"),
		Required:      ParseStyle("bold"),
		Deprecated:    ParseStyle("strike"),
		CommandName:   ParseStyle("bold"),
		Argument:      ParseStyle("bold"),
		Aliases:       ParseStyle("dim"),
		Code:          ParseStyle("bold"),
		URL:           ParseStyle("underline"),
		PanelTitle:    ParseStyle("bold"),
		PanelBorder:   lipgloss.NewStyle(),
		ErrorBorder:   lipgloss.NewStyle(),
		ErrorText:     ParseStyle("bold"),
		ErrorHint:     ParseStyle("dim"),
		ShowBorders:   true,
		Box:           lipgloss.NormalBorder(),
	}
}

// Register adds or replaces a theme by name.
func Register(t *Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t
}

// Lookup returns the theme with the given name.
func Lookup(name string) (*Theme, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme: %q", name)
	}
	return t, nil
}

// Names returns the registered theme names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the named theme, honoring the NO_COLOR convention by
// forcing the mono theme when the variable is set.
func Resolve(name string) (*Theme, error) {
	if os.Getenv("NO_COLOR") != "" {
		return Lookup("mono")
	}
	if name == "" {
		name = "default"
	}
	return Lookup(name)
}

// Load reads a custom theme file (yaml, one "styles" table of element name
// to style string) and registers it under the file's "name" key.
//
//	name: ocean
//	borders: true
//	styles:
//	  option: "bold #00d9ff"
//	  switch: "bold #00ff88"
func Load(path string) (*Theme, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	name := v.GetString("name")
	if name == "" {
		return nil, fmt.Errorf("theme file %s has no name", path)
	}

	t := defaultTheme()
	t.Name = name
	if v.IsSet("borders") {
		t.ShowBorders = v.GetBool("borders")
	}

	styles := v.GetStringMapString("styles")
	for element, spec := range styles {
		if err := t.set(element, spec); err != nil {
			return nil, err
		}
	}

	Register(t)
	return t, nil
}

func (t *Theme) set(element, spec string) error {
	style := ParseStyle(spec)
	switch element {
	case "usage":
		t.UsageVerb = style
	case "usage_command":
		t.UsageCommand = style
	case "option":
		t.OptionName = style
	case "switch":
		t.Switch = style
	case "metavar":
		t.Metavar = style
	case "metavar_separator":
		t.MetavarSeparator = style
	case "helptext":
		t.HelpText = style
	case "helptext_first_line":
		t.HelpFirstLine = style
	case "default":
		t.DefaultValue = style
	case "envvar":
		t.EnvVar = style
	case "required":
		t.Required = style
	case "deprecated":
		t.Deprecated = style
	case "command":
		t.CommandName = style
	case "argument":
		t.Argument = style
	case "aliases":
		t.Aliases = style
	case "code":
		t.Code = style
	case "url":
		t.URL = style
	case "panel_title":
		t.PanelTitle = style
	case "panel_border":
		t.PanelBorder = style
	case "error_border":
		t.ErrorBorder = style
	case "error_text":
		t.ErrorText = style
	case "error_hint":
		t.ErrorHint = style
	default:
		return fmt.Errorf("unknown style element: %q", element)
	}
	return nil
}
