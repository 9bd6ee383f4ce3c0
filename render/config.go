package render

// OptionGroup names a panel and the long flag names it collects.
type OptionGroup struct {
	Name    string
	Options []string
}

// CommandGroup names a panel and the subcommand names it collects.
type CommandGroup struct {
	Name     string
	Commands []string
}

// Argument describes a positional argument shown in the Arguments panel.
// Cobra does not model positionals, so commands declare them through
// annotations (see the root package helpers).
type Argument struct {
	Name     string
	Help     string
	Required bool
}

// Config controls everything about how help, usage, and errors render.
// Construct it with DefaultConfig; the zero value renders a bare help page.
type Config struct {
	// Theme is the name of a registered theme. Empty means "default";
	// NO_COLOR forces "mono" regardless.
	Theme string

	// MaxWidth caps the render width. Zero means use the terminal width,
	// falling back to 80 when that cannot be determined.
	MaxWidth int

	// UseMarkdown renders Long/Example text as markdown via glamour.
	UseMarkdown bool
	// UseMarkup renders [bold red]...[/] tags in Long/Example text.
	// UseMarkdown wins when both are set.
	UseMarkup bool

	ShowArguments      bool
	GroupArguments     bool
	ShowMetavarsColumn bool
	AppendMetavarsHelp bool
	ShowDefaultValues  bool
	ShowEnvVars        bool
	ShowAliases        bool

	// Panel titles.
	TitleUsage     string
	TitleArguments string
	TitleOptions   string
	TitleGlobals   string
	TitleCommands  string

	// ErrorsSuggestion replaces the default "Try '<cmd> --help' for help."
	// hint. ErrorsEpilogue is printed after the error panel.
	ErrorsSuggestion string
	ErrorsEpilogue   string

	// Panel grouping, keyed by command path ("app sub").
	OptionGroups  map[string][]OptionGroup
	CommandGroups map[string][]CommandGroup
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowArguments:      true,
		ShowMetavarsColumn: true,
		ShowDefaultValues:  true,
		ShowEnvVars:        true,
		ShowAliases:        true,
		TitleUsage:         "Usage",
		TitleArguments:     "Arguments",
		TitleOptions:       "Options",
		TitleGlobals:       "Global Options",
		TitleCommands:      "Commands",
	}
}

// groupsFor returns the option groups configured for a command path.
func (c *Config) groupsFor(path string) []OptionGroup {
	if c.OptionGroups == nil {
		return nil
	}
	return c.OptionGroups[path]
}

// commandGroupsFor returns the command groups configured for a command path.
func (c *Config) commandGroupsFor(path string) []CommandGroup {
	if c.CommandGroups == nil {
		return nil
	}
	return c.CommandGroups[path]
}
