package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra/cli/internal/config"
	"github.com/satishbabariya/richcobra/cli/internal/ui"
	"github.com/satishbabariya/richcobra/cli/internal/watch"
	"github.com/satishbabariya/richcobra/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes [name]",
	Short: "List, preview, and select help themes",
	Long: `List the registered themes, preview one by name, or pick one
interactively. The selection is saved to the config file so the demo and
the library default pick it up. A custom theme file configured via
theme_file is loaded before listing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemes,
}

var (
	themesPick  bool
	themesWatch bool
)

func init() {
	themesCmd.Flags().BoolVarP(&themesPick, "pick", "p", false, "Pick a theme interactively and save it")
	themesCmd.Flags().BoolVar(&themesWatch, "watch", false, "Re-render the preview when the theme file changes")

	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	if cfg.ThemeFile != "" {
		if _, err := theme.Load(cfg.ThemeFile); err != nil {
			ui.PrintWarning("Could not load theme file %s: %v", cfg.ThemeFile, err)
		}
	}

	if themesWatch {
		if cfg.ThemeFile == "" {
			return fmt.Errorf("--watch needs theme_file set in the config")
		}
		return watchThemeFile(cmd)
	}

	if len(args) == 1 {
		return previewTheme(cmd, args[0])
	}

	if themesPick {
		return pickTheme()
	}

	rows := make([][]string, 0, len(theme.Names()))
	for _, name := range theme.Names() {
		active := ""
		if name == cfg.Theme {
			active = "✓"
		}
		rows = append(rows, []string{name, active})
	}
	ui.PrintTable([]string{"Theme", "Active"}, rows)
	ui.GetColorPrinters()["info"].Printf("\nPreview one with: richcobra themes <name>\n")
	return nil
}

func previewTheme(cmd *cobra.Command, name string) error {
	if _, err := theme.Lookup(name); err != nil {
		return err
	}
	demoTheme = name
	return runDemo(cmd, nil)
}

func pickTheme() error {
	var choice string
	prompt := &survey.Select{
		Message: "Pick a theme:",
		Options: theme.Names(),
		Default: cfg.Theme,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	cfg.Theme = choice
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	path, _ := config.ConfigFilePath()
	ui.PrintSuccess("Theme %q saved to %s", choice, path)
	return nil
}

// watchThemeFile re-renders the demo whenever the theme file is written,
// until interrupted.
func watchThemeFile(cmd *cobra.Command) error {
	w, err := watch.NewWatcher(cfg.ThemeFile, func() error {
		t, err := theme.Load(cfg.ThemeFile)
		if err != nil {
			ui.PrintError("Theme file error: %v", err)
			return nil
		}
		demoTheme = t.Name
		return runDemo(cmd, nil)
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(); err != nil {
		return err
	}

	ui.PrintInfo("Watching %s for changes. Press Ctrl+C to stop.", cfg.ThemeFile)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}
