// Package commands implements the richcobra CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra"
	"github.com/satishbabariya/richcobra/cli/internal/config"
	"github.com/satishbabariya/richcobra/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:   "richcobra",
	Short: "Preview and tune styled help rendering for cobra CLIs",
	Long: `The richcobra CLI previews themed help output, manages themes, and
renders markdown the way the richcobra library does inside your own
application. Use it to pick a theme, tweak a custom one, and see the
result before wiring the library into a command tree.`,
	Example: `  richcobra demo --theme slim
  richcobra themes
  richcobra render README.md`,
	SilenceUsage: true,
}

var (
	flagDebug bool
	cfg       *config.Config
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		debug.Init(flagDebug || cfg.Debug)
	}
}

// Execute runs the CLI. The root command tree is styled by the library
// itself, so the CLI doubles as a living demo.
func Execute() error {
	loaded, err := config.LoadConfig()
	if err != nil {
		loaded = config.Default()
	}
	cfg = loaded

	return richcobra.Execute(rootCmd,
		richcobra.WithTheme(cfg.Theme),
		richcobra.WithMaxWidth(cfg.MaxWidth),
		richcobra.WithCommandGroups(map[string][]richcobra.CommandGroup{
			"richcobra": {
				{Name: "Preview", Commands: []string{"demo", "render"}},
				{Name: "Configuration", Commands: []string{"themes"}},
			},
		}),
	)
}
