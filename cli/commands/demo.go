package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra"
	"github.com/satishbabariya/richcobra/cli/internal/ui"
)

// errSampleFailure is the canned error shown by "demo --error".
var errSampleFailure = errors.New("deployment failed: manifest not found: manifest.yaml")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a sample application's help with the active theme",
	Long: `Render the help page of a built-in sample application so you can
see how a theme looks on a realistic command: grouped options, positional
arguments, subcommands, defaults, and environment variables.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var (
	demoTheme    string
	demoWidth    int
	demoMarkdown bool
	demoMarkup   bool
	demoError    bool
)

func init() {
	demoCmd.Flags().StringVarP(&demoTheme, "theme", "t", "", "Theme to preview (defaults to the configured theme)")
	demoCmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Render width (0 = terminal width)")
	demoCmd.Flags().BoolVar(&demoMarkdown, "markdown", false, "Render the sample description as markdown")
	demoCmd.Flags().BoolVar(&demoMarkup, "markup", false, "Render [bold]...[/] markup in the sample description")
	demoCmd.Flags().BoolVar(&demoError, "error", false, "Preview the error panel instead of the help page")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	themeName := demoTheme
	if themeName == "" {
		themeName = cfg.Theme
	}
	width := demoWidth
	if width == 0 {
		width = cfg.MaxWidth
	}

	sample := sampleApp()
	opts := []richcobra.Option{
		richcobra.WithTheme(themeName),
		richcobra.WithMaxWidth(width),
		richcobra.WithOutput(cmd.OutOrStdout()),
		richcobra.WithOptionGroups(map[string][]richcobra.OptionGroup{
			"deploy": {
				{Name: "Target", Options: []string{"environment", "region"}},
				{Name: "Behavior", Options: []string{"replicas", "timeout", "force"}},
			},
		}),
		richcobra.WithCommandGroups(map[string][]richcobra.CommandGroup{
			"deploy": {
				{Name: "Release", Commands: []string{"rollout", "rollback"}},
				{Name: "Inspection", Commands: []string{"status"}},
			},
		}),
	}
	if demoMarkdown {
		opts = append(opts, richcobra.WithMarkdown())
	}
	if demoMarkup {
		opts = append(opts, richcobra.WithMarkup())
	}

	ui.PrintHeader("richcobra", "Theme preview: "+themeName)

	richcobra.Install(sample, opts...)

	if demoError {
		// The sample is built to fail; the point is previewing the panel.
		// Pin its args so it does not pick up the CLI's own os.Args.
		sample.SetArgs([]string{})
		_ = richcobra.Execute(sample, opts...)
		return nil
	}
	return sample.Help()
}

// sampleApp builds the fake deployment tool whose help the demo renders.
func sampleApp() *cobra.Command {
	long := "Deploy services to a cluster.\n\n" +
		"Reads the manifest at MANIFEST, resolves the target environment, " +
		"and rolls the service out with `kubectl`-style semantics. " +
		"See https://example.com/deploy for the full guide."
	if demoMarkup {
		long = "Deploy services to a [bold cyan]cluster[/].\n\n" +
			"Reads the manifest, resolves the [yellow]target environment[/], " +
			"and rolls the service out. Escaped brackets render literally: [[ok]."
	}
	if demoMarkdown {
		long = "Deploy services to a **cluster**.\n\n" +
			"- Reads the manifest\n- Resolves the target environment\n" +
			"- Rolls the service out\n\nSee the [guide](https://example.com/deploy)."
	}

	app := &cobra.Command{
		Use:     "deploy",
		Short:   "Deploy services to a cluster",
		Long:    long,
		Aliases: []string{"dp"},
		Example: "  deploy manifest.yaml --environment staging\n" +
			"  deploy manifest.yaml -e prod --replicas 5 --force",
		RunE: func(cmd *cobra.Command, args []string) error { return cmd.Help() },
	}

	app.Flags().StringP("environment", "e", "staging", "Environment to deploy into")
	app.Flags().String("region", "", "Override the target region")
	app.Flags().IntP("replicas", "r", 0, "Number of replicas to run")
	app.Flags().Duration("timeout", 30*time.Second, "Give up after this long")
	app.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
	app.Flags().String("token", "", "API token used for authentication")
	_ = app.MarkFlagRequired("environment")
	_ = richcobra.FlagEnvVar(app, "token", "DEPLOY_TOKEN")

	richcobra.AddArgument(app, "manifest", "Path to the deployment manifest", true)

	for _, sub := range []struct {
		use, short string
	}{
		{"rollout", "Start a new rollout"},
		{"rollback", "Roll back to the previous release"},
		{"status", "Show the state of the current rollout"},
	} {
		app.AddCommand(&cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			RunE:  func(cmd *cobra.Command, args []string) error { return nil },
		})
	}

	if demoError {
		app.RunE = func(cmd *cobra.Command, args []string) error {
			return errSampleFailure
		}
		app.SilenceUsage = true
	}

	return app
}
