package render

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestMain(m *testing.M) {
	// Theme resolution falls back to mono when NO_COLOR is set; the tests
	// pick themes explicitly.
	os.Unsetenv("NO_COLOR")
	os.Exit(m.Run())
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.MaxWidth = 80
	cfg.Theme = "slim"
	return cfg
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deploy",
		Short:   "Deploy services to a cluster",
		Long:    "Deploy services to a cluster using a manifest file.",
		Aliases: []string{"dp"},
		Example: "  deploy manifest.yaml -e staging",
		RunE:    func(cmd *cobra.Command, args []string) error { return nil },
	}

	cmd.Flags().StringP("environment", "e", "staging", "Environment to deploy into")
	cmd.Flags().IntP("replicas", "r", 0, "Number of replicas")
	cmd.Flags().Duration("timeout", 30*time.Second, "Give up after this long")
	cmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
	cmd.Flags().String("token", "", "API token")
	_ = cmd.MarkFlagRequired("environment")
	_ = cmd.Flags().SetAnnotation("token", EnvVarAnnotation, []string{"DEPLOY_TOKEN"})

	cmd.Annotations = map[string]string{
		ArgsAnnotation: EncodeArguments([]Argument{
			{Name: "manifest", Help: "Path to the deployment manifest", Required: true},
		}),
	}

	noop := func(cmd *cobra.Command, args []string) {}
	cmd.AddCommand(
		&cobra.Command{Use: "rollout", Short: "Start a new rollout", Run: noop},
		&cobra.Command{Use: "status", Short: "Show rollout state", Run: noop},
	)

	return cmd
}

func renderHelp(t *testing.T, cfg *Config, cmd *cobra.Command) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}
	if err := r.RenderHelp(cmd); err != nil {
		t.Fatalf("Failed to render help: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q.\nOutput:\n%s", want, out)
		}
	}
}

func TestRenderHelpSections(t *testing.T) {
	out := renderHelp(t, testConfig(), testCommand())

	assertContains(t, out,
		"Usage:", "deploy", "[OPTIONS]", "MANIFEST", "COMMAND [ARGS]...",
		"Deploy services to a cluster using a manifest file.",
		"Aliases:", "dp",
		"Arguments",
		"Options",
		"-e, --environment", "--replicas", "--timeout", "-f, --force",
		"TEXT", "INTEGER", "DURATION",
		"[required]", "DEPLOY_TOKEN", "[default:",
		"Commands",
		"rollout", "Start a new rollout", "status",
		"Examples",
	)
}

func TestRenderHelpRespectsWidth(t *testing.T) {
	cfg := testConfig()
	cfg.Theme = "default"
	out := renderHelp(t, cfg, testCommand())

	for _, line := range strings.Split(out, "\n") {
		// Borders are drawn at the configured width; nothing may poke out.
		if w := len([]rune(line)); w > 80 {
			t.Errorf("Line longer than 80 cells (%d): %q", w, line)
		}
	}
	if !strings.Contains(out, "╭") {
		t.Error("Expected rounded borders with the default theme")
	}
}

func TestRenderHelpFlaglessCommand(t *testing.T) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show rollout state",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	// The usage line and the Options panel must agree: rendering injects
	// the default --help flag before either looks at the flag set.
	out := renderHelp(t, testConfig(), cmd)
	assertContains(t, out, "[OPTIONS]", "--help")
}

func TestRenderHelpHidesHiddenFlags(t *testing.T) {
	cmd := testCommand()
	cmd.Flags().String("secret", "", "Internal use only")
	_ = cmd.Flags().MarkHidden("secret")

	out := renderHelp(t, testConfig(), cmd)
	if strings.Contains(out, "--secret") {
		t.Error("Hidden flag rendered")
	}
}

func TestRenderHelpOptionGroups(t *testing.T) {
	cfg := testConfig()
	cfg.OptionGroups = map[string][]OptionGroup{
		"deploy": {
			{Name: "Target", Options: []string{"environment"}},
		},
	}

	out := renderHelp(t, cfg, testCommand())
	assertContains(t, out, "Target", "Options")

	// The grouped flag must not repeat in the default panel.
	if strings.Count(out, "--environment") != 1 {
		t.Errorf("Expected --environment exactly once:\n%s", out)
	}
}

func TestRenderHelpCommandGroups(t *testing.T) {
	cfg := testConfig()
	cfg.CommandGroups = map[string][]CommandGroup{
		"deploy": {
			{Name: "Release", Commands: []string{"rollout"}},
		},
	}

	out := renderHelp(t, cfg, testCommand())
	assertContains(t, out, "Release", "rollout", "Commands", "status")
}

func TestRenderHelpGroupArguments(t *testing.T) {
	cfg := testConfig()
	cfg.GroupArguments = true

	out := renderHelp(t, cfg, testCommand())
	assertContains(t, out, "MANIFEST")
	if strings.Contains(out, "Arguments") {
		t.Error("Expected no separate Arguments panel when grouping")
	}
}

func TestRenderHelpNoMetavarColumn(t *testing.T) {
	cfg := testConfig()
	cfg.ShowMetavarsColumn = false
	cfg.AppendMetavarsHelp = true

	out := renderHelp(t, cfg, testCommand())
	assertContains(t, out, "(TEXT)")
}

func TestRenderErrorPanel(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(testConfig(), &buf)
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	r.RenderError(testCommand(), errors.New("unknown flag: --nope"))
	out := buf.String()

	assertContains(t, out,
		"Error",
		"unknown flag: --nope",
		"Try 'deploy --help' for help.",
	)
}

func TestRenderErrorCustomSuggestion(t *testing.T) {
	cfg := testConfig()
	cfg.ErrorsSuggestion = "Run with --verbose for details."
	cfg.ErrorsEpilogue = "Report bugs at https://example.com/issues"

	var buf bytes.Buffer
	r, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	r.RenderError(testCommand(), errors.New("boom"))
	out := buf.String()

	assertContains(t, out, "Run with --verbose for details.", "Report bugs at")
	if strings.Contains(out, "Try 'deploy --help'") {
		t.Error("Default suggestion rendered despite override")
	}
}

func TestMetavarMapping(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("s", "", "")
	cmd.Flags().Int("i", 0, "")
	cmd.Flags().Float64("f", 0, "")
	cmd.Flags().Bool("b", false, "")
	cmd.Flags().StringSlice("ss", nil, "")
	cmd.Flags().Count("c", "")

	tests := []struct {
		flag string
		want string
	}{
		{"s", "TEXT"},
		{"i", "INTEGER"},
		{"f", "FLOAT"},
		{"b", ""},
		{"ss", "TEXT,..."},
		{"c", "COUNT"},
	}

	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Fatalf("Missing flag %q", tt.flag)
		}
		if got := metavarFor(f); got != tt.want {
			t.Errorf("metavarFor(%s) = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

func TestCommandArgumentsRoundTrip(t *testing.T) {
	args := []Argument{
		{Name: "src", Help: "Source path", Required: true},
		{Name: "dst", Help: "Destination path"},
	}

	cmd := &cobra.Command{Use: "cp"}
	cmd.Annotations = map[string]string{ArgsAnnotation: EncodeArguments(args)}

	got := commandArguments(cmd)
	if len(got) != 2 {
		t.Fatalf("Expected 2 arguments, got %d", len(got))
	}
	if got[0].Name != "src" || !got[0].Required || got[0].Help != "Source path" {
		t.Errorf("Unexpected first argument: %+v", got[0])
	}
	if got[1].Name != "dst" || got[1].Required {
		t.Errorf("Unexpected second argument: %+v", got[1])
	}
}

func TestNewRejectsUnknownTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "does-not-exist"
	if _, err := New(cfg, &bytes.Buffer{}); err == nil {
		t.Error("Expected an error for an unknown theme")
	}
}
