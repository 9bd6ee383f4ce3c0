package richcobra

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra/render"
)

func newApp() *cobra.Command {
	app := &cobra.Command{
		Use:   "app",
		Short: "A test application",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	}
	app.Flags().StringP("output", "o", "", "Output path")
	app.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Synchronize state",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	return app
}

func TestInstallStylesHelp(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.SetOut(&buf)
	app.SetErr(&buf)

	Install(app, WithTheme("slim"), WithMaxWidth(80))

	app.SetArgs([]string{"--help"})
	if err := app.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Usage:", "app", "[OPTIONS]", "--output", "sync", "Synchronize state"} {
		if !strings.Contains(out, want) {
			t.Errorf("Help output missing %q.\nOutput:\n%s", want, out)
		}
	}
}

func TestInstallCoversSubcommands(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.SetOut(&buf)
	app.SetErr(&buf)

	Install(app, WithTheme("slim"), WithMaxWidth(80))

	app.SetArgs([]string{"sync", "--help"})
	if err := app.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(buf.String(), "app sync") {
		t.Errorf("Subcommand help not styled:\n%s", buf.String())
	}
}

func TestInstallTwiceRendersOnce(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.SetOut(&buf)
	app.SetErr(&buf)

	Install(app, WithTheme("slim"), WithMaxWidth(80))
	Install(app, WithTheme("slim"), WithMaxWidth(80))

	app.SetArgs([]string{"--help"})
	if err := app.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if got := strings.Count(buf.String(), "Usage:"); got != 1 {
		t.Errorf("Expected one help page, counted %d usage lines:\n%s", got, buf.String())
	}
}

func TestSetHelpFuncAfterInstallWins(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.SetOut(&buf)
	app.SetErr(&buf)

	Install(app, WithTheme("slim"), WithMaxWidth(80))
	app.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "custom help page")
	})

	app.SetArgs([]string{"--help"})
	if err := app.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "custom help page") {
		t.Errorf("Later help function not used:\n%s", out)
	}
	if strings.Contains(out, "Usage:") {
		t.Errorf("Styled help rendered despite the override:\n%s", out)
	}
}

func TestExecuteRendersErrors(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.SetOut(&buf)
	app.SetErr(&buf)
	app.SetArgs([]string{"--no-such-flag"})

	err := Execute(app, WithTheme("slim"), WithMaxWidth(80), WithOutput(&buf))
	if err == nil {
		t.Fatal("Expected an error for an unknown flag")
	}

	out := buf.String()
	if !strings.Contains(out, "unknown flag: --no-such-flag") {
		t.Errorf("Error message missing:\n%s", out)
	}
	if !strings.Contains(out, "Try 'app --help' for help.") {
		t.Errorf("Help hint missing:\n%s", out)
	}
}

func TestExecuteRendersCommandSuggestions(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.SetOut(&buf)
	app.SetErr(&buf)
	app.SetArgs([]string{"synk"})

	err := Execute(app, WithTheme("slim"), WithMaxWidth(80), WithOutput(&buf))
	if err == nil {
		t.Fatal("Expected an error for a misspelled subcommand")
	}

	out := buf.String()
	for _, want := range []string{`unknown command "synk"`, "Did you mean", "sync"} {
		if !strings.Contains(out, want) {
			t.Errorf("Error panel missing %q.\nOutput:\n%s", want, out)
		}
	}
}

func TestExecuteRendersRunErrors(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.RunE = func(cmd *cobra.Command, args []string) error {
		return errors.New("sync failed: connection refused")
	}
	app.SilenceUsage = true
	app.SetOut(&buf)
	app.SetErr(&buf)
	app.SetArgs([]string{})

	err := Execute(app, WithTheme("slim"), WithMaxWidth(80), WithOutput(&buf))
	if err == nil {
		t.Fatal("Expected the run error to propagate")
	}
	if !strings.Contains(buf.String(), "sync failed: connection refused") {
		t.Errorf("Run error not rendered:\n%s", buf.String())
	}
}

func TestExecuteSuccessRendersNothing(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.SetOut(&buf)
	app.SetErr(&buf)
	app.SetArgs([]string{})

	if err := Execute(app, WithTheme("slim"), WithOutput(&buf)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output on success, got:\n%s", buf.String())
	}
}

func TestAddArgumentAccumulates(t *testing.T) {
	app := newApp()
	AddArgument(app, "src", "Source path", true)
	AddArgument(app, "dst", "Destination path", false)

	raw := app.Annotations[render.ArgsAnnotation]
	if !strings.Contains(raw, "src\tSource path\trequired") {
		t.Errorf("First argument not encoded: %q", raw)
	}
	if !strings.Contains(raw, "dst\tDestination path\t") {
		t.Errorf("Second argument not encoded: %q", raw)
	}
	if strings.Index(raw, "src") > strings.Index(raw, "dst") {
		t.Error("Arguments out of declaration order")
	}
}

func TestFlagEnvVar(t *testing.T) {
	app := newApp()
	if err := FlagEnvVar(app, "output", "APP_OUTPUT"); err != nil {
		t.Fatalf("FlagEnvVar failed: %v", err)
	}

	f := app.Flags().Lookup("output")
	ann := f.Annotations[render.EnvVarAnnotation]
	if len(ann) != 1 || ann[0] != "APP_OUTPUT" {
		t.Errorf("Unexpected annotation: %v", ann)
	}

	if err := FlagEnvVar(app, "missing", "X"); err == nil {
		t.Error("Expected an error for an unknown flag")
	}
}
