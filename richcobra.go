// Package richcobra restyles the help, usage, and error output of cobra
// commands with themed panels, highlighted flags, and optional markdown or
// inline markup in help text. Install it on a root command and every
// command in the tree renders through it.
package richcobra

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra/internal/debug"
	"github.com/satishbabariya/richcobra/render"
)

// Re-exported configuration types. The render package owns the definitions
// so the renderer stays usable on its own.
type (
	HelpConfig   = render.Config
	OptionGroup  = render.OptionGroup
	CommandGroup = render.CommandGroup
	Argument     = render.Argument
)

// DefaultConfig returns the stock help configuration.
func DefaultConfig() *HelpConfig { return render.DefaultConfig() }

type settings struct {
	cfg *render.Config
	out io.Writer
}

// Option adjusts how help is rendered.
type Option func(*settings)

// WithConfig replaces the whole configuration.
func WithConfig(cfg *HelpConfig) Option {
	return func(s *settings) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithTheme selects a registered theme by name.
func WithTheme(name string) Option {
	return func(s *settings) { s.cfg.Theme = name }
}

// WithMaxWidth caps the render width.
func WithMaxWidth(width int) Option {
	return func(s *settings) { s.cfg.MaxWidth = width }
}

// WithMarkdown renders Long and Example text as markdown.
func WithMarkdown() Option {
	return func(s *settings) { s.cfg.UseMarkdown = true }
}

// WithMarkup renders [bold red]...[/] tags in Long and Example text.
func WithMarkup() Option {
	return func(s *settings) { s.cfg.UseMarkup = true }
}

// WithOptionGroups configures option panels, keyed by command path.
func WithOptionGroups(groups map[string][]OptionGroup) Option {
	return func(s *settings) { s.cfg.OptionGroups = groups }
}

// WithCommandGroups configures subcommand panels, keyed by command path.
func WithCommandGroups(groups map[string][]CommandGroup) Option {
	return func(s *settings) { s.cfg.CommandGroups = groups }
}

// WithOutput forces all rendering to one writer instead of each command's
// own output stream. Mostly useful in tests.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

func newSettings(opts ...Option) *settings {
	s := &settings{cfg: render.DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) writer(fallback io.Writer) io.Writer {
	if s.out != nil {
		return s.out
	}
	return fallback
}

// Install replaces the help, usage, and flag error handling of a command
// tree with styled rendering. Cobra inherits these from the root, so
// installing on the root covers every subcommand. Installing again simply
// replaces the functions; wrappers never stack.
func Install(root *cobra.Command, opts ...Option) *cobra.Command {
	s := newSettings(opts...)

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		out := s.writer(cmd.OutOrStdout())
		r, err := render.New(s.cfg, out)
		if err != nil {
			debug.Error("renderer init failed", "error", err)
			fmt.Fprintln(out, cmd.UsageString())
			return
		}
		if err := r.RenderHelp(cmd); err != nil {
			debug.Error("help rendering failed", "error", err)
		}
	})

	root.SetUsageFunc(func(cmd *cobra.Command) error {
		out := s.writer(cmd.ErrOrStderr())
		r, err := render.New(s.cfg, out)
		if err != nil {
			fmt.Fprintln(out, cmd.UseLine())
			return nil
		}
		return r.RenderUsage(cmd)
	})

	// Flag errors pass through untouched so Execute can render them once.
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return err
	})

	return root
}

// NewCommand styles a single root command. Convenience alias for Install.
func NewCommand(cmd *cobra.Command, opts ...Option) *cobra.Command {
	return Install(cmd, opts...)
}

// Execute installs styled rendering, runs the command, and renders any
// resulting error as a themed panel on stderr. The error is returned
// unchanged for the caller's exit handling.
func Execute(root *cobra.Command, opts ...Option) error {
	s := newSettings(opts...)
	Install(root, WithConfig(s.cfg), WithOutput(s.out))

	root.SilenceErrors = true

	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}

	out := s.writer(root.ErrOrStderr())
	r, rerr := render.New(s.cfg, out)
	if rerr != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return err
	}
	r.RenderError(cmd, err)
	return err
}

// AddArgument declares a positional argument on a command so it shows up
// in the Arguments panel and the usage line.
func AddArgument(cmd *cobra.Command, name, help string, required bool) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	encoded := render.EncodeArguments([]Argument{{Name: name, Help: help, Required: required}})
	if existing := cmd.Annotations[render.ArgsAnnotation]; existing != "" {
		encoded = existing + "\n" + encoded
	}
	cmd.Annotations[render.ArgsAnnotation] = encoded
}

// FlagEnvVar records the environment variable displayed next to a flag's
// help text.
func FlagEnvVar(cmd *cobra.Command, flagName, envVar string) error {
	return cmd.Flags().SetAnnotation(flagName, render.EnvVarAnnotation, []string{envVar})
}
