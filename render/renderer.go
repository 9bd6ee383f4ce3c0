// Package render turns cobra commands into styled terminal help pages.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra/highlight"
	"github.com/satishbabariya/richcobra/internal/debug"
	"github.com/satishbabariya/richcobra/theme"
)

// Annotation keys used to carry help metadata on cobra commands and flags.
const (
	// ArgsAnnotation stores positional arguments on a command, one per
	// line, fields separated by tabs: name, help, "required"/"".
	ArgsAnnotation = "richcobra.arguments"
	// EnvVarAnnotation stores the environment variable shown for a flag.
	EnvVarAnnotation = "richcobra.envvar"
)

// Renderer renders help, usage, and error output for one configuration.
type Renderer struct {
	cfg   *Config
	th    *theme.Theme
	hl    *highlight.Highlighter
	out   io.Writer
	width int
}

// New builds a renderer. A nil config means DefaultConfig; the width is the
// configured MaxWidth, else the terminal width, else 80.
func New(cfg *Config, out io.Writer) (*Renderer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	th, err := theme.Resolve(cfg.Theme)
	if err != nil {
		return nil, err
	}

	width := cfg.MaxWidth
	if width <= 0 {
		if w := pterm.GetTerminalWidth(); w > 0 {
			width = w
		} else {
			width = 80
		}
	}

	return &Renderer{
		cfg:   cfg,
		th:    th,
		hl:    highlight.New(th),
		out:   out,
		width: width,
	}, nil
}

// Width returns the resolved render width.
func (r *Renderer) Width() int { return r.width }

// Theme returns the resolved theme.
func (r *Renderer) Theme() *theme.Theme { return r.th }

// RenderHelp writes the full help page for a command.
func (r *Renderer) RenderHelp(cmd *cobra.Command) error {
	debug.Debug("rendering help", "command", cmd.CommandPath(), "width", r.width)

	// The default --help/--version flags must exist before the usage line
	// decides whether to show the [OPTIONS] token.
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	fmt.Fprintln(r.out, r.usageLine(cmd))

	if desc := r.description(cmd); desc != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, desc)
	}

	if r.cfg.ShowAliases && len(cmd.Aliases) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "%s %s\n",
			r.th.PanelTitle.Render("Aliases:"),
			r.th.Aliases.Render(strings.Join(cmd.Aliases, ", ")))
	}

	if r.cfg.ShowArguments {
		if panel := r.argumentsPanel(cmd); panel != "" {
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, panel)
		}
	}

	for _, panel := range r.optionPanels(cmd) {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, panel)
	}

	for _, panel := range r.commandPanels(cmd) {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, panel)
	}

	if cmd.HasExample() {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.panel("Examples", r.renderBody(cmd.Example)))
	}

	return nil
}

// RenderUsage writes the short usage block shown on usage errors.
func (r *Renderer) RenderUsage(cmd *cobra.Command) error {
	fmt.Fprintln(r.out, r.usageLine(cmd))
	return nil
}

// RenderError writes a styled error panel with a help hint.
func (r *Renderer) RenderError(cmd *cobra.Command, err error) {
	body := r.th.ErrorText.Render(wrap(err.Error(), r.innerWidth()))

	hint := r.cfg.ErrorsSuggestion
	if hint == "" {
		hint = fmt.Sprintf("Try '%s --help' for help.", cmd.CommandPath())
	}
	body = lipgloss.JoinVertical(lipgloss.Left, body, r.th.ErrorHint.Render(hint))

	fmt.Fprintln(r.out, r.errorPanel("Error", body))

	if r.cfg.ErrorsEpilogue != "" {
		fmt.Fprintln(r.out, r.cfg.ErrorsEpilogue)
	}
}

// usageLine builds the styled "Usage: app sub [OPTIONS] ..." line.
func (r *Renderer) usageLine(cmd *cobra.Command) string {
	parts := []string{
		r.th.UsageVerb.Render(r.cfg.TitleUsage + ":"),
		r.th.UsageCommand.Render(cmd.CommandPath()),
	}

	if cmd.HasAvailableFlags() {
		parts = append(parts, r.th.Metavar.Render("[OPTIONS]"))
	}
	for _, arg := range commandArguments(cmd) {
		metavar := strings.ToUpper(arg.Name)
		if !arg.Required {
			metavar = "[" + metavar + "]"
		}
		parts = append(parts, r.th.Metavar.Render(metavar))
	}
	if cmd.HasAvailableSubCommands() {
		parts = append(parts, r.th.Metavar.Render("COMMAND [ARGS]..."))
	}

	return strings.Join(parts, " ")
}

// panel wraps content in a themed box with the title on the first line.
// Borderless themes degrade to a title line with indented content.
func (r *Renderer) panel(title, content string) string {
	styledTitle := r.th.PanelTitle.Render(title)

	if !r.th.ShowBorders {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			styledTitle,
			indent(content, 2),
		)
	}

	return lipgloss.NewStyle().
		Border(r.th.Box).
		BorderForeground(r.th.PanelBorder.GetForeground()).
		Padding(0, 1).
		Width(r.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, styledTitle, content))
}

func (r *Renderer) errorPanel(title, content string) string {
	if !r.th.ShowBorders {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			r.th.ErrorText.Render(title),
			indent(content, 2),
		)
	}

	return lipgloss.NewStyle().
		Border(r.th.Box).
		BorderForeground(r.th.ErrorBorder.GetForeground()).
		Padding(0, 1).
		Width(r.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, r.th.ErrorText.Render(title), content))
}

// innerWidth is the content width available inside a panel.
func (r *Renderer) innerWidth() int {
	return r.width - 4
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// wrap re-flows text to the given width using lipgloss.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
