package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// optionRow is one rendered row of an options panel before layout.
type optionRow struct {
	switches string
	metavar  string
	help     string

	argument bool
}

// maxSwitchColumn caps the switches column so one long flag name does not
// push the help text off the page.
const maxSwitchColumn = 28

// optionPanels renders the Options panels for a command: configured groups
// first, the remaining local flags under the default title, and inherited
// flags under the globals title.
func (r *Renderer) optionPanels(cmd *cobra.Command) []string {
	local := visibleFlags(cmd.LocalFlags())
	inherited := visibleFlags(cmd.InheritedFlags())

	byName := make(map[string]*pflag.Flag, len(local))
	for _, f := range local {
		byName[f.Name] = f
	}

	var panels []string
	used := make(map[string]bool)

	for _, group := range r.cfg.groupsFor(cmd.CommandPath()) {
		var rows []optionRow
		for _, name := range group.Options {
			f, ok := byName[name]
			if !ok {
				continue
			}
			rows = append(rows, r.flagRow(f))
			used[name] = true
		}
		if len(rows) > 0 {
			panels = append(panels, r.panel(group.Name, r.layoutRows(rows)))
		}
	}

	var rest []optionRow
	if r.cfg.GroupArguments && r.cfg.ShowArguments {
		rest = append(rest, r.argumentRows(cmd)...)
	}
	for _, f := range local {
		if !used[f.Name] {
			rest = append(rest, r.flagRow(f))
		}
	}
	if len(rest) > 0 {
		panels = append(panels, r.panel(r.cfg.TitleOptions, r.layoutRows(rest)))
	}

	if len(inherited) > 0 {
		rows := make([]optionRow, 0, len(inherited))
		for _, f := range inherited {
			rows = append(rows, r.flagRow(f))
		}
		panels = append(panels, r.panel(r.cfg.TitleGlobals, r.layoutRows(rows)))
	}

	return panels
}

// argumentsPanel renders the positional arguments panel, unless arguments
// are configured to share the options panel.
func (r *Renderer) argumentsPanel(cmd *cobra.Command) string {
	if r.cfg.GroupArguments {
		return ""
	}
	rows := r.argumentRows(cmd)
	if len(rows) == 0 {
		return ""
	}
	return r.panel(r.cfg.TitleArguments, r.layoutRows(rows))
}

func (r *Renderer) argumentRows(cmd *cobra.Command) []optionRow {
	args := commandArguments(cmd)
	rows := make([]optionRow, 0, len(args))
	for _, arg := range args {
		help := arg.Help
		if arg.Required {
			help = appendMarker(help, r.th.Required.Render("[required]"))
		}
		rows = append(rows, optionRow{
			switches: strings.ToUpper(arg.Name),
			help:     help,
			argument: true,
		})
	}
	return rows
}

// commandArguments decodes the positional arguments declared on a command.
func commandArguments(cmd *cobra.Command) []Argument {
	raw, ok := cmd.Annotations[ArgsAnnotation]
	if !ok || raw == "" {
		return nil
	}
	var args []Argument
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 2 || fields[0] == "" {
			continue
		}
		arg := Argument{Name: fields[0], Help: fields[1]}
		if len(fields) == 3 && fields[2] == "required" {
			arg.Required = true
		}
		args = append(args, arg)
	}
	return args
}

// EncodeArguments serializes positional arguments into the annotation
// format consumed by commandArguments.
func EncodeArguments(args []Argument) string {
	lines := make([]string, 0, len(args))
	for _, arg := range args {
		req := ""
		if arg.Required {
			req = "required"
		}
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s", arg.Name, arg.Help, req))
	}
	return strings.Join(lines, "\n")
}

func visibleFlags(fs *pflag.FlagSet) []*pflag.Flag {
	var flags []*pflag.Flag
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		flags = append(flags, f)
	})
	return flags
}

// flagRow builds the unstyled row for one flag.
func (r *Renderer) flagRow(f *pflag.Flag) optionRow {
	var switches string
	if f.Shorthand != "" {
		switches = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		switches = fmt.Sprintf("    --%s", f.Name)
	}

	metavar := metavarFor(f)
	help := f.Usage

	if r.cfg.AppendMetavarsHelp && metavar != "" && !r.cfg.ShowMetavarsColumn {
		help = appendMarker(help, r.th.Metavar.Render("("+metavar+")"))
	}
	if r.cfg.ShowEnvVars {
		if env, ok := f.Annotations[EnvVarAnnotation]; ok && len(env) > 0 {
			help = appendMarker(help, r.th.EnvVar.Render("(env: "+env[0]+")"))
		}
	}
	if r.cfg.ShowDefaultValues && showDefault(f) {
		help = appendMarker(help, r.th.DefaultValue.Render("[default: "+f.DefValue+"]"))
	}
	if f.Deprecated != "" {
		help = appendMarker(help, r.th.Deprecated.Render("(deprecated: "+f.Deprecated+")"))
	}
	if required(f) {
		help = appendMarker(help, r.th.Required.Render("[required]"))
	}

	if !r.cfg.ShowMetavarsColumn {
		metavar = ""
	}

	return optionRow{switches: switches, metavar: metavar, help: help}
}

// layoutRows lays rows out in aligned columns, wrapping the help column to
// the remaining panel width.
func (r *Renderer) layoutRows(rows []optionRow) string {
	switchWidth := 0
	metavarWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.switches); w > switchWidth && w <= maxSwitchColumn {
			switchWidth = w
		}
		if w := lipgloss.Width(row.metavar); w > metavarWidth {
			metavarWidth = w
		}
	}

	helpWidth := r.innerWidth() - switchWidth - 2
	if metavarWidth > 0 {
		helpWidth -= metavarWidth + 2
	}
	if helpWidth < 10 {
		helpWidth = 10
	}

	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		nameStyle := r.th.Switch
		if row.argument {
			nameStyle = r.th.Argument
		}

		cols := []string{
			nameStyle.Width(switchWidth).Render(row.switches),
			"  ",
		}
		if metavarWidth > 0 {
			cols = append(cols,
				r.th.Metavar.Width(metavarWidth).Render(row.metavar),
				"  ",
			)
		}
		cols = append(cols, r.th.HelpText.Width(helpWidth).Render(row.help))

		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// metavarFor maps a pflag value type to the metavar shown next to the flag.
// Boolean switches carry no metavar.
func metavarFor(f *pflag.Flag) string {
	switch f.Value.Type() {
	case "bool":
		return ""
	case "string":
		return "TEXT"
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return "INTEGER"
	case "float32", "float64":
		return "FLOAT"
	case "duration":
		return "DURATION"
	case "count":
		return "COUNT"
	case "stringSlice", "stringArray":
		return "TEXT,..."
	case "intSlice":
		return "INTEGER,..."
	default:
		return strings.ToUpper(f.Value.Type())
	}
}

// showDefault reports whether the default value is worth printing.
func showDefault(f *pflag.Flag) bool {
	if f.Value.Type() == "bool" {
		return false
	}
	switch f.DefValue {
	case "", "[]", "0", "map[]":
		return false
	}
	return true
}

func required(f *pflag.Flag) bool {
	if ann, ok := f.Annotations[cobra.BashCompOneRequiredFlag]; ok && len(ann) > 0 {
		return ann[0] == "true"
	}
	return false
}

func appendMarker(help, marker string) string {
	if help == "" {
		return marker
	}
	return help + " " + marker
}
