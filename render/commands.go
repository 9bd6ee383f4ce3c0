package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandPanels renders the subcommand panels: configured groups first,
// then cobra's native groups, then everything else under the default title.
func (r *Renderer) commandPanels(cmd *cobra.Command) []string {
	var available []*cobra.Command
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		available = append(available, sub)
	}
	if len(available) == 0 {
		return nil
	}

	byName := make(map[string]*cobra.Command, len(available))
	for _, sub := range available {
		byName[sub.Name()] = sub
	}

	var panels []string
	used := make(map[string]bool)

	for _, group := range r.cfg.commandGroupsFor(cmd.CommandPath()) {
		var rows []commandRow
		for _, name := range group.Commands {
			sub, ok := byName[name]
			if !ok {
				continue
			}
			rows = append(rows, r.commandRow(sub))
			used[name] = true
		}
		if len(rows) > 0 {
			panels = append(panels, r.panel(group.Name, r.layoutCommandRows(rows)))
		}
	}

	for _, group := range cmd.Groups() {
		var rows []commandRow
		for _, sub := range available {
			if used[sub.Name()] || sub.GroupID != group.ID {
				continue
			}
			rows = append(rows, r.commandRow(sub))
			used[sub.Name()] = true
		}
		if len(rows) > 0 {
			panels = append(panels, r.panel(group.Title, r.layoutCommandRows(rows)))
		}
	}

	var rest []commandRow
	for _, sub := range available {
		if !used[sub.Name()] {
			rest = append(rest, r.commandRow(sub))
		}
	}
	if len(rest) > 0 {
		panels = append(panels, r.panel(r.cfg.TitleCommands, r.layoutCommandRows(rest)))
	}

	return panels
}

type commandRow struct {
	name string
	help string
}

func (r *Renderer) commandRow(sub *cobra.Command) commandRow {
	name := sub.Name()
	if r.cfg.ShowAliases && len(sub.Aliases) > 0 {
		name += " (" + strings.Join(sub.Aliases, ", ") + ")"
	}

	help := sub.Short
	if sub.Deprecated != "" {
		help = appendMarker(help, r.th.Deprecated.Render("(deprecated: "+sub.Deprecated+")"))
	}

	return commandRow{name: name, help: help}
}

func (r *Renderer) layoutCommandRows(rows []commandRow) string {
	nameWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.name); w > nameWidth && w <= maxSwitchColumn {
			nameWidth = w
		}
	}

	helpWidth := r.innerWidth() - nameWidth - 2
	if helpWidth < 10 {
		helpWidth = 10
	}

	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		rendered = append(rendered, lipgloss.JoinHorizontal(
			lipgloss.Top,
			r.th.CommandName.Width(nameWidth).Render(row.name),
			"  ",
			r.th.HelpText.Width(helpWidth).Render(row.help),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
