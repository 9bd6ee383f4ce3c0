package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra/internal/debug"
	"github.com/satishbabariya/richcobra/markup"
)

// description renders the command's long (or short) description according
// to the configured text mode.
func (r *Renderer) description(cmd *cobra.Command) string {
	text := cmd.Long
	if text == "" {
		text = cmd.Short
	}
	if text == "" {
		return ""
	}
	return r.renderBody(text)
}

// renderBody renders free-form help text: markdown beats markup beats the
// plain-text highlighter.
func (r *Renderer) renderBody(text string) string {
	text = strings.TrimRight(text, "\n")

	switch {
	case r.cfg.UseMarkdown:
		out, err := r.renderMarkdown(text)
		if err != nil {
			debug.Warn("markdown rendering failed", "error", err)
			return wrap(r.hl.Apply(text), r.innerWidth())
		}
		return out
	case r.cfg.UseMarkup:
		out, err := markup.Render(text, r.th)
		if err != nil {
			debug.Warn("markup rendering failed", "error", err)
			return wrap(r.hl.Apply(markup.Strip(text)), r.innerWidth())
		}
		return wrap(out, r.innerWidth())
	default:
		return wrap(r.hl.Apply(text), r.innerWidth())
	}
}

func (r *Renderer) renderMarkdown(text string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.innerWidth()),
	)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(text)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
