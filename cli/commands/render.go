package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/richcobra"
	"github.com/satishbabariya/richcobra/cli/internal/ui"
)

var renderMarkdownCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a markdown file to the terminal",
	Long: `Render a markdown file with the same glamour pipeline the library
uses for markdown help text. Handy for checking how a README or a long
command description will look at a given width.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var renderWidth int

func init() {
	renderMarkdownCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Render width (0 = terminal width)")
	richcobra.AddArgument(renderMarkdownCmd, "file", "Markdown file to render", true)

	rootCmd.AddCommand(renderMarkdownCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	width := renderWidth
	if width == 0 {
		width = cfg.MaxWidth
	}

	return ui.PrintMarkdown(string(content), width)
}
