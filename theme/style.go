package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps the classic ANSI color names to their palette indexes.
// Hex values ("#00d9ff") and raw indexes ("212") pass through unchanged.
var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
	"grey":           "8",
	"gray":           "8",
}

// ParseStyle builds a lipgloss style from a space-separated style string,
// e.g. "bold cyan", "dim red", "underline #ff8800 on black".
//
// Attribute words toggle text attributes, the first color word sets the
// foreground, and a color following "on" sets the background. Unknown words
// are ignored so themes stay forward-compatible.
func ParseStyle(spec string) lipgloss.Style {
	style := lipgloss.NewStyle()
	background := false

	for _, word := range strings.Fields(spec) {
		switch strings.ToLower(word) {
		case "bold", "b":
			style = style.Bold(true)
		case "italic", "i":
			style = style.Italic(true)
		case "underline", "u":
			style = style.Underline(true)
		case "dim", "faint":
			style = style.Faint(true)
		case "strike", "strikethrough", "s":
			style = style.Strikethrough(true)
		case "reverse":
			style = style.Reverse(true)
		case "blink":
			style = style.Blink(true)
		case "on":
			background = true
		case "none", "default":
			// keep terminal default
		default:
			if c, ok := parseColor(word); ok {
				if background {
					style = style.Background(c)
					background = false
				} else {
					style = style.Foreground(c)
				}
			}
		}
	}

	return style
}

func parseColor(word string) (lipgloss.Color, bool) {
	w := strings.ToLower(word)
	if name, ok := namedColors[w]; ok {
		return lipgloss.Color(name), true
	}
	if strings.HasPrefix(w, "#") && (len(w) == 4 || len(w) == 7) {
		return lipgloss.Color(w), true
	}
	if isDigits(w) {
		return lipgloss.Color(w), true
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
