// Package highlight applies regex-driven styling to plain help text,
// picking out switches, metavars, inline code, and URLs.
package highlight

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/satishbabariya/richcobra/theme"
)

// Rule pairs a pattern with the theme style applied to its matches. When the
// pattern has a capture group, group 1 is kept verbatim and group 2 is
// styled; otherwise the whole match is styled.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Style   func(*theme.Theme) lipgloss.Style
}

// DefaultRules returns the stock rule set. Order matters: inline code wins
// over switches so backticked flags keep their code styling.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "code",
			Pattern: regexp.MustCompile("`[^`]+`"),
			Style:   func(t *theme.Theme) lipgloss.Style { return t.Code },
		},
		{
			Name:    "url",
			Pattern: regexp.MustCompile(`https?://[^\s)\]]+`),
			Style:   func(t *theme.Theme) lipgloss.Style { return t.URL },
		},
		{
			Name:    "switch",
			Pattern: regexp.MustCompile(`(^|[\s\[(,])(-{1,2}[a-zA-Z][\w-]*)`),
			Style:   func(t *theme.Theme) lipgloss.Style { return t.Switch },
		},
		{
			Name:    "metavar",
			Pattern: regexp.MustCompile(`\b[A-Z][A-Z0-9_]{2,}\b`),
			Style:   func(t *theme.Theme) lipgloss.Style { return t.Metavar },
		},
	}
}

// Highlighter applies an ordered rule set with a fixed theme.
type Highlighter struct {
	rules []Rule
	theme *theme.Theme
}

// New returns a highlighter with the default rules.
func New(th *theme.Theme) *Highlighter {
	return &Highlighter{rules: DefaultRules(), theme: th}
}

// NewWithRules returns a highlighter with a custom rule set.
func NewWithRules(th *theme.Theme, rules []Rule) *Highlighter {
	return &Highlighter{rules: rules, theme: th}
}

// Apply runs every rule over the text in order. Matches that already
// contain escape sequences from an earlier rule are left alone.
func (h *Highlighter) Apply(text string) string {
	for _, rule := range h.rules {
		style := rule.Style(h.theme)
		text = rule.Pattern.ReplaceAllStringFunc(text, func(m string) string {
			if strings.Contains(m, "\x1b") {
				return m
			}
			sub := rule.Pattern.FindStringSubmatch(m)
			if len(sub) >= 3 {
				return sub[1] + style.Render(sub[2])
			}
			return style.Render(m)
		})
	}
	return text
}
