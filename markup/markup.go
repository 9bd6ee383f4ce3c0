// Package markup parses rich-style inline console markup, e.g.
// "make it [bold red]loud[/] again", and renders it through a theme.
package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/richcobra/theme"
)

// ErrUnbalancedTag is returned when a close tag has no matching open tag.
var ErrUnbalancedTag = errors.New("unbalanced markup close tag")

// markupLexer tokenizes tag markup. Order matters: the escape sequence and
// close tags must win over plain open tags, and a lone bracket falls through
// as literal text.
var markupLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escape", Pattern: `\[\[`},
	{Name: "CloseTag", Pattern: `\[/[^\]]*\]`},
	{Name: "OpenTag", Pattern: `\[[^/\[\]][^\]]*\]`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "Text", Pattern: `[^\[]+`},
})

type rawDocument struct {
	Parts []*rawPart `parser:"@@*"`
}

type rawPart struct {
	Escape  string `parser:"  @Escape"`
	Open    string `parser:"| @OpenTag"`
	Close   string `parser:"| @CloseTag"`
	Bracket string `parser:"| @LBracket"`
	Text    string `parser:"| @Text"`
}

var parser = participle.MustBuild[rawDocument](
	participle.Lexer(markupLexer),
)

// Span is a run of text with the markup styles active over it, outermost
// first.
type Span struct {
	Text   string
	Styles []string
}

// Parse splits markup text into styled spans. Unclosed tags extend to the
// end of the input; a close tag that does not match an open tag is an error.
func Parse(input string) ([]Span, error) {
	raw, err := parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("invalid markup: %w", err)
	}

	var (
		spans []Span
		stack []string
		buf   strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = append(spans, Span{
			Text:   buf.String(),
			Styles: append([]string(nil), stack...),
		})
		buf.Reset()
	}

	for _, part := range raw.Parts {
		switch {
		case part.Escape != "":
			buf.WriteString("[")
		case part.Open != "":
			flush()
			tag := strings.TrimSuffix(strings.TrimPrefix(part.Open, "["), "]")
			stack = append(stack, tag)
		case part.Close != "":
			flush()
			tag := strings.TrimSuffix(strings.TrimPrefix(part.Close, "[/"), "]")
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: [/%s]", ErrUnbalancedTag, tag)
			}
			top := stack[len(stack)-1]
			if tag != "" && tag != top {
				return nil, fmt.Errorf("%w: [/%s] does not close [%s]", ErrUnbalancedTag, tag, top)
			}
			stack = stack[:len(stack)-1]
		case part.Bracket != "":
			buf.WriteString("[")
		default:
			buf.WriteString(part.Text)
		}
	}
	flush()

	return spans, nil
}

// Render parses markup and applies the styles through the theme's style
// vocabulary. Tags carrying "link=<url>" render with the theme's URL style.
func Render(input string, th *theme.Theme) (string, error) {
	spans, err := Parse(input)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, span := range spans {
		if len(span.Styles) == 0 {
			out.WriteString(span.Text)
			continue
		}

		var words []string
		link := false
		for _, tag := range span.Styles {
			for _, word := range strings.Fields(tag) {
				if strings.HasPrefix(word, "link=") {
					link = true
					continue
				}
				words = append(words, word)
			}
		}

		text := span.Text
		if link && th != nil {
			text = th.URL.Render(text)
		}
		style := theme.ParseStyle(strings.Join(words, " "))
		out.WriteString(style.Render(text))
	}
	return out.String(), nil
}

// Strip removes all markup tags, keeping escaped brackets as literals.
// Invalid markup is returned unchanged.
func Strip(input string) string {
	spans, err := Parse(input)
	if err != nil {
		return input
	}
	var out strings.Builder
	for _, span := range spans {
		out.WriteString(span.Text)
	}
	return out.String()
}
