// Package highlight turns source text into line-numbered terminal markup.
package highlight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultStyle     = "github-dark"
	DefaultFormatter = "terminal256"
	DefaultTabWidth  = 4
)

// Options control rendering.
type Options struct {
	Style       string // chroma style name
	Formatter   string // chroma formatter name: terminal256, terminal16m, noop
	LineNumbers bool
	TabWidth    int
}

// Renderer highlights text and caches results by language and content.
// It is not safe for concurrent use.
type Renderer struct {
	opts      Options
	style     *chroma.Style
	formatter chroma.Formatter
	gutter    lipgloss.Style
	cache     map[uint64][]string
}

// New builds a renderer. Unknown style or formatter names fall back to
// chroma's defaults.
func New(opts Options) *Renderer {
	if opts.Style == "" {
		opts.Style = DefaultStyle
	}
	if opts.Formatter == "" {
		opts.Formatter = DefaultFormatter
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}
	return &Renderer{
		opts:      opts,
		style:     styles.Get(opts.Style),
		formatter: formatters.Get(opts.Formatter),
		gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
		cache:     make(map[uint64][]string),
	}
}

// Options returns the effective options.
func (r *Renderer) Options() Options { return r.opts }

// Render highlights text as language and joins the lines. On a lexer or
// formatter failure the plain text is returned together with the error.
func (r *Renderer) Render(text, language string) (string, error) {
	lines, err := r.Lines(text, language)
	return strings.Join(lines, "\n"), err
}

// Lines is Render without the final join, one entry per source line.
func (r *Renderer) Lines(text, language string) ([]string, error) {
	key := xxhash.Sum64String(language + "\x00" + text)
	if lines, ok := r.cache[key]; ok {
		return lines, nil
	}

	text = expandTabs(strings.TrimSuffix(text, "\n"), r.opts.TabWidth)
	body, err := r.highlight(text, language)
	if err != nil {
		body = strings.Split(text, "\n")
	}
	lines := r.withGutter(body)
	if err == nil {
		r.cache[key] = lines
	}
	return lines, err
}

func (r *Renderer) highlight(text, language string) ([]string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", language, err)
	}

	var out []string
	for _, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		// Each line is formatted on its own so escape sequences never span a
		// newline and the gutter can be prefixed safely.
		toks := make([]chroma.Token, 0, len(line))
		for _, tok := range line {
			tok.Value = strings.TrimRight(tok.Value, "\n")
			if tok.Value != "" {
				toks = append(toks, tok)
			}
		}
		var b strings.Builder
		if err := r.formatter.Format(&b, r.style, chroma.Literator(toks...)); err != nil {
			return nil, fmt.Errorf("format %s: %w", language, err)
		}
		out = append(out, b.String())
	}

	want := strings.Count(text, "\n") + 1
	for len(out) < want {
		out = append(out, "")
	}
	return out[:want], nil
}

func (r *Renderer) withGutter(lines []string) []string {
	if !r.opts.LineNumbers {
		return lines
	}
	width := max(3, len(strconv.Itoa(len(lines))))
	out := make([]string, len(lines))
	for i, line := range lines {
		num := strconv.Itoa(i + 1)
		num = strings.Repeat(" ", width-len(num)) + num
		out[i] = r.gutter.Render(num) + "  " + line
	}
	return out
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

// Styles lists the registered chroma style names.
func Styles() []string {
	return styles.Names()
}
