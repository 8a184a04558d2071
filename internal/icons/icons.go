// Package icons maps symbolic icon names to glyphs.
//
// Two glyph sets exist: Nerd Font code points for patched terminal fonts and
// a plain fallback that renders everywhere.
package icons

// Name is a symbolic icon name.
type Name string

const (
	Code       Name = "code"
	Text       Name = "text"
	Data       Name = "data"
	Stack      Name = "stack"
	File       Name = "file"
	Files      Name = "files"
	Search     Name = "search"
	Branch     Name = "branch"
	Debug      Name = "debug"
	Extensions Name = "extensions"
	Copilot    Name = "copilot"
	Close      Name = "close"
	Error      Name = "error"
	Warning    Name = "warning"
	Bell       Name = "bell"
	Attach     Name = "attach"
)

var nerdGlyphs = map[Name]string{
	Code:       "\uf121",
	Text:       "\uf15c",
	Data:       "\ue60b",
	Stack:      "\uf1c0",
	File:       "\uf15b",
	Files:      "\uf0c5",
	Search:     "\uf002",
	Branch:     "\ue725",
	Debug:      "\uf188",
	Extensions: "\uf12e",
	Copilot:    "\uf4b8",
	Close:      "\uf00d",
	Error:      "\uf057",
	Warning:    "\uf071",
	Bell:       "\uf0f3",
	Attach:     "\uf0c6",
}

var plainGlyphs = map[Name]string{
	Code:       "<>",
	Text:       "≡",
	Data:       "{}",
	Stack:      "▤",
	File:       "·",
	Files:      "▣",
	Search:     "⌕",
	Branch:     "⎇",
	Debug:      "▶",
	Extensions: "⊞",
	Copilot:    "✦",
	Close:      "×",
	Error:      "✖",
	Warning:    "▲",
	Bell:       "◔",
	Attach:     "@",
}

// Provider resolves glyphs from one glyph set.
type Provider struct {
	glyphs map[Name]string
}

// New returns a provider using Nerd Font glyphs when nerdFonts is set.
func New(nerdFonts bool) Provider {
	if nerdFonts {
		return Provider{glyphs: nerdGlyphs}
	}
	return Provider{glyphs: plainGlyphs}
}

// Glyph returns the glyph for name, falling back to the generic file glyph.
func (p Provider) Glyph(name Name) string {
	glyphs := p.glyphs
	if glyphs == nil {
		glyphs = plainGlyphs
	}
	if g, ok := glyphs[name]; ok {
		return g
	}
	return glyphs[File]
}

// Names lists every known icon name.
func Names() []Name {
	return []Name{
		Code, Text, Data, Stack, File, Files, Search, Branch,
		Debug, Extensions, Copilot, Close, Error, Warning, Bell, Attach,
	}
}
