// Package content holds the fixed table of files shown in the workbench.
//
// The table is built once from compiled-in literals and exposes read-only
// lookups. Nothing in the program creates, edits or removes entries after
// construction.
package content

import (
	"fmt"
	"path"
	"strings"
)

// Language tags the syntax of a file body.
type Language string

const (
	Python   Language = "python"
	SQL      Language = "sql"
	JSON     Language = "json"
	Markdown Language = "markdown"
)

func (l Language) String() string { return string(l) }

// Label is the human readable name shown in the status bar.
func (l Language) Label() string {
	switch l {
	case Python:
		return "Python"
	case SQL:
		return "SQL"
	case JSON:
		return "JSON"
	case Markdown:
		return "Markdown"
	}
	return "Plain Text"
}

// LanguageFor guesses a language from a file name suffix. Unknown suffixes
// return the empty Language.
func LanguageFor(name string) Language {
	switch strings.ToLower(path.Ext(name)) {
	case ".py":
		return Python
	case ".sql":
		return SQL
	case ".json":
		return JSON
	case ".md", ".markdown":
		return Markdown
	}
	return ""
}

// FileEntry is one displayable file.
type FileEntry struct {
	ID       string
	Name     string
	Language Language
	Body     string
}

// Lines returns the number of lines in the body.
func (f FileEntry) Lines() int {
	if f.Body == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(f.Body, "\n"), "\n") + 1
}

// Table is an immutable, ordered set of entries keyed by ID.
type Table struct {
	entries []FileEntry
	index   map[string]int
}

// NewTable builds a table in the given order. Duplicate or empty IDs are a
// programming error and panic.
func NewTable(entries ...FileEntry) *Table {
	t := &Table{
		entries: make([]FileEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.ID == "" {
			panic(fmt.Sprintf("content: entry %d has empty id", i))
		}
		if _, dup := t.index[e.ID]; dup {
			panic(fmt.Sprintf("content: duplicate id %q", e.ID))
		}
		t.entries[i] = e
		t.index[e.ID] = i
	}
	return t
}

// Get looks up an entry by ID.
func (t *Table) Get(id string) (FileEntry, bool) {
	if t == nil {
		return FileEntry{}, false
	}
	i, ok := t.index[id]
	if !ok {
		return FileEntry{}, false
	}
	return t.entries[i], true
}

// Has reports whether id is in the table.
func (t *Table) Has(id string) bool {
	_, ok := t.Get(id)
	return ok
}

// Entries returns a copy of every entry in table order.
func (t *Table) Entries() []FileEntry {
	if t == nil {
		return nil
	}
	out := make([]FileEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// IDs returns every ID in table order.
func (t *Table) IDs() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.ID
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
