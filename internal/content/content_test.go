package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTableLookup(t *testing.T) {
	tbl := Default()
	require.Equal(t, 7, tbl.Len())

	for _, id := range tbl.IDs() {
		e, ok := tbl.Get(id)
		require.True(t, ok, id)
		require.Equal(t, id, e.ID)
		require.NotEmpty(t, e.Body, id)
		require.Equal(t, LanguageFor(e.Name), e.Language, id)
	}

	_, ok := tbl.Get("missing.txt")
	require.False(t, ok)
	require.False(t, tbl.Has("missing.txt"))
}

func TestDefaultTableOrder(t *testing.T) {
	require.Equal(t, []string{
		"thato.py", "thato2.py", "main.py", "getSites.sql",
		"package.json", "profile.json", "README.md",
	}, Default().IDs())

	hello, ok := Default().Get(ThatoPy)
	require.True(t, ok)
	require.Equal(t, 2, hello.Lines())
	require.Contains(t, hello.Body, `print("Hello World")`)

	readme, _ := Default().Get(Readme)
	require.Equal(t, Markdown, readme.Language)
	sites, _ := Default().Get(GetSitesSQL)
	require.Equal(t, SQL, sites.Language)
}

func TestEntriesReturnsCopy(t *testing.T) {
	tbl := Default()
	entries := tbl.Entries()
	entries[0].Body = "mutated"

	e, ok := tbl.Get(entries[0].ID)
	require.True(t, ok)
	require.NotEqual(t, "mutated", e.Body)
}

func TestNewTablePanicsOnDuplicateID(t *testing.T) {
	require.Panics(t, func() {
		NewTable(FileEntry{ID: "a"}, FileEntry{ID: "a"})
	})
	require.Panics(t, func() {
		NewTable(FileEntry{ID: ""})
	})
}

func TestLanguageFor(t *testing.T) {
	cases := map[string]Language{
		"main.py":    Python,
		"README.MD":  Markdown,
		"data.json":  JSON,
		"schema.sql": SQL,
		"notes.txt":  "",
		"Makefile":   "",
	}
	for name, want := range cases {
		require.Equal(t, want, LanguageFor(name), name)
	}
	require.Equal(t, "Plain Text", Language("").Label())
	require.Equal(t, "Python", Python.Label())
}

func TestLines(t *testing.T) {
	require.Equal(t, 0, FileEntry{}.Lines())
	require.Equal(t, 1, FileEntry{Body: "one"}.Lines())
	require.Equal(t, 2, FileEntry{Body: "one\ntwo\n"}.Lines())
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	require.Equal(t, 0, tbl.Len())
	require.Nil(t, tbl.IDs())
	_, ok := tbl.Get("x")
	require.False(t, ok)
}
