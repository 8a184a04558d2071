package quickopen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var names = []string{
	"thato.py",
	"thato2.py",
	"main.py",
	"getSites.sql",
	"package.json",
	"profile.json",
	"README.md",
}

func rankedNames(ms []Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func TestEmptyQueryKeepsOrder(t *testing.T) {
	got := Rank("  ", names)
	require.Equal(t, names, rankedNames(got))
	for i, m := range got {
		require.Equal(t, i, m.Index)
	}
}

func TestSubstringPrefixFirst(t *testing.T) {
	got := rankedNames(Rank("p", names))
	// every name containing "p": prefixes first, then the rest in order
	require.Equal(t, []string{"package.json", "profile.json", "thato.py", "thato2.py", "main.py"}, got)
}

func TestSuffixQuery(t *testing.T) {
	got := rankedNames(Rank(".PY", names))
	require.Equal(t, []string{"thato.py", "thato2.py", "main.py"}, got)
}

func TestTypoFindsNearMiss(t *testing.T) {
	got := Rank("profle", names)
	require.Len(t, got, 1)
	require.Equal(t, "profile.json", got[0].Name)
	require.Equal(t, 1, got[0].Distance)

	// Case-insensitive substring beats a near miss.
	got = Rank("thato2", names)
	require.Equal(t, []string{"thato2.py", "thato.py"}, rankedNames(got))
	require.Equal(t, 1, got[1].Distance)
}

func TestFarQueryDropped(t *testing.T) {
	require.Empty(t, Rank("zzzzzzzzzzzz", names))
}
