// Package quickopen ranks file names against a typed query, the way an
// editor's "go to file" box does.
package quickopen

import (
	"path"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxDistance bounds how far a non-substring match may be from the query.
const MaxDistance = 4

// Match is one ranked candidate.
type Match struct {
	Name     string
	Index    int // position in the input slice
	Distance int // 0 for substring matches
	Prefix   bool
}

// Rank orders names by how well they match query. Substring matches come
// first (prefix matches before infix), then near misses by edit distance
// against the file stem. Ties keep input order. An empty query returns all
// names in input order.
func Rank(query string, names []string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Match, 0, len(names))
	if q == "" {
		for i, n := range names {
			out = append(out, Match{Name: n, Index: i})
		}
		return out
	}

	for i, n := range names {
		lower := strings.ToLower(n)
		if strings.Contains(lower, q) {
			out = append(out, Match{Name: n, Index: i, Prefix: strings.HasPrefix(lower, q)})
			continue
		}
		stem := strings.TrimSuffix(lower, path.Ext(lower))
		d := levenshtein.ComputeDistance(q, stem)
		if alt := levenshtein.ComputeDistance(q, lower); alt < d {
			d = alt
		}
		if d == 0 {
			d = 1
		}
		if d <= MaxDistance {
			out = append(out, Match{Name: n, Index: i, Distance: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Prefix != b.Prefix {
			return a.Prefix
		}
		return a.Index < b.Index
	})
	return out
}
