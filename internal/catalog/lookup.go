package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Match is the result of a title lookup. Demo is nil when the project
// title itself matched.
type Match struct {
	Project Project
	Demo    *Demo
}

// Title returns the matched title.
func (m Match) Title() string {
	if m.Demo != nil {
		return m.Demo.Title
	}
	return m.Project.Title
}

// Closest finds the project or demo whose title best matches query.
// Substring matches win over edit distance; ties keep catalog order.
// Matches further than half the longer string's length are rejected.
func (c *Catalog) Closest(query string) (Match, bool) {
	q := normalize(query)
	if q == "" {
		return Match{}, false
	}

	var (
		best      Match
		bestScore = -1
		found     bool
	)
	consider := func(p Project, d *Demo, title string) {
		t := normalize(title)
		var score int
		if strings.Contains(t, q) {
			// substring: rank below any edit distance, shorter titles first
			score = utf8.RuneCountInString(t) - utf8.RuneCountInString(q)
		} else {
			dist := levenshtein.ComputeDistance(q, t)
			limit := max(utf8.RuneCountInString(q), utf8.RuneCountInString(t)) / 2
			if dist > limit {
				return
			}
			score = 1000 + dist
		}
		if !found || score < bestScore {
			best = Match{Project: p, Demo: d}
			bestScore = score
			found = true
		}
	}

	for _, p := range c.Projects() {
		consider(p, nil, p.Title)
		for i := range p.Demos {
			d := p.Demos[i]
			consider(p, &d, d.Title)
		}
	}
	return best, found
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
