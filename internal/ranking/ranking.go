// Package ranking orders the visible candidate list on every keystroke.
package ranking

import (
	"sort"
	"strings"

	"flare/internal/browser"
	"flare/internal/entries"
	"flare/internal/fuzzy"
)

// Candidate is the common view the ranking engine and the session
// operate on: display text plus identity, tagged with exactly one of
// the two payload kinds.
type Candidate struct {
	Display string
	Match   string // Text the query is scored against; Display when empty
	Key     string // Identity key for apps, full path for files
	IsDir   bool

	Entry *entries.Entry // Set for applications
	Node  *browser.Node  // Set for filesystem nodes
}

// matchText returns the string the fuzzy matcher scores
func (c Candidate) matchText() string {
	if c.Match != "" {
		return c.Match
	}
	return c.Display
}

// Usage is the read side of the usage store the ranking engine needs
type Usage interface {
	Count(key string) uint64
	IsFavorite(key string) bool
}

// Options are the behavior flags that affect ordering
type Options struct {
	RecentFirst bool
	DirsFirst   bool
}

// Rank filters candidates by the query and sorts the survivors. Sort
// key, most significant first: directories before files (when enabled),
// favorites, usage count descending (when enabled), fuzzy score
// descending, display name ascending case-insensitively. Candidates the
// query does not match are excluded. The empty query matches everything
// with score zero, which yields the default most-used-first view.
// Each call re-sorts from scratch, so it is safe against a candidate
// set that is still growing during the initial scan.
func Rank(cands []Candidate, query string, usage Usage, opts Options) []Candidate {
	type scored struct {
		c     Candidate
		score int
	}

	matched := make([]scored, 0, len(cands))
	for _, c := range cands {
		score, ok := fuzzy.Match(c.matchText(), query)
		if !ok {
			continue
		}
		matched = append(matched, scored{c: c, score: score})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]

		if opts.DirsFirst && a.c.IsDir != b.c.IsDir {
			return a.c.IsDir
		}
		if usage != nil {
			af, bf := usage.IsFavorite(a.c.Key), usage.IsFavorite(b.c.Key)
			if af != bf {
				return af
			}
			if opts.RecentFirst {
				ac, bc := usage.Count(a.c.Key), usage.Count(b.c.Key)
				if ac != bc {
					return ac > bc
				}
			}
		}
		if a.score != b.score {
			return a.score > b.score
		}
		an, bn := strings.ToLower(a.c.Display), strings.ToLower(b.c.Display)
		if an != bn {
			return an < bn
		}
		return a.c.Display < b.c.Display
	})

	out := make([]Candidate, len(matched))
	for i, s := range matched {
		out[i] = s.c
	}
	return out
}

// FromEntries adapts scanned applications to candidates
func FromEntries(list []entries.Entry) []Candidate {
	out := make([]Candidate, len(list))
	for i := range list {
		out[i] = Candidate{
			Display: list[i].Name,
			Key:     list[i].Key(),
			Entry:   &list[i],
		}
	}
	return out
}

// FromNodes adapts filesystem nodes to candidates. Display text is the
// node's presentation path so the list shows what completion inserts.
func FromNodes(nodes []browser.Node) []Candidate {
	out := make([]Candidate, len(nodes))
	for i := range nodes {
		out[i] = Candidate{
			Display: nodes[i].Display,
			Match:   nodes[i].Name,
			Key:     nodes[i].Path,
			IsDir:   nodes[i].IsDir,
			Node:    &nodes[i],
		}
	}
	return out
}
