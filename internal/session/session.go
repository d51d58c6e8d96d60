// Package session owns the interaction state: the current mode, query
// text, selection, and the materialized visible list. Every query edit
// re-derives mode, launch arguments, and the visible list from scratch,
// so the state is always a pure function of the query, the candidate
// set, and the usage store.
package session

import (
	"strings"

	"flare/internal/browser"
	"flare/internal/ranking"
)

// Mode selects the active candidate source
type Mode int

const (
	ModeAppSearch Mode = iota
	ModeFileExplorer
)

// Options are the behavior flags that shape matching and navigation
type Options struct {
	DirsFirst          bool
	RecentFirst        bool
	EnableFileExplorer bool
	EnableLaunchArgs   bool
	EnableAutoComplete bool
}

// Session is the interaction state machine. Not safe for concurrent
// use; the event loop owns it exclusively.
type Session struct {
	opts  Options
	home  string
	usage ranking.Usage

	apps []ranking.Candidate

	query      string
	mode       Mode
	selection  int
	visible    []ranking.Candidate
	launchArgs []string
	argApp     *ranking.Candidate
	warning    string

	// Directory listing cache, invalidated only when the directory
	// component of the query changes
	listedDir string
	nodes     []browser.Node
	listErr   error
}

// New creates an empty session. usage may be nil, which disables the
// favorite and recent-first discriminators.
func New(opts Options, home string, usage ranking.Usage) *Session {
	return &Session{opts: opts, home: home, usage: usage}
}

// SetApps replaces the application candidate set and re-derives the
// visible list. Called for each batch of a streaming scan.
func (s *Session) SetApps(apps []ranking.Candidate) {
	s.apps = apps
	s.refresh()
}

// SetQuery updates the query text and re-derives mode, launch
// arguments, and the visible list.
func (s *Session) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.refresh()
}

// Refresh re-derives the visible list from current state. Needed after
// out-of-band changes to the usage store, like a favorite toggle.
func (s *Session) Refresh() { s.refresh() }

// Query returns the raw query text
func (s *Session) Query() string { return s.query }

// Mode returns the active candidate source
func (s *Session) Mode() Mode { return s.mode }

// Visible returns the current ranked visible list
func (s *Session) Visible() []ranking.Candidate { return s.visible }

// Selection returns the current selection index
func (s *Session) Selection() int { return s.selection }

// Selected returns the currently selected candidate, if any
func (s *Session) Selected() (ranking.Candidate, bool) {
	if len(s.visible) == 0 {
		return ranking.Candidate{}, false
	}
	return s.visible[s.selection], true
}

// LaunchArgs returns the trailing argument tokens carried by the
// current query, nil when there are none.
func (s *Session) LaunchArgs() []string { return s.launchArgs }

// ArgApp returns the application the query's leading words matched
// when the trailing argument switched the list to file candidates.
// Confirming a file in that state launches this application with the
// file substituted for the final argument.
func (s *Session) ArgApp() (ranking.Candidate, bool) {
	if s.argApp == nil {
		return ranking.Candidate{}, false
	}
	return *s.argApp, true
}

// Warning returns the soft condition raised by the last refresh, such
// as an unreadable directory. Empty when the last refresh was clean.
func (s *Session) Warning() string { return s.warning }

// MoveSelection moves the selection by delta, clamped to the visible
// list bounds. No wraparound.
func (s *Session) MoveSelection(delta int) {
	if len(s.visible) == 0 {
		return
	}
	s.selection += delta
	if s.selection < 0 {
		s.selection = 0
	}
	if s.selection >= len(s.visible) {
		s.selection = len(s.visible) - 1
	}
}

// SelectFirst jumps the selection to the top of the list
func (s *Session) SelectFirst() {
	s.selection = 0
}

// SelectLast jumps the selection to the bottom of the list
func (s *Session) SelectLast() {
	if len(s.visible) > 0 {
		s.selection = len(s.visible) - 1
	}
}

// Complete extends the trailing path fragment of the query shell-style
// against the current directory listing. Only acts in file explorer
// mode with completion enabled. Returns the new query text and whether
// anything changed; on change the session state is already updated.
func (s *Session) Complete() (string, bool) {
	if !s.opts.EnableAutoComplete || s.mode != ModeFileExplorer {
		return s.query, false
	}

	head, fragment := "", s.query
	if i := strings.LastIndex(s.query, " "); i >= 0 {
		head, fragment = s.query[:i+1], s.query[i+1:]
	}

	_, prefix := browser.Split(fragment)
	completed, changed := browser.Complete(fragment, browser.Visible(s.nodes, prefix))
	if !changed {
		return s.query, false
	}
	s.query = head + completed
	s.refresh()
	return s.query, true
}

// isPath reports whether a token routes to the filesystem browser
func isPath(tok string) bool {
	return strings.HasPrefix(tok, "/") || strings.HasPrefix(tok, "~/") || tok == "~"
}

// refresh re-derives mode, launch arguments, and the visible list from
// the query. Selection is kept only when neither the mode nor the
// visible list's contents changed; otherwise it resets to 0.
func (s *Session) refresh() {
	prevMode := s.mode
	prevVisible := s.visible
	prevSelection := s.selection

	s.mode = ModeAppSearch
	s.launchArgs = nil
	s.argApp = nil
	s.warning = ""

	trimmed := strings.TrimSpace(s.query)
	switch {
	case s.opts.EnableFileExplorer && isPath(trimmed):
		s.mode = ModeFileExplorer
		s.visible = s.fileCandidates(trimmed)
	case trimmed == "":
		s.visible = s.rankApps("")
	default:
		matched := s.rankApps(trimmed)
		if len(matched) > 0 {
			s.visible = matched
		} else {
			s.visible = s.subQueryFallback(trimmed)
		}
	}

	if s.mode == prevMode && sameList(prevVisible, s.visible) {
		s.selection = prevSelection
	} else {
		s.selection = 0
	}
	if s.selection >= len(s.visible) {
		s.selection = 0
	}
}

// subQueryFallback handles the argument sub-parse: when the full query
// matches nothing, retry with the longest word prefix that does match
// and carry the remaining words as launch arguments. A path-shaped
// final argument additionally switches the visible list to that
// directory's contents so the argument can be picked interactively.
func (s *Session) subQueryFallback(trimmed string) []ranking.Candidate {
	words := strings.Fields(trimmed)
	for i := len(words) - 1; i >= 1; i-- {
		matched := s.rankApps(strings.Join(words[:i], " "))
		if len(matched) == 0 {
			continue
		}
		if s.opts.EnableLaunchArgs {
			s.launchArgs = append([]string(nil), words[i:]...)
			last := words[len(words)-1]
			if s.opts.EnableFileExplorer && !strings.HasPrefix(last, "-") && isPath(last) {
				if files := s.fileCandidates(last); len(files) > 0 {
					s.mode = ModeFileExplorer
					s.argApp = &matched[0]
					return files
				}
			}
		}
		return matched
	}
	return nil
}

// rankApps ranks the application set against a query
func (s *Session) rankApps(query string) []ranking.Candidate {
	return ranking.Rank(s.apps, query, s.usage, ranking.Options{
		RecentFirst: s.opts.RecentFirst,
	})
}

// fileCandidates lists and ranks the directory named by the fragment's
// directory component, matching node names against the final segment.
// The listing is re-read only when the directory component changes.
func (s *Session) fileCandidates(fragment string) []ranking.Candidate {
	dir, prefix := browser.Split(fragment)
	if dir != s.listedDir {
		s.nodes, s.listErr = browser.List(dir, s.home)
		s.listedDir = dir
	}
	if s.listErr != nil {
		s.warning = s.listErr.Error()
		return nil
	}

	cands := ranking.FromNodes(browser.Visible(s.nodes, prefix))
	return ranking.Rank(cands, prefix, nil, ranking.Options{
		DirsFirst: s.opts.DirsFirst,
	})
}

// sameList reports whether two visible lists hold the same candidates
// in the same order, by identity key.
func sameList(a, b []ranking.Candidate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
	}
	return true
}
