// Package entries discovers launchable applications from desktop entry
// files and user-defined definitions.
package entries

import (
	"strings"
)

// Entry represents a parsed launchable application.
// Immutable once parsed; a rescan replaces the whole list.
type Entry struct {
	Name     string   // Display name
	Exec     []string // Command plus arguments, %-codes preserved
	Terminal bool     // Runs in a terminal
	Path     string   // Entry file this was parsed from ("" for custom entries)
	Source   string   // Directory the entry came from
	Rank     int      // Source priority, lower is higher
}

// Key returns the stable identity key used for deduplication and usage
// lookups: the case-folded name combined with the exec command, so two
// programs sharing a localized name stay distinct.
func (e Entry) Key() string {
	return strings.ToLower(e.Name) + "\x00" + strings.Join(e.Exec, " ")
}

// Command returns the executable and its arguments split apart.
// ok is false for an entry with an empty exec line.
func (e Entry) Command() (cmd string, args []string, ok bool) {
	if len(e.Exec) == 0 {
		return "", nil, false
	}
	return e.Exec[0], e.Exec[1:], true
}
