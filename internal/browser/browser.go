// Package browser lists directory contents for the file explorer mode
// and computes shell-style path completions.
package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Conditions the state machine surfaces inline instead of crashing
var (
	ErrNotFound   = errors.New("no such directory")
	ErrPermission = errors.New("permission denied")
)

// Node is one directory member. Ephemeral: recomputed on every listing,
// never persisted.
type Node struct {
	Path       string // Absolute filesystem path
	Name       string // Base name
	Display    string // Presentation path, tilde-contracted like the query
	IsDir      bool
	Executable bool
}

// Split breaks a path fragment into its directory component (always
// ending in a separator) and the final, possibly partial, segment.
func Split(fragment string) (dir, prefix string) {
	if fragment == "~" || fragment == "~/" {
		return "~/", ""
	}
	if strings.HasSuffix(fragment, "/") {
		return fragment, ""
	}
	i := strings.LastIndex(fragment, "/")
	if i < 0 {
		return "", fragment
	}
	return fragment[:i+1], fragment[i+1:]
}

// ExpandTilde resolves a leading ~ or ~/ against home
func ExpandTilde(path, home string) string {
	if path == "~" {
		return home
	}
	if after, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, after)
	}
	return path
}

// List returns every member of the directory named by displayDir (a
// query-form path ending in a separator). Hidden entries are included;
// the caller filters them against the current fragment. Every call is
// a fresh read of the directory.
func List(displayDir, home string) ([]Node, error) {
	real := ExpandTilde(displayDir, home)
	if real == "" {
		real = "/"
	}

	dirents, err := os.ReadDir(real)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", displayDir, ErrNotFound)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%s: %w", displayDir, ErrPermission)
		}
		return nil, fmt.Errorf("list %s: %w", displayDir, err)
	}

	nodes := make([]Node, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		node := Node{
			Path:    filepath.Join(real, name),
			Name:    name,
			Display: joinDisplay(displayDir, name),
			IsDir:   de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			node.Executable = !node.IsDir && info.Mode()&0111 != 0
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Visible filters hidden entries out unless the fragment itself starts
// with a dot.
func Visible(nodes []Node, prefix string) []Node {
	if strings.HasPrefix(prefix, ".") {
		return nodes
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if strings.HasPrefix(n.Name, ".") {
			continue
		}
		out = append(out, n)
	}
	return out
}

// joinDisplay appends a name to a display directory path
func joinDisplay(displayDir, name string) string {
	if strings.HasSuffix(displayDir, "/") {
		return displayDir + name
	}
	return displayDir + "/" + name
}
