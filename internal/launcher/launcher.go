// Package launcher decides what a confirmed selection means and starts
// the resulting external process detached from the launcher's session.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"flare/internal/browser"
	"flare/internal/entries"
)

// Kind classifies the resolved action
type Kind int

const (
	// KindExecute runs a command directly
	KindExecute Kind = iota
	// KindOpen hands a file to the desktop's default handler
	KindOpen
	// KindDescend re-lists a directory instead of launching anything
	KindDescend
)

// Action is the single decision produced for a confirmed selection
type Action struct {
	Kind Kind
	Cmd  string
	Args []string
	Path string // Target for KindOpen and KindDescend

	// UsageKey is the identity to increment on a successful launch.
	// Empty when no usage recording applies, as for KindDescend and
	// plain filesystem targets.
	UsageKey string
}

// ResolveEntry builds the execute action for an application entry.
// Field-code placeholders %f, %F, %u and %U in the command are
// replaced by the tilde-expanded launch arguments; with no arguments
// the placeholders are dropped, and with no placeholders the arguments
// are appended. Other %-codes are dropped either way.
func ResolveEntry(e *entries.Entry, launchArgs []string, home string) (Action, error) {
	cmd, args, ok := e.Command()
	if !ok {
		return Action{}, fmt.Errorf("%s: empty command", e.Name)
	}

	expanded := make([]string, len(launchArgs))
	for i, a := range launchArgs {
		expanded[i] = browser.ExpandTilde(a, home)
	}

	final := make([]string, 0, len(args)+len(expanded))
	replaced := false
	for _, a := range args {
		switch a {
		case "%f", "%F", "%u", "%U":
			final = append(final, expanded...)
			replaced = true
		case "%%":
			final = append(final, "%")
		default:
			if len(a) == 2 && a[0] == '%' {
				continue
			}
			final = append(final, a)
		}
	}
	if !replaced {
		final = append(final, expanded...)
	}

	if e.Terminal {
		term := os.Getenv("TERMINAL")
		if term == "" {
			term = "x-terminal-emulator"
		}
		final = append([]string{"-e", cmd}, final...)
		cmd = term
	}

	return Action{
		Kind:     KindExecute,
		Cmd:      cmd,
		Args:     final,
		UsageKey: e.Key(),
	}, nil
}

// ResolveNode builds the action for a filesystem node: descend into
// directories, execute executable files, open everything else with the
// default handler.
func ResolveNode(n *browser.Node) Action {
	switch {
	case n.IsDir:
		return Action{Kind: KindDescend, Path: n.Path}
	case n.Executable:
		return Action{Kind: KindExecute, Cmd: n.Path}
	default:
		return Action{Kind: KindOpen, Path: n.Path}
	}
}

// Spawn starts the action's process in its own session with stdio
// detached, so the child survives the launcher exiting and never
// scribbles on the terminal. KindDescend is not spawnable. A failure
// to start is returned for reporting; the launcher keeps running.
func Spawn(a Action) error {
	var cmd *exec.Cmd
	switch a.Kind {
	case KindExecute:
		cmd = exec.Command(a.Cmd, a.Args...)
	case KindOpen:
		cmd = exec.Command("xdg-open", a.Path)
	default:
		return fmt.Errorf("action is not spawnable")
	}

	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", cmd.Path, err)
	}
	// Let init reap it; we are not waiting around.
	return cmd.Process.Release()
}
