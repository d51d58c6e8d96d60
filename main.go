package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flare/internal/config"
	"flare/internal/entries"
	"flare/internal/history"
	"flare/internal/launcher"
	"flare/internal/ranking"
	"flare/internal/session"
	"flare/internal/ui"
	"flare/internal/ui/components"
	"flare/internal/watcher"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

// Screen represents the visible surface
type Screen int

const (
	ScreenMain Screen = iota
	ScreenPreview
)

// customEntriesFile is the name of the user-defined entries file
const customEntriesFile = "entries.yaml"

// rescanDebounce is how long entry directory changes settle before a
// rescan fires
const rescanDebounce = 500 * time.Millisecond

type scanDoneMsg struct {
	apps     []entries.Entry
	warnings []string
}

type rescanMsg struct{}

// Model is the main application model
type Model struct {
	cfg   *config.Config
	home  string
	store *history.Store
	sess  *session.Session
	watch *watcher.Watcher

	// UI components
	keys    ui.KeyMap
	styles  ui.Styles
	input   textinput.Model
	spin    spinner.Model
	helpBar help.Model
	list    *components.CandidateList
	preview *components.Preview

	screen   Screen
	scanning bool
	status   string
	width    int
	height   int
}

// New builds the model. startupWarning carries soft config or history
// load problems into the status line.
func New(cfg *config.Config, home string, store *history.Store, startupWarning string) *Model {
	styles := ui.NewStyles(cfg.Theme)

	input := textinput.New()
	input.Prompt = cfg.General.Prompt
	input.PromptStyle = styles.Prompt
	input.Placeholder = "search"
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Marker

	sess := session.New(session.Options{
		DirsFirst:          cfg.Features.DirsFirst,
		RecentFirst:        cfg.Features.RecentFirst,
		EnableFileExplorer: cfg.Features.EnableFileExplorer,
		EnableLaunchArgs:   cfg.Features.EnableLaunchArgs,
		EnableAutoComplete: cfg.Features.EnableAutoComplete,
	}, home, store)

	m := &Model{
		cfg:      cfg,
		home:     home,
		store:    store,
		sess:     sess,
		keys:     ui.DefaultKeyMap(cfg.General.FavoriteKey),
		styles:   styles,
		input:    input,
		spin:     spin,
		helpBar:  help.New(),
		list:     components.NewCandidateList(styles, cfg.General.HighlightSymbol),
		preview:  components.NewPreview(styles),
		scanning: true,
		status:   startupWarning,
	}

	if w, err := watcher.New(m.entryDirs(), rescanDebounce); err == nil {
		m.watch = w
	}
	return m
}

// entryDirs returns every directory entries are read from, including
// the config directory holding entries.yaml.
func (m *Model) entryDirs() []string {
	sources := m.sources()
	dirs := make([]string, 0, len(sources)+1)
	for _, s := range sources {
		dirs = append(dirs, s.Path)
	}
	if dir, err := config.Dir(); err == nil {
		dirs = append(dirs, dir)
	}
	return dirs
}

// sources returns the scan set: standard application directories plus
// any configured extras, in priority order.
func (m *Model) sources() []entries.Source {
	sources := entries.DefaultSources(m.home)
	for _, dir := range m.cfg.ExtraEntryDirs {
		sources = append(sources, entries.Source{Path: dir, Rank: len(sources) + 1})
	}
	return sources
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, textinput.Blink, m.scanEntries}
	if m.watch != nil {
		cmds = append(cmds, m.waitForRescan)
	}
	return tea.Batch(cmds...)
}

// scanEntries runs the full scan: custom definitions first, then the
// desktop directories, then dedup.
func (m *Model) scanEntries() tea.Msg {
	var (
		apps     []entries.Entry
		warnings []string
	)

	if dir, err := config.Dir(); err == nil {
		custom, cwarns := entries.LoadCustom(filepath.Join(dir, customEntriesFile))
		apps = append(apps, custom...)
		warnings = append(warnings, cwarns...)
	}

	res := entries.Scan(m.sources())
	apps = append(apps, res.Entries...)
	warnings = append(warnings, res.Warnings...)

	return scanDoneMsg{
		apps:     entries.Dedupe(apps, m.cfg.Features.ShowDuplicates),
		warnings: warnings,
	}
}

// waitForRescan blocks on the watcher until entry files change
func (m *Model) waitForRescan() tea.Msg {
	<-m.watch.Rescans()
	return rescanMsg{}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 8
		m.list.SetSize(msg.Width-4, msg.Height-7)
		m.preview.SetSize(msg.Width-2, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.scanning = false
		m.sess.SetApps(ranking.FromEntries(msg.apps))
		if len(msg.warnings) > 0 {
			m.status = fmt.Sprintf("%s (%d more)", msg.warnings[0], len(msg.warnings)-1)
			if len(msg.warnings) == 1 {
				m.status = msg.warnings[0]
			}
		}
		return m, nil

	case rescanMsg:
		return m, tea.Batch(m.scanEntries, m.waitForRescan)

	default:
		if m.screen == ScreenPreview {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
		// Cursor blink and other component messages belong to the input
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == ScreenPreview {
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Preview):
			m.screen = ScreenMain
			return m, nil
		default:
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watch != nil {
			m.watch.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.sess.MoveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.sess.MoveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.First):
		m.sess.SelectFirst()
		return m, nil

	case key.Matches(msg, m.keys.Last):
		m.sess.SelectLast()
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if q, changed := m.sess.Complete(); changed {
			m.input.SetValue(q)
			m.input.CursorEnd()
			m.status = m.sess.Warning()
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.handleConfirm()

	case key.Matches(msg, m.keys.Favorite):
		return m.handleFavorite()

	case key.Matches(msg, m.keys.Preview):
		return m.handlePreview()

	case key.Matches(msg, m.keys.Help):
		m.helpBar.ShowAll = !m.helpBar.ShowAll
		return m, nil
	}

	// Everything else edits the query
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sess.SetQuery(m.input.Value())
	m.status = m.sess.Warning()
	return m, cmd
}

// handleConfirm resolves and launches the current selection
func (m *Model) handleConfirm() (tea.Model, tea.Cmd) {
	sel, ok := m.sess.Selected()
	if !ok {
		return m, nil
	}

	if m.sess.Mode() == session.ModeFileExplorer {
		// A file picked as an application's trailing argument launches
		// that application, not the file.
		if app, hasApp := m.sess.ArgApp(); hasApp && sel.Node != nil {
			args := append([]string(nil), m.sess.LaunchArgs()...)
			if len(args) > 0 {
				args[len(args)-1] = sel.Node.Display
			}
			return m.launchEntry(app.Entry, args)
		}

		if sel.Node == nil {
			return m, nil
		}
		action := launcher.ResolveNode(sel.Node)
		if action.Kind == launcher.KindDescend {
			q := sel.Display + "/"
			m.input.SetValue(q)
			m.input.CursorEnd()
			m.sess.SetQuery(q)
			m.status = m.sess.Warning()
			return m, nil
		}
		if err := launcher.Spawn(action); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, tea.Quit
	}

	if sel.Entry == nil {
		return m, nil
	}
	return m.launchEntry(sel.Entry, m.sess.LaunchArgs())
}

// launchEntry spawns an application and records the launch. The usage
// write is best effort; a spawn failure keeps the launcher running.
func (m *Model) launchEntry(e *entries.Entry, args []string) (tea.Model, tea.Cmd) {
	action, err := launcher.ResolveEntry(e, args, m.home)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if err := launcher.Spawn(action); err != nil {
		m.status = fmt.Sprintf("failed to launch %s: %v", e.Name, err)
		return m, nil
	}
	if err := m.store.RecordLaunch(action.UsageKey); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if m.watch != nil {
		m.watch.Close()
	}
	return m, tea.Quit
}

// handleFavorite toggles the favorite mark on the selected application
func (m *Model) handleFavorite() (tea.Model, tea.Cmd) {
	sel, ok := m.sess.Selected()
	if !ok || sel.Entry == nil {
		return m, nil
	}
	if err := m.store.ToggleFavorite(sel.Key); err != nil {
		m.status = err.Error()
	}
	m.sess.Refresh()
	return m, nil
}

// handlePreview opens the preview pane for the selected file
func (m *Model) handlePreview() (tea.Model, tea.Cmd) {
	sel, ok := m.sess.Selected()
	if !ok || sel.Node == nil {
		return m, nil
	}
	if err := m.preview.Load(sel.Node.Path); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.screen = ScreenPreview
	return m, nil
}

func (m *Model) View() string {
	if m.screen == ScreenPreview {
		return m.preview.View()
	}

	var b strings.Builder

	inputWidth := m.width - 4
	if inputWidth < 20 {
		inputWidth = 20
	}
	b.WriteString(m.styles.Input.Width(inputWidth).Render(m.input.View()))
	b.WriteString("\n")

	if m.scanning {
		b.WriteString(m.styles.Muted.Render(m.spin.View() + " scanning applications..."))
		b.WriteString("\n")
	}

	b.WriteString(m.list.View(m.sess.Visible(), m.sess.Selection(), m.store))
	b.WriteString("\n")

	if args := m.sess.LaunchArgs(); len(args) > 0 {
		b.WriteString(m.styles.Args.Render("args: " + strings.Join(args, " ")))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.helpBar.View(m.keys))
	return m.styles.App.Render(b.String())
}

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("flare %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("flare - a terminal application launcher")
			fmt.Println()
			fmt.Println("Usage: flare [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println()
			fmt.Println("Run without arguments to start the launcher.")
			return
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot resolve home directory: %v\n", err)
		os.Exit(1)
	}

	res := config.Load()
	warning := res.Warning

	dir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, hwarn := history.Load(dir)
	if warning == "" {
		warning = hwarn
	}

	m := New(res.Config, home, store, warning)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
