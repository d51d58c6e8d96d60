package ui

import (
	"github.com/charmbracelet/lipgloss"

	"flare/internal/config"
)

// Styles holds every lipgloss style the views use, built once from the
// configured theme.
type Styles struct {
	App      lipgloss.Style
	Prompt   lipgloss.Style
	Input    lipgloss.Style
	Panel    lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Marker   lipgloss.Style
	Dir      lipgloss.Style
	Exec     lipgloss.Style
	Favorite lipgloss.Style
	Args     lipgloss.Style
	Count    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles builds the style set from a theme. Unset theme colors fall
// back to the defaults, so a partial [theme] table still renders.
func NewStyles(t config.Theme) Styles {
	def := config.Default().Theme
	primary := lipgloss.Color(orDefault(t.Primary, def.Primary))
	border := lipgloss.Color(orDefault(t.Border, def.Border))
	selected := lipgloss.Color(orDefault(t.Selected, def.Selected))
	muted := lipgloss.Color(orDefault(t.Muted, def.Muted))
	errc := lipgloss.Color(orDefault(t.Error, def.Error))

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(selected),

		Marker: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Dir: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Exec: lipgloss.NewStyle().
			Foreground(selected),

		Favorite: lipgloss.NewStyle().
			Foreground(primary),

		Args: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Count: lipgloss.NewStyle().
			Foreground(muted),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Error: lipgloss.NewStyle().
			Foreground(errc).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),
	}
}

// RenderHelpItem renders a help key-description pair
func (s Styles) RenderHelpItem(key, desc string) string {
	return s.HelpKey.Render(key) + " " + s.HelpDesc.Render(desc)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
