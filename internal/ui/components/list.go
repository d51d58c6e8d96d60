package components

import (
	"fmt"
	"strings"

	"flare/internal/ranking"
	"flare/internal/ui"
)

// Usage is the read side the list needs to decorate rows
type Usage interface {
	Count(key string) uint64
	IsFavorite(key string) bool
}

// CandidateList renders the ranked visible list. Selection and
// contents live in the session; the list only draws a window around
// the selection.
type CandidateList struct {
	Styles ui.Styles
	Marker string // Prefix for the selected row
	Width  int
	Height int
}

// NewCandidateList creates a list with the given styles and selection
// marker.
func NewCandidateList(styles ui.Styles, marker string) *CandidateList {
	if marker == "" {
		marker = ">> "
	}
	return &CandidateList{
		Styles: styles,
		Marker: marker,
		Width:  60,
		Height: 15,
	}
}

// SetSize updates the drawing area
func (l *CandidateList) SetSize(width, height int) {
	l.Width = width
	l.Height = height
}

// PageSize returns how many rows one page scroll should move
func (l *CandidateList) PageSize() int {
	size := l.Height - 2
	if size < 1 {
		return 10
	}
	return size
}

// View renders the window of candidates around the selection. usage
// may be nil, which drops the favorite and count decorations.
func (l *CandidateList) View(cands []ranking.Candidate, selection int, usage Usage) string {
	var b strings.Builder

	if len(cands) == 0 {
		b.WriteString(l.Styles.Muted.Render("  no matches"))
		return b.String()
	}

	visible := l.Height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if selection >= visible {
		start = selection - visible + 1
	}
	end := start + visible
	if end > len(cands) {
		end = len(cands)
	}

	for i := start; i < end; i++ {
		b.WriteString(l.renderRow(cands[i], i == selection, usage))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(cands) > visible {
		position := fmt.Sprintf(" %d/%d ", selection+1, len(cands))
		b.WriteString("\n")
		b.WriteString(l.Styles.Count.Render(position))
	}

	return b.String()
}

// renderRow renders one candidate line
func (l *CandidateList) renderRow(c ranking.Candidate, selected bool, usage Usage) string {
	name := c.Display
	maxName := l.Width - len(l.Marker) - 12
	if maxName < 10 {
		maxName = 10
	}
	if runes := []rune(name); len(runes) > maxName {
		name = string(runes[:maxName-3]) + "..."
	}

	var nameStyle = l.Styles.Item
	switch {
	case c.IsDir:
		nameStyle = l.Styles.Dir
		name += "/"
	case c.Node != nil && c.Node.Executable:
		nameStyle = l.Styles.Exec
	}

	var decor string
	if usage != nil && c.Entry != nil {
		if usage.IsFavorite(c.Key) {
			decor += " " + l.Styles.Favorite.Render("*")
		}
		if n := usage.Count(c.Key); n > 0 {
			decor += " " + l.Styles.Count.Render(fmt.Sprintf("(%d)", n))
		}
	}

	if selected {
		return l.Styles.Marker.Render(l.Marker) + l.Styles.Selected.Render(name) + decor
	}
	return strings.Repeat(" ", len(l.Marker)) + nameStyle.Render(name) + decor
}
