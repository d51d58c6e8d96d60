package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"flare/internal/ui"
)

// previewSizeLimit is the largest file the preview will read
const previewSizeLimit = 1 << 20

// Preview shows a scrollable, syntax-highlighted view of the file
// under the selection.
type Preview struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter
	styles      ui.Styles

	Path  string
	Lines int
	Size  int64

	width  int
	height int
}

// NewPreview creates a preview pane
func NewPreview(styles ui.Styles) *Preview {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	return &Preview{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		styles:      styles,
		width:       80,
		height:      20,
	}
}

// SetSize updates the pane dimensions
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height

	contentHeight := height - 4
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	p.viewport.Width = contentWidth
	p.viewport.Height = contentHeight
}

// Load reads and highlights a file. Binary and oversized files get a
// placeholder instead of garbage.
func (p *Preview) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	p.Path = path
	p.Size = info.Size()

	if info.IsDir() {
		p.setMessage("directory, confirm to descend")
		return nil
	}
	if info.Size() > previewSizeLimit {
		p.setMessage(fmt.Sprintf("too large to preview (%s)", formatBytes(info.Size())))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isBinary(data) {
		p.setMessage("binary file")
		return nil
	}

	lines := strings.Split(string(data), "\n")
	p.Lines = len(lines)

	var b strings.Builder
	for i, line := range lines {
		num := p.styles.Count.Render(fmt.Sprintf("%4d", i+1))
		b.WriteString(num + " │ " + p.highlighter.HighlightLine(line, path))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	p.viewport.SetContent(b.String())
	p.viewport.GotoTop()
	return nil
}

func (p *Preview) setMessage(msg string) {
	p.Lines = 0
	p.viewport.SetContent("\n  " + p.styles.Muted.Render(msg))
	p.viewport.GotoTop()
}

// Update forwards scrolling messages to the viewport
func (p *Preview) Update(msg tea.Msg) (*Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the pane
func (p *Preview) View() string {
	var b strings.Builder

	header := p.styles.Title.Render(filepath.Base(p.Path))
	meta := p.styles.Muted.Render(fmt.Sprintf("  %s  %d lines", formatBytes(p.Size), p.Lines))
	b.WriteString(header + meta + "\n")
	b.WriteString(p.styles.Muted.Render(p.Path) + "\n")
	b.WriteString(p.viewport.View())

	if p.Lines > p.viewport.Height {
		b.WriteString("\n" + p.styles.Muted.Render(
			fmt.Sprintf("─── %.0f%% ───", p.viewport.ScrollPercent()*100)))
	}

	return p.styles.Panel.Width(p.width).Render(b.String())
}

// isBinary reports whether content looks like a binary file: a null
// byte, or a high share of non-printable bytes in the head.
func isBinary(data []byte) bool {
	head := len(data)
	if head > 512 {
		head = 512
	}
	nonPrintable := 0
	for i := 0; i < head; i++ {
		if data[i] == 0 {
			return true
		}
		if data[i] < 32 && data[i] != '\n' && data[i] != '\r' && data[i] != '\t' {
			nonPrintable++
		}
	}
	return head > 0 && float64(nonPrintable)/float64(head) > 0.3
}

// formatBytes formats a byte count for humans
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
