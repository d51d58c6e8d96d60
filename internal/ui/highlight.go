package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter provides syntax highlighting for previewed files
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a new syntax highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// HighlightLine highlights a single line based on the file's name
func (h *Highlighter) HighlightLine(line, filename string) string {
	lexer := lexerForFile(filename)
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var b strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		if !entry.Colour.IsSet() {
			b.WriteString(token.Value)
			continue
		}
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			st = st.Italic(true)
		}
		b.WriteString(st.Render(token.Value))
	}
	return b.String()
}

// extLexers covers extensions chroma does not map from the filename
// alone, plus the config formats a launcher most often previews.
var extLexers = map[string]string{
	".toml":    "toml",
	".yaml":    "yaml",
	".yml":     "yaml",
	".json":    "json",
	".sh":      "bash",
	".bash":    "bash",
	".zsh":     "bash",
	".conf":    "ini",
	".ini":     "ini",
	".md":      "markdown",
	".desktop": "ini",
}

func lexerForFile(filename string) chroma.Lexer {
	if lexer := lexers.Match(filename); lexer != nil {
		return lexer
	}
	if name, ok := extLexers[strings.ToLower(filepath.Ext(filename))]; ok {
		return lexers.Get(name)
	}
	return nil
}
