package entries

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source is one directory to scan, with its priority rank
type Source struct {
	Path string
	Rank int
}

// ScanResult is the outcome of a full scan. Warnings are soft per-file
// errors; they never abort the scan.
type ScanResult struct {
	Entries  []Entry
	Warnings []string
}

// DefaultSources returns the standard application directories, highest
// priority first: $XDG_DATA_HOME/applications, then each $XDG_DATA_DIRS
// element. Rank 0 is reserved for custom entries.
func DefaultSources(home string) []Source {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	sources := []Source{{Path: filepath.Join(dataHome, "applications"), Rank: 1}}
	rank := 2
	for _, dir := range strings.Split(dataDirs, ":") {
		if dir == "" {
			continue
		}
		sources = append(sources, Source{Path: filepath.Join(dir, "applications"), Rank: rank})
		rank++
	}
	return sources
}

// Scan walks the sources in order and parses every .desktop file it can
// read. Missing or unreadable directories are skipped silently; files
// that fail to parse are skipped with a warning. Output order is the
// source order, directory-listing order within each source. Sorting is
// the ranking engine's job.
func Scan(sources []Source) ScanResult {
	var res ScanResult

	for _, src := range sources {
		dirents, err := os.ReadDir(src.Path)
		if err != nil {
			continue
		}

		for _, de := range dirents {
			if de.IsDir() || !strings.HasSuffix(de.Name(), ".desktop") {
				continue
			}

			path := filepath.Join(src.Path, de.Name())
			entry, err := parseDesktopFile(path)
			if err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", path, err))
				continue
			}
			if entry == nil {
				// Hidden or NoDisplay, intentionally not listed
				continue
			}

			entry.Source = src.Path
			entry.Rank = src.Rank
			res.Entries = append(res.Entries, *entry)
		}
	}

	return res
}

// errSkipped marks entry fields that degrade the file to skipped
var (
	errMissingName = fmt.Errorf("missing Name field")
	errMissingExec = fmt.Errorf("missing Exec field")
)

// parseDesktopFile reads the [Desktop Entry] group of a desktop file.
// Returns (nil, nil) for entries that parse fine but should not be
// shown (Hidden, NoDisplay, or a non-application type).
func parseDesktopFile(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var (
		inMain    bool
		sawMain   bool
		name      string
		execLine  string
		entryType string
		terminal  bool
		hidden    bool
	)

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			inMain = line == "[Desktop Entry]"
			if inMain {
				sawMain = true
			}
			continue
		}
		if !inMain {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			if name == "" {
				name = value
			}
		case "Exec":
			execLine = value
		case "Type":
			entryType = value
		case "Terminal":
			terminal = value == "true"
		case "NoDisplay", "Hidden":
			if value == "true" {
				hidden = true
			}
		}
	}

	if !sawMain {
		return nil, fmt.Errorf("no [Desktop Entry] group")
	}
	if hidden || (entryType != "" && entryType != "Application") {
		return nil, nil
	}
	if name == "" {
		return nil, errMissingName
	}
	if execLine == "" {
		return nil, errMissingExec
	}

	execArgs, err := splitExec(execLine)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Name:     name,
		Exec:     execArgs,
		Terminal: terminal,
		Path:     path,
	}, nil
}

// splitExec tokenizes an Exec line per the desktop entry spec: fields
// split on unquoted spaces, double quotes group a field, backslash
// escapes inside quotes. %-codes stay as their own tokens for the
// launch resolver to expand.
func splitExec(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		escaped bool
		haveTok bool
	)

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && inQuote:
			escaped = true
		case r == '"':
			inQuote = !inQuote
			haveTok = true
		case r == ' ' && !inQuote:
			if haveTok || cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
				haveTok = false
			}
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in Exec line")
	}
	if haveTok || cur.Len() > 0 {
		args = append(args, cur.String())
	}
	if len(args) == 0 {
		return nil, errMissingExec
	}
	return args, nil
}
