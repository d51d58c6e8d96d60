package entries

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML structure for a user-defined entry
type Definition struct {
	Name     string `yaml:"name"`
	Exec     string `yaml:"exec"`
	Terminal bool   `yaml:"terminal"`
}

// definitionsFile is the root YAML structure of entries.yaml
type definitionsFile struct {
	Entries []Definition `yaml:"entries"`
}

// LoadCustom reads user-defined entries from the given YAML file.
// Custom entries carry rank 0 so they outrank every scanned directory.
// A missing file is not an error; definitions with no name or exec are
// skipped with a warning, like any malformed desktop file.
func LoadCustom(path string) ([]Entry, []string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []string{fmt.Sprintf("%s: %v", path, err)}
	}

	var defs definitionsFile
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, []string{fmt.Sprintf("%s: %v", path, err)}
	}

	var (
		out      []Entry
		warnings []string
	)
	for i, def := range defs.Entries {
		if strings.TrimSpace(def.Name) == "" || strings.TrimSpace(def.Exec) == "" {
			warnings = append(warnings, fmt.Sprintf("%s: entry %d missing name or exec", path, i))
			continue
		}
		execArgs, err := splitExec(def.Exec)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: entry %q: %v", path, def.Name, err))
			continue
		}
		out = append(out, Entry{
			Name:     def.Name,
			Exec:     execArgs,
			Terminal: def.Terminal,
			Source:   path,
			Rank:     0,
		})
	}
	return out, warnings
}
