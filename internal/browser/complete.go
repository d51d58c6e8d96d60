package browser

import "strings"

// Complete extends a path fragment against the nodes of its directory,
// shell style. With exactly one node matching the final segment the
// fragment becomes that node's full name, plus a trailing separator for
// directories. With several matches the fragment grows to their longest
// common prefix. Reports whether the fragment changed.
func Complete(fragment string, nodes []Node) (string, bool) {
	dir, prefix := Split(fragment)

	var matches []Node
	for _, n := range nodes {
		if strings.HasPrefix(n.Name, prefix) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return fragment, false
	case 1:
		completed := dir + matches[0].Name
		if matches[0].IsDir {
			completed += "/"
		}
		return completed, completed != fragment
	}

	common := matches[0].Name
	for _, n := range matches[1:] {
		common = commonPrefix(common, n.Name)
	}
	if len(common) <= len(prefix) {
		return fragment, false
	}
	return dir + common, true
}

func commonPrefix(a, b string) string {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	i := 0
	for i < max && a[i] == b[i] {
		i++
	}
	return a[:i]
}
