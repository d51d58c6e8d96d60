package entries

// Dedupe collapses entries that share an identity key. With
// showDuplicates disabled, the occurrence with the lowest rank wins;
// equal ranks keep the first seen (stable). With showDuplicates
// enabled the input passes through unchanged, every occurrence already
// tagged with its source.
func Dedupe(list []Entry, showDuplicates bool) []Entry {
	if showDuplicates {
		out := make([]Entry, len(list))
		copy(out, list)
		return out
	}

	index := make(map[string]int, len(list))
	var out []Entry
	for _, e := range list {
		key := e.Key()
		if at, seen := index[key]; seen {
			if e.Rank < out[at].Rank {
				out[at] = e
			}
			continue
		}
		index[key] = len(out)
		out = append(out, e)
	}
	return out
}
