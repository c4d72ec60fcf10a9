package directory

import "strings"

// Search filters entries by substring match on names and aliases. Matching is
// case-insensitive and treats hyphens as spaces. An empty query returns all
// entries. Order is preserved.
func Search(query string, entries []Entry) []Entry {
	if query == "" {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}

	needle := normalize(query)
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if matches(needle, entry) {
			out = append(out, entry)
		}
	}
	return out
}

// FindByName returns the entry whose English name equals name exactly.
func FindByName(name string, entries []Entry) (Entry, bool) {
	for _, entry := range entries {
		if entry.Names.EN == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// FindBySlug returns the entry with the given slug.
func FindBySlug(value string, entries []Entry) (Entry, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return Entry{}, false
	}
	for _, entry := range entries {
		if entry.Slug() == value {
			return entry, true
		}
	}
	return Entry{}, false
}

func matches(needle string, entry Entry) bool {
	if contains(entry.Names.EN, needle) ||
		contains(entry.Names.RU, needle) ||
		contains(entry.Names.KA, needle) {
		return true
	}
	for _, alias := range entry.Aliases {
		if contains(alias, needle) {
			return true
		}
	}
	return false
}

func contains(value, needle string) bool {
	return strings.Contains(normalize(value), needle)
}

func normalize(value string) string {
	return strings.ReplaceAll(strings.ToLower(value), "-", " ")
}
