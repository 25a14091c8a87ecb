package catalog

import (
	"regexp"
	"slices"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeTitle is the key used to recognize the same game listed under
// several hardware catalogs.
func NormalizeTitle(title string) string {
	title = strings.ToLower(title)
	return whitespaceRegex.ReplaceAllString(title, "")
}

func firstPresent[T any](current, candidate *T) *T {
	if current != nil {
		return current
	}
	return candidate
}

// Merge collapses records with the same normalized title into the first
// one seen. Each field keeps the first present value and hardware is the
// union of all records in first seen order.
func Merge(records []GameRecord) []GameRecord {
	var merged []GameRecord
	index := map[string]int{}

	for _, r := range records {
		key := NormalizeTitle(r.Title)
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			r.Hardware = slices.Clone(r.Hardware)
			merged = append(merged, r)
			continue
		}

		m := &merged[i]
		m.Genre = firstPresent(m.Genre, r.Genre)
		m.PublishedAt = firstPresent(m.PublishedAt, r.PublishedAt)
		m.Publisher = firstPresent(m.Publisher, r.Publisher)
		m.ImageURL = firstPresent(m.ImageURL, r.ImageURL)
		for _, hw := range r.Hardware {
			if !slices.Contains(m.Hardware, hw) {
				m.Hardware = append(m.Hardware, hw)
			}
		}
	}

	return merged
}
