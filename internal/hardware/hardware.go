package hardware

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/antzucaro/matchr"
)

// the page ids of the catalog page of every hardware on the wiki
var defaultPages = map[string]string{
	"fc":      "13",
	"sfc":     "14",
	"n64":     "15",
	"gc":      "16",
	"wii":     "17",
	"wiiu":    "3942",
	"switch":  "6695",
	"ps":      "22",
	"ps2":     "23",
	"ps3":     "24",
	"ps4":     "5139",
	"xbox":    "25",
	"xbox360": "26",
	"xboxone": "5506",
	"md":      "19",
	"ss":      "20",
	"dc":      "21",
	"pce":     "30",
	"ng":      "99",
	"atari":   "27",
	"sms":     "18",
	"cv":      "28",
	"scv":     "29",
	"threedo": "98",
	"playdia": "7060",
	"pcfx":    "91",
	"vb":      "570",
	"oq":      "7552",
}

// Table maps hardware symbols (ex. "switch") to the page id of their
// catalog page. It is immutable and safe to share between goroutines.
type Table struct {
	pages map[string]string
}

// New creates a table from a copy of pages.
func New(pages map[string]string) Table {
	return Table{pages: maps.Clone(pages)}
}

// Default returns the table of every hardware the wiki has a catalog for.
func Default() Table {
	return New(defaultPages)
}

// With returns a new table where overrides take precedence, an empty page
// id removes the symbol.
func (t Table) With(overrides map[string]string) Table {
	pages := maps.Clone(t.pages)
	if pages == nil {
		pages = map[string]string{}
	}
	for symbol, id := range overrides {
		symbol = strings.ToLower(strings.TrimSpace(symbol))
		id = strings.TrimSpace(id)
		if id == "" {
			delete(pages, symbol)
			continue
		}
		pages[symbol] = id
	}
	return Table{pages: pages}
}

// UnknownError is returned by Lookup for a symbol that is not in the table.
type UnknownError struct {
	Symbol string
	// Suggestion is the most similar known symbol, empty if there is none.
	Suggestion string
}

func (e UnknownError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown hardware '%s'", e.Symbol)
	}
	return fmt.Sprintf("unknown hardware '%s', did you mean '%s'?", e.Symbol, e.Suggestion)
}

// Lookup returns the catalog page id of symbol, matching is case
// insensitive.
func (t Table) Lookup(symbol string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(symbol))
	id, ok := t.pages[normalized]
	if ok {
		return id, nil
	}
	return "", UnknownError{
		Symbol:     symbol,
		Suggestion: t.suggest(normalized),
	}
}

func (t Table) suggest(symbol string) string {
	if symbol == "" {
		return ""
	}

	var mostSimilarity float64
	var mostSimilar string
	// iterate in order so that ties resolve the same way every time
	for _, known := range t.Symbols() {
		similarity := matchr.JaroWinkler(symbol, known, false)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = known
		}
	}
	if mostSimilarity < 0.7 {
		return ""
	}
	return mostSimilar
}

// Symbols returns every known symbol in sorted order.
func (t Table) Symbols() []string {
	return slices.Sorted(maps.Keys(t.pages))
}

// Len returns the number of known symbols.
func (t Table) Len() int {
	return len(t.pages)
}
