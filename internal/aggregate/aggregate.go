// Package aggregate groups extracted entity names by their first letter.
package aggregate

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/zizevskikh-dev/wiki-animals-parser/pkg/models"
)

// Normalize returns the canonical form of a raw name: first rune uppercased,
// remainder untouched. This matches the single-character capitalization rule
// used for de-duplication and grouping, not a full title-case transform.
func Normalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return name
	}
	return string(upper) + name[size:]
}

// ByFirstLetter normalizes the raw names, drops duplicates by normalized
// form, and counts distinct names per first letter. Rows come back sorted
// ascending by letter (ordinal comparison). Empty input yields zero rows.
func ByFirstLetter(names []string) []models.AggregationRow {
	seen := make(map[string]struct{}, len(names))
	counts := make(map[string]int)

	for _, raw := range names {
		if raw == "" {
			continue
		}
		name := Normalize(raw)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		r, _ := utf8.DecodeRuneInString(name)
		counts[string(r)]++
	}

	rows := make([]models.AggregationRow, 0, len(counts))
	for letter, count := range counts {
		rows = append(rows, models.AggregationRow{Letter: letter, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Letter < rows[j].Letter
	})

	return rows
}
