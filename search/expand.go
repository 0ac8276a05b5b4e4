package search

import (
	"strings"
	"unicode/utf8"
)

// DefaultPrefixWords are locality prefixes common in Israeli settlement
// names. A query starting with one of them names a place almost certainly,
// so region expansion is forced regardless of query length or token count.
var DefaultPrefixWords = []string{
	"קריית",
	"קרית",
	"קיבוץ",
	"מושב",
	"כפר",
	"בית",
	"מעלה",
}

// DefaultStopKeywords are settlement names excluded from sibling matching.
// "דן" is both a short region name and a common substring, which makes it a
// known false-positive generator.
var DefaultStopKeywords = []string{
	"דן",
}

// shouldExpandRegions decides whether geography-aware scoring bonuses are
// computed for a normalized query. The gate protects short ambiguous queries
// from low-signal substring matches against the settlement dataset.
//
// Rules are evaluated in order, first match wins:
//  1. empty query: no expansion
//  2. query starts with a locality prefix word (whole word): expand
//  3. query has two or more tokens: expand
//  4. query shorter than two code points: no expansion
//  5. otherwise expand iff some settlement name matches the query
func shouldExpandRegions(query string, prefixWords []string, regions []indexedRegion) bool {
	if query == "" {
		return false
	}

	for _, word := range prefixWords {
		if query == word || strings.HasPrefix(query, word+" ") {
			return true
		}
	}

	if len(strings.Fields(query)) >= 2 {
		return true
	}

	if utf8.RuneCountInString(query) < 2 {
		return false
	}

	for _, region := range regions {
		for _, settlement := range region.settlements {
			if settlementMatches(settlement, query) {
				return true
			}
		}
	}

	return false
}

// settlementMatches applies the length-dependent settlement rule: substring
// containment for queries of three or more code points, prefix match below
// that. Both arguments must already be normalized.
func settlementMatches(settlement, query string) bool {
	if utf8.RuneCountInString(query) >= 3 {
		return strings.Contains(settlement, query)
	}
	return strings.HasPrefix(settlement, query)
}
