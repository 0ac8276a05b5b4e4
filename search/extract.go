package search

import "github.com/tavlit/mekomit/core"

// ExtractTypes collects an item's category labels: all Types entries in
// source order, then all Tags entries. Duplicates collapse to their first
// occurrence and empty labels are dropped. No normalization is applied; the
// type filter compares labels with exact string equality.
func ExtractTypes(item core.Item) []string {
	labels := make([]string, 0, len(item.Types)+len(item.Tags))
	seen := make(map[string]bool, len(item.Types)+len(item.Tags))

	appendLabel := func(label string) {
		if label == "" || seen[label] {
			return
		}
		seen[label] = true
		labels = append(labels, label)
	}

	for _, label := range item.Types {
		appendLabel(label)
	}
	for _, label := range item.Tags {
		appendLabel(label)
	}

	return labels
}

// hasType reports whether filterType is among the item's extracted labels.
func hasType(item core.Item, filterType string) bool {
	for _, label := range ExtractTypes(item) {
		if label == filterType {
			return true
		}
	}
	return false
}
