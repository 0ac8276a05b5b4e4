package search

import (
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/tavlit/mekomit/core"
	"github.com/tavlit/mekomit/hebrew"
)

// FilterAll disables type filtering.
const FilterAll = "all"

// Additive score weights. Fixed by the ranking contract, not configuration.
const (
	nameWeight        = 50
	regionWeight      = 40
	locationWeight    = 30
	descriptionWeight = 20
	siblingWeight     = 10
	settlementWeight  = 10
)

// indexedRegion caches the normalized projections of a Region so repeated
// searches never re-normalize the region dataset.
type indexedRegion struct {
	region      core.Region
	name        string   // normalized region name
	settlements []string // normalized settlement names, order preserved
}

// Engine ranks an in-memory dataset of items against Hebrew queries.
//
// The region set is fixed at construction. The item dataset is held as an
// immutable snapshot behind an atomic pointer: ReplaceItems swaps it
// wholesale, so a concurrent Search observes one consistent dataset for its
// whole execution. Search itself is read-only and safe for concurrent use.
type Engine struct {
	items        atomic.Pointer[[]core.Item]
	regions      []indexedRegion
	prefixWords  []string
	stopKeywords map[string]bool
	logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPrefixWords replaces the locality prefix words that force region
// expansion. Words are normalized before use.
func WithPrefixWords(words []string) Option {
	return func(e *Engine) error {
		normalized := make([]string, 0, len(words))
		for _, word := range words {
			word = hebrew.Normalize(word)
			if word == "" {
				return ErrEmptyPrefixWord
			}
			normalized = append(normalized, word)
		}
		e.prefixWords = normalized
		return nil
	}
}

// WithStopKeywords replaces the settlement names excluded from sibling
// matching. Keywords are normalized before use.
func WithStopKeywords(keywords []string) Option {
	return func(e *Engine) error {
		stop := make(map[string]bool, len(keywords))
		for _, keyword := range keywords {
			keyword = hebrew.Normalize(keyword)
			if keyword == "" {
				return ErrEmptyStopKeyword
			}
			stop[keyword] = true
		}
		e.stopKeywords = stop
		return nil
	}
}

// NewEngine creates an engine over the given dataset and region set.
// Both may be empty. The region set is immutable for the engine's lifetime.
func NewEngine(items []core.Item, regions []core.Region, opts ...Option) (*Engine, error) {
	e := &Engine{
		regions:      indexRegions(regions),
		logger:       slog.Default(),
		stopKeywords: make(map[string]bool, len(DefaultStopKeywords)),
	}

	for _, word := range DefaultPrefixWords {
		e.prefixWords = append(e.prefixWords, hebrew.Normalize(word))
	}
	for _, keyword := range DefaultStopKeywords {
		e.stopKeywords[hebrew.Normalize(keyword)] = true
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.ReplaceItems(items)
	return e, nil
}

func indexRegions(regions []core.Region) []indexedRegion {
	indexed := make([]indexedRegion, 0, len(regions))
	for _, region := range regions {
		ir := indexedRegion{
			region:      region,
			name:        hebrew.Normalize(region.Name),
			settlements: make([]string, 0, len(region.Settlements)),
		}
		for _, settlement := range region.Settlements {
			ir.settlements = append(ir.settlements, hebrew.Normalize(settlement))
		}
		indexed = append(indexed, ir)
	}
	return indexed
}

// ReplaceItems replaces the engine's dataset wholesale. The slice is copied,
// so the caller keeps ownership of its argument; in-flight searches keep
// reading the snapshot they started with.
func (e *Engine) ReplaceItems(items []core.Item) {
	snapshot := make([]core.Item, len(items))
	copy(snapshot, items)
	e.items.Store(&snapshot)
}

// Search ranks the dataset against rawQuery and returns matching items in
// descending relevance order. filterType restricts candidates to items
// carrying that exact label; FilterAll (or "") disables the filter. An empty
// query returns the candidates unchanged in dataset order.
func (e *Engine) Search(rawQuery, filterType string) []core.Item {
	return e.SearchWithMonitor(rawQuery, filterType, nil)
}

// SearchWithMonitor is Search with observation hooks. The monitor receives
// callbacks at each stage of the scoring pipeline.
func (e *Engine) SearchWithMonitor(rawQuery, filterType string, monitor SearchMonitor) []core.Item {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query := hebrew.Normalize(rawQuery)
	monitor.Start(query)

	candidates := *e.items.Load()
	if filterType != "" && filterType != FilterAll {
		filtered := make([]core.Item, 0, len(candidates))
		for _, item := range candidates {
			if hasType(item, filterType) {
				filtered = append(filtered, item)
			}
		}
		candidates = filtered
	}
	monitor.AfterTypeFilter(candidates)

	// Empty queries rank nothing: the candidate set passes through in its
	// original order. Copied so callers cannot mutate the live snapshot.
	if query == "" {
		results := make([]core.Item, len(candidates))
		copy(results, candidates)
		monitor.Finish(results)
		return results
	}

	expand := shouldExpandRegions(query, e.prefixWords, e.regions)
	monitor.RegionExpansion(expand)

	var matching []indexedRegion
	if expand {
		matching = e.matchRegions(query)
	}
	monitor.MatchedRegions(regionNames(matching))

	siblings := siblingKeywords(matching, e.stopKeywords)
	monitor.SiblingKeywords(siblings)

	directHits := e.directSettlementHits(query)
	monitor.DirectSettlementHits(directHits)

	e.logger.Debug("scoring candidates",
		"query", query,
		"candidates", len(candidates),
		"expand", expand,
		"matchingRegions", len(matching),
		"siblingKeywords", len(siblings),
		"directHits", len(directHits))

	type scoredItem struct {
		item  core.Item
		score int
	}
	scored := make([]scoredItem, 0, len(candidates))
	for _, item := range candidates {
		score := scoreItem(item, query, matching, siblings, directHits)
		monitor.ItemScored(item, score)
		if score > 0 {
			scored = append(scored, scoredItem{item: item, score: score})
		}
	}

	// Ties must keep their dataset order, so the sort has to be stable.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]core.Item, len(scored))
	for i, s := range scored {
		results[i] = s.item
	}
	monitor.Finish(results)

	return results
}

// matchRegions returns the regions whose normalized name contains the query,
// or with at least one settlement matching the length-dependent rule.
func (e *Engine) matchRegions(query string) []indexedRegion {
	var matching []indexedRegion
	for _, region := range e.regions {
		if region.name != "" && strings.Contains(region.name, query) {
			matching = append(matching, region)
			continue
		}
		for _, settlement := range region.settlements {
			if settlementMatches(settlement, query) {
				matching = append(matching, region)
				break
			}
		}
	}
	return matching
}

// directSettlementHits returns the normalized names of settlements across
// every region containing the query, irrespective of which regions matched.
// Single-character queries never produce direct hits.
func (e *Engine) directSettlementHits(query string) []string {
	if utf8.RuneCountInString(query) <= 1 {
		return nil
	}
	var hits []string
	for _, region := range e.regions {
		for _, settlement := range region.settlements {
			if strings.Contains(settlement, query) {
				hits = append(hits, settlement)
			}
		}
	}
	return hits
}

// siblingKeywords flattens the settlements of the matching regions into a
// deduplicated keyword list, dropping entries shorter than two code points
// and entries on the stop list.
func siblingKeywords(matching []indexedRegion, stop map[string]bool) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, region := range matching {
		for _, settlement := range region.settlements {
			if seen[settlement] {
				continue
			}
			seen[settlement] = true
			if utf8.RuneCountInString(settlement) < 2 || stop[settlement] {
				continue
			}
			keywords = append(keywords, settlement)
		}
	}
	return keywords
}

// scoreItem computes the additive relevance score of a single item.
func scoreItem(item core.Item, query string, matching []indexedRegion, siblings, directHits []string) int {
	name := hebrew.Normalize(item.Name)
	description := hebrew.Normalize(item.Description)
	location := hebrew.Normalize(item.Location)

	score := 0
	if name != "" && strings.Contains(name, query) {
		score += nameWeight
	}
	if description != "" && strings.Contains(description, query) {
		score += descriptionWeight
	}
	if location != "" && strings.Contains(location, query) {
		score += locationWeight
	}

	if location == "" {
		return score
	}

	for _, region := range matching {
		if region.name != "" && strings.Contains(location, region.name) {
			score += regionWeight
			break
		}
	}

	// Bidirectional containment: a location that is a substring of a longer
	// settlement name still counts, and vice versa.
	for _, keyword := range siblings {
		if strings.Contains(location, keyword) || strings.Contains(keyword, location) {
			score += siblingWeight
			break
		}
	}

	for _, hit := range directHits {
		if strings.Contains(location, hit) {
			score += settlementWeight
			break
		}
	}

	return score
}

func regionNames(regions []indexedRegion) []string {
	names := make([]string, len(regions))
	for i, region := range regions {
		names[i] = region.region.Name
	}
	return names
}
