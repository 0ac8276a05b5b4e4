package search

import "github.com/tavlit/mekomit/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during
// search.
type SearchMonitor interface {
	Start(query string)
	AfterTypeFilter(candidates []core.Item)
	RegionExpansion(expanded bool)
	MatchedRegions(names []string)
	SiblingKeywords(keywords []string)
	DirectSettlementHits(settlements []string)
	ItemScored(item core.Item, score int)
	Finish(results []core.Item)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) AfterTypeFilter(_ []core.Item)   {}
func (n *noopMonitor) RegionExpansion(_ bool)          {}
func (n *noopMonitor) MatchedRegions(_ []string)       {}
func (n *noopMonitor) SiblingKeywords(_ []string)      {}
func (n *noopMonitor) DirectSettlementHits(_ []string) {}
func (n *noopMonitor) ItemScored(_ core.Item, _ int)   {}
func (n *noopMonitor) Finish(_ []core.Item)            {}
