package site

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type SearchResult struct {
	Label       string
	Path        string
	Description string
}

type searchEntry struct {
	result SearchResult
	text   string
}

// Search matches query against category titles and descriptions and nav item
// labels, ignoring case and accents. Results are ordered by match distance,
// one per path, at most limit of them.
func (s *Site) Search(query string, limit int) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []SearchResult{}
	}

	entries := s.searchEntries()

	targets := make([]string, len(entries))
	for idx, e := range entries {
		targets[idx] = e.text
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)

	seen := make(map[string]struct{})
	results := make([]SearchResult, 0, limit)

	for _, r := range ranks {
		entry := entries[r.OriginalIndex]

		if _, exists := seen[entry.result.Path]; exists {
			continue
		}

		seen[entry.result.Path] = struct{}{}
		results = append(results, entry.result)

		if len(results) == limit {
			break
		}
	}

	return results
}

// Categories come first so that, on equal distance, the richer result wins
// the path.
func (s *Site) searchEntries() []searchEntry {
	entries := make([]searchEntry, 0, len(s.Categories)*2+len(s.NavItems))

	for _, c := range s.Categories {
		result := SearchResult{Label: c.Title, Path: c.Path, Description: c.Description}
		entries = append(entries, searchEntry{result: result, text: c.Title})
	}

	for _, n := range s.NavItems {
		result := SearchResult{Label: n.Label, Path: n.Path}
		entries = append(entries, searchEntry{result: result, text: n.Label})
	}

	for _, c := range s.Categories {
		if c.Description == "" {
			continue
		}

		result := SearchResult{Label: c.Title, Path: c.Path, Description: c.Description}
		entries = append(entries, searchEntry{result: result, text: c.Description})
	}

	return entries
}
