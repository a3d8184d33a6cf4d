package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-combobox/pkg/filter"
)

// Option is one handler result.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Region string `json:"region,omitempty"`
}

var prefixMatch = filter.StartsWith()

// Search returns up to limit zones matching query, prefix matches first.
// Zones match on their identifier or on their spaced label, so "new york"
// finds America/New_York.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}
	zones = InRegion(zones, opts.Region)

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(zones) <= limit {
				return zones
			}
			return zones[:limit]
		}
		return nil
	}

	pred := opts.Filter
	if pred == nil {
		pred = filter.Contains()
	}
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		label := Label(zone)
		if !pred(zone, query) && !pred(label, query) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: prefixMatch(zone, query) || prefixMatch(label, query),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// SearchOptions is Search mapped to handler results.
func SearchOptions(zones []string, query string, limit int, opts Options) []Option {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, zone := range results {
		out = append(out, Option{Value: zone, Label: Label(zone), Region: Region(zone)})
	}
	return out
}

type matchedZone struct {
	name     string
	isPrefix bool
}
