package timezones

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/filter"
)

func TestLoadZones_DedupesSortsAndIgnoresComments(t *testing.T) {
	input := strings.NewReader(`
# Comment
America/New_York
Europe/Paris
America/New_York

UTC
`)

	zones, err := LoadZones(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(zones) != 3 {
		t.Fatalf("expected 3 zones, got %d", len(zones))
	}
	if zones[0] != "America/New_York" || zones[1] != "Europe/Paris" || zones[2] != "UTC" {
		t.Fatalf("unexpected zones: %#v", zones)
	}
}

func TestDefaultZones_ContainsCommonEntries(t *testing.T) {
	zones, err := DefaultZones()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(zones) < 200 {
		t.Fatalf("expected a reasonably sized list, got %d", len(zones))
	}

	for _, expected := range []string{"America/New_York", "Europe/Paris", "UTC"} {
		if !containsString(zones, expected) {
			t.Fatalf("expected zone %q to be present", expected)
		}
	}
}

func TestSearch_CaseInsensitiveContains(t *testing.T) {
	zones := []string{"Europe/Paris", "America/New_York", "UTC"}
	opts := NewOptions(WithEmptySearchMode(EmptySearchNone))

	results := Search(zones, "eUrOpE/p", 10, opts)
	if len(results) != 1 || results[0] != "Europe/Paris" {
		t.Fatalf("unexpected results: %#v", results)
	}
}

func TestSearch_PrefixBeforeContains(t *testing.T) {
	zones := []string{"x/a/b", "a/b", "a/b/c", "c/d"}
	opts := NewOptions(WithEmptySearchMode(EmptySearchNone))

	results := Search(zones, "a/b", 10, opts)
	want := []string{"a/b", "a/b/c", "x/a/b"}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d: %#v", len(want), len(results), results)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Fatalf("unexpected ordering at %d: got %q want %q (results: %#v)", i, results[i], want[i], results)
		}
	}
}

func TestSearch_LimitApplied(t *testing.T) {
	zones := []string{"a", "b", "c", "d"}
	opts := NewOptions(WithDefaultLimit(2), WithMaxLimit(3), WithEmptySearchMode(EmptySearchTop))

	results := Search(zones, "", 0, opts)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %#v", len(results), results)
	}
}

func TestSearchOptions_MapsValueAndLabel(t *testing.T) {
	zones := []string{"UTC"}
	opts := NewOptions(WithEmptySearchMode(EmptySearchNone))

	results := SearchOptions(zones, "utc", 10, opts)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Value != "UTC" || results[0].Label != "UTC" || results[0].Region != "" {
		t.Fatalf("unexpected option: %#v", results[0])
	}
}

func TestSearch_MatchesSpacedLabel(t *testing.T) {
	zones := []string{"America/New_York", "America/Chicago"}
	results := Search(zones, "new york", 10, NewOptions())
	if diff := cmp.Diff([]string{"America/New_York"}, results); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_RegionAndCustomFilter(t *testing.T) {
	zones := []string{"America/Paramaribo", "Europe/Paris", "Europe/Prague"}
	opts := NewOptions(WithRegion("Europe"), WithFilter(filter.Fuzzy()))

	results := Search(zones, "prg", 10, opts)
	if diff := cmp.Diff([]string{"Europe/Prague"}, results); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestZoneNameHelpers(t *testing.T) {
	cases := []struct {
		zone, region, city, label string
	}{
		{"America/New_York", "America", "New York", "America/New York"},
		{"America/Argentina/Buenos_Aires", "America", "Argentina/Buenos Aires", "America/Argentina/Buenos Aires"},
		{"UTC", "", "UTC", "UTC"},
	}
	for _, tc := range cases {
		t.Run(tc.zone, func(t *testing.T) {
			if got := Region(tc.zone); got != tc.region {
				t.Fatalf("Region = %q, want %q", got, tc.region)
			}
			if got := City(tc.zone); got != tc.city {
				t.Fatalf("City = %q, want %q", got, tc.city)
			}
			if got := Label(tc.zone); got != tc.label {
				t.Fatalf("Label = %q, want %q", got, tc.label)
			}
		})
	}
}

func TestNodes_GroupsByRegion(t *testing.T) {
	nodes := Nodes([]string{"America/Chicago", "America/New_York", "Europe/Paris", "UTC"})

	want := []collection.Node{
		{Kind: collection.KindSection, Key: "America", Text: "America", Children: []collection.Node{
			{Kind: collection.KindItem, Key: "America/Chicago", Text: "Chicago", TextValue: "America/Chicago"},
			{Kind: collection.KindItem, Key: "America/New_York", Text: "New York", TextValue: "America/New York"},
		}},
		{Kind: collection.KindSection, Key: "Europe", Text: "Europe", Children: []collection.Node{
			{Kind: collection.KindItem, Key: "Europe/Paris", Text: "Paris", TextValue: "Europe/Paris"},
		}},
		{Kind: collection.KindItem, Key: "UTC", Text: "UTC", TextValue: "UTC"},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}

	col, err := collection.FromNodes(nodes)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	opt, ok := col.Get("America/New_York")
	if !ok || opt.Section != "America" {
		t.Fatalf("unexpected option: %#v", opt)
	}
}

func TestComponent_NodesUseEmbeddedListAndRegion(t *testing.T) {
	nodes, err := New(WithRegion("Europe")).Nodes()
	if err != nil {
		t.Fatalf("nodes: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Key != "Europe" {
		t.Fatalf("expected a single Europe section, got %d nodes", len(nodes))
	}
	col, err := collection.FromNodes(nodes)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if !col.Has("Europe/Paris") || col.Has("America/New_York") {
		t.Fatalf("unexpected keys: %v", col.Keys())
	}
}

func containsString(haystack []string, needle string) bool {
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}
