package timezones

import (
	"fmt"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/sources/jsonpath"
)

// Nodes describes zones as combo box options. Zones are keyed by their
// identifier and grouped into one section per region, keyed and titled by
// the region name; zones without a region stay at the top level. Items show
// the city and filter on the full spaced label.
func Nodes(zones []string) []collection.Node {
	var (
		out      []collection.Node
		sections = map[string]int{}
	)
	for _, zone := range zones {
		item := collection.Item(City(zone),
			collection.WithKey(collection.Key(zone)),
			collection.WithTextValue(Label(zone)),
		)
		region := Region(zone)
		if region == "" {
			out = append(out, item)
			continue
		}
		idx, ok := sections[region]
		if !ok {
			section := collection.Section(region)
			section.Key = collection.Key(region)
			out = append(out, section)
			idx = len(out) - 1
			sections[region] = idx
		}
		out[idx].Children = append(out[idx].Children, item)
	}
	return out
}

// BuildNodes resolves the configured zones (embedded list by default,
// restricted to Options.Region) and describes them with Nodes.
func BuildNodes(fns ...OptionFn) ([]collection.Node, error) {
	opts := NewOptions(fns...)
	zones, err := opts.zones()
	if err != nil {
		return nil, fmt.Errorf("timezones: load zones: %w", err)
	}
	return Nodes(zones), nil
}

// Mapping reads handler responses with the jsonpath source, so a control can
// be fed from a remote timezone endpoint.
func Mapping() jsonpath.Mapping {
	return jsonpath.Mapping{
		ResultsPath:  "data",
		KeyField:     "value",
		TextField:    "label",
		SectionField: "region",
	}
}
