package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed data/iana_timezones.txt
var dataFS embed.FS

const defaultListPath = "data/iana_timezones.txt"

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

// DefaultZones returns a copy of the embedded zone list, sorted.
func DefaultZones() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultZones, defaultErr = LoadZones(f)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultZones...), nil
}

// LoadZones reads one zone per line. Blank lines and # comments are skipped;
// the result is deduplicated and sorted.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 512)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timezones: read list: %w", err)
	}

	sort.Strings(zones)
	return zones, nil
}

// Region returns the leading area of zone ("America" for
// "America/New_York"), or "" for zones without one such as "UTC".
func Region(zone string) string {
	region, _, ok := strings.Cut(zone, "/")
	if !ok {
		return ""
	}
	return region
}

// City returns zone without its region, with underscores shown as spaces.
func City(zone string) string {
	_, city, ok := strings.Cut(zone, "/")
	if !ok {
		city = zone
	}
	return strings.ReplaceAll(city, "_", " ")
}

// Label returns zone with underscores shown as spaces.
func Label(zone string) string {
	return strings.ReplaceAll(zone, "_", " ")
}

// InRegion keeps the zones of region. An empty region keeps everything.
func InRegion(zones []string, region string) []string {
	region = strings.TrimSpace(region)
	if region == "" {
		return append([]string{}, zones...)
	}
	out := make([]string, 0, len(zones))
	for _, zone := range zones {
		if strings.EqualFold(Region(zone), region) {
			out = append(out, zone)
		}
	}
	return out
}
