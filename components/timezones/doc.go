// Package timezones provides deterministic IANA timezone data as combo box
// options: node descriptions grouped by region, search helpers that share
// the combo box filter predicates, and a small net/http handler that returns
// JSON options for remote-backed controls.
//
// The default handler responds to GET and HEAD requests and supports query,
// region and limit parameters. The backing data is loaded from the embedded
// IANA timezone list under data/iana_timezones.txt.
package timezones
