// Package aria distributes identifiers and ARIA relationship attributes to the
// independently rendered parts of a combo box (label, input, trigger button,
// popover, listbox, description and error message) and keeps the popover
// width in step with the input geometry.
//
// Instead of ambient context lookups, every state revision produces a single
// Bundles map keyed by slot that callers hand to each render site.
package aria
