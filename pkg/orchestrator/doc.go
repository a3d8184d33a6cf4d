// Package orchestrator wires the definition → source → control → renderer
// pipeline: it looks up a configured control, resolves its options from the
// declared source, builds the live control and renders one revision with the
// requested renderer and theme.
package orchestrator
