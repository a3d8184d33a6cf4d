// Package render defines the renderer contract shared by the HTML, props and
// terminal front ends, the View snapshot they draw, and a name-keyed registry.
package render
