// Package collection resolves the option set a combo box works against.
//
// Options come either from an explicit item slice mapped through caller
// extractors, or from a declarative description (a tree of item and section
// nodes) walked once into a flat ordered Collection. A Collection never changes
// after materialization; a new description produces a new Collection, and a
// value-equal one is reported as unchanged so consumers can skip work.
//
// Portal is the hand-off used when the option markup is declared by a separate
// renderer (for example a popup) but the control needs the realized options
// before that renderer runs.
package collection
