// Package control assembles one combo box instance: the collection portal, the
// state machine and the relationship coordinator, and translates user events
// (typing, key presses, clicks) into state transitions.
package control
