// Package state implements the selection and filter state machine behind a
// combo box: open/closed, input text, committed selection, highlighted option
// and the filtered option subset derived from the input text.
//
// A Machine is owned by one control and is not safe for concurrent use.
// Transitions run synchronously in call order; subscribers observe every
// effective transition, in order, before the next queued notification.
package state
